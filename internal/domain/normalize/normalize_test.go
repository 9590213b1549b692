package normalize_test

import (
	"testing"

	"github.com/okian/draftboard/internal/domain/normalize"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClean(t *testing.T) {
	Convey("Given the Clean function", t, func() {
		Convey("When collapsing whitespace", func() {
			So(normalize.Clean("  Nikola   Jokic \n DEN "), ShouldEqual, "Nikola Jokic DEN")
			So(normalize.Clean("a\tb\nc"), ShouldEqual, "a b c")
		})

		Convey("When input is empty or blank", func() {
			So(normalize.Clean(""), ShouldEqual, "")
			So(normalize.Clean("   \n\t "), ShouldEqual, "")
		})

		Convey("When input is already clean", func() {
			So(normalize.Clean("Luka Doncic"), ShouldEqual, "Luka Doncic")
		})
	})
}

func TestTokenCount(t *testing.T) {
	Convey("Given the TokenCount function", t, func() {
		So(normalize.TokenCount(""), ShouldEqual, 0)
		So(normalize.TokenCount("Jokic"), ShouldEqual, 1)
		So(normalize.TokenCount("Nikola  Jokic"), ShouldEqual, 2)
		So(normalize.TokenCount(" Shai Gilgeous-Alexander "), ShouldEqual, 2)
	})
}
