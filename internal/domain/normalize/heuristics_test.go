package normalize_test

import (
	"testing"

	"github.com/okian/draftboard/internal/domain/normalize"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFirstNumber(t *testing.T) {
	Convey("Given the FirstNumber heuristic", t, func() {
		Convey("When the text holds a number", func() {
			v, ok := normalize.FirstNumber("3.5")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 3.5)

			v, ok = normalize.FirstNumber("12 (rising)")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 12)

			v, ok = normalize.FirstNumber("blend 4.25 *")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 4.25)
		})

		Convey("When no number exists", func() {
			_, ok := normalize.FirstNumber("no score here")
			So(ok, ShouldBeFalse)
			_, ok = normalize.FirstNumber("")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestTrailingNumber(t *testing.T) {
	Convey("Given the TrailingNumber heuristic", t, func() {
		Convey("When the line ends in a number", func() {
			v, body, ok := normalize.TrailingNumber("7. Luka Doncic (PG/SG) DAL 4.0")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 4.0)
			So(body, ShouldEqual, "7. Luka Doncic (PG/SG) DAL")

			v, body, ok = normalize.TrailingNumber("Joel Embiid PHI 2.5  ")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 2.5)
			So(body, ShouldEqual, "Joel Embiid PHI")
		})

		Convey("When the line does not end in a number", func() {
			_, body, ok := normalize.TrailingNumber("Joel Embiid PHI")
			So(ok, ShouldBeFalse)
			So(body, ShouldEqual, "Joel Embiid PHI")
		})

		Convey("When a number sits mid-line only", func() {
			_, _, ok := normalize.TrailingNumber("12. Some Player trailing text")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestStripEnumeration(t *testing.T) {
	Convey("Given the StripEnumeration heuristic", t, func() {
		So(normalize.StripEnumeration("12. Jalen Brunson"), ShouldEqual, "Jalen Brunson")
		So(normalize.StripEnumeration("12- Jalen Brunson"), ShouldEqual, "Jalen Brunson")
		So(normalize.StripEnumeration("12 Jalen Brunson"), ShouldEqual, "Jalen Brunson")
		So(normalize.StripEnumeration("Jalen Brunson"), ShouldEqual, "Jalen Brunson")
	})
}

func TestParenPosition(t *testing.T) {
	Convey("Given the ParenPosition heuristic", t, func() {
		Convey("When a position group exists", func() {
			pos, rest := normalize.ParenPosition("Luka Doncic (PG/SG) DAL")
			So(pos, ShouldEqual, "PG/SG")
			So(rest, ShouldEqual, "Luka Doncic DAL")

			pos, rest = normalize.ParenPosition("(C) Nikola Jokic DEN")
			So(pos, ShouldEqual, "C")
			So(rest, ShouldEqual, "Nikola Jokic DEN")
		})

		Convey("When no position group exists", func() {
			pos, rest := normalize.ParenPosition("Luka Doncic DAL")
			So(pos, ShouldEqual, "")
			So(rest, ShouldEqual, "Luka Doncic DAL")
		})

		Convey("When parentheses hold lowercase text", func() {
			pos, rest := normalize.ParenPosition("Luka Doncic (rookie) DAL")
			So(pos, ShouldEqual, "")
			So(rest, ShouldEqual, "Luka Doncic (rookie) DAL")
		})
	})
}

func TestIsTeamCode(t *testing.T) {
	Convey("Given the IsTeamCode heuristic", t, func() {
		So(normalize.IsTeamCode("DAL"), ShouldBeTrue)
		So(normalize.IsTeamCode("GS"), ShouldBeTrue)
		So(normalize.IsTeamCode("UTAH"), ShouldBeTrue)
		So(normalize.IsTeamCode("D"), ShouldBeFalse)
		So(normalize.IsTeamCode("TOOLONG"), ShouldBeFalse)
		So(normalize.IsTeamCode("Dal"), ShouldBeFalse)
		So(normalize.IsTeamCode("DA1"), ShouldBeFalse)
	})
}

func TestLooksLikeURL(t *testing.T) {
	Convey("Given the LooksLikeURL heuristic", t, func() {
		So(normalize.LooksLikeURL("https://example.com/ADP"), ShouldBeTrue)
		So(normalize.LooksLikeURL("HTTP://example.com"), ShouldBeTrue)
		So(normalize.LooksLikeURL("Luka Doncic"), ShouldBeFalse)
	})
}

func TestIsChrome(t *testing.T) {
	Convey("Given the IsChrome heuristic", t, func() {
		Convey("Then chrome lines should be flagged", func() {
			So(normalize.IsChrome("https://example.com/ADP"), ShouldBeTrue)
			So(normalize.IsChrome("ADP Data for the 2025 draft"), ShouldBeTrue)
			So(normalize.IsChrome("Season 2025-26"), ShouldBeTrue)
			So(normalize.IsChrome("Updated October 10"), ShouldBeTrue)
			So(normalize.IsChrome("Rank Player Team Pos BLEND"), ShouldBeTrue)
			So(normalize.IsChrome("Rank Player BL"), ShouldBeTrue)
		})

		Convey("Then player rows should pass", func() {
			So(normalize.IsChrome("7. Luka Doncic (PG/SG) DAL 4.0"), ShouldBeFalse)
			// BL only matches as a standalone token.
			So(normalize.IsChrome("Blake Griffin DET 88.1"), ShouldBeFalse)
		})
	})
}
