package types_test

import (
	"encoding/json"
	"testing"

	"github.com/okian/draftboard/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRow(t *testing.T) {
	Convey("Given a roster row", t, func() {
		rank := 1
		blend := 1.2
		row := types.Row{Rank: &rank, Player: "Nikola Jokic", Team: "DEN", Pos: "C", Blend: &blend}

		Convey("When marshaling to JSON", func() {
			b, err := json.Marshal(row)

			Convey("Then it should use the wire field names", func() {
				So(err, ShouldBeNil)
				So(string(b), ShouldContainSubstring, `"adp_rank":1`)
				So(string(b), ShouldContainSubstring, `"player":"Nikola Jokic"`)
				So(string(b), ShouldContainSubstring, `"blend":1.2`)
			})
		})

		Convey("When rank and blend are unset", func() {
			b, err := json.Marshal(types.Row{Player: "Unknown Rookie"})

			Convey("Then they should serialize as null", func() {
				So(err, ShouldBeNil)
				So(string(b), ShouldContainSubstring, `"adp_rank":null`)
				So(string(b), ShouldContainSubstring, `"blend":null`)
			})
		})
	})
}
