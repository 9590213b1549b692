package drill

import (
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/draftboard/internal/domain/types"
)

func row(rank int, player string, blend float64) types.Row {
	return types.Row{Rank: &rank, Player: player, Blend: &blend}
}

func TestGenerateCSV(t *testing.T) {
	Convey("Given a seeded generator", t, func() {
		rng := rand.New(rand.NewSource(1))

		Convey("When a document is generated", func() {
			content, players := GenerateCSV(rng, 40)

			Convey("Then it lists every player plus duplicate rows", func() {
				So(players, ShouldHaveLength, 40)
				lines := 0
				for _, b := range content {
					if b == '\n' {
						lines++
					}
				}
				So(lines, ShouldEqual, 1+40+40/duplicateEvery)
			})
		})
	})
}

func TestVerifyRoster(t *testing.T) {
	Convey("Given roster rows", t, func() {
		Convey("When the roster is well formed", func() {
			rows := []types.Row{
				row(1, "Nikola Jokic", 1.2),
				row(2, "Joel Embiid", 2.5),
				{Rank: intPtr(3), Player: "Luka Doncic"},
			}
			So(verifyRoster(rows), ShouldBeNil)
		})

		Convey("When blend scores are out of order", func() {
			rows := []types.Row{
				row(1, "Joel Embiid", 2.5),
				row(2, "Nikola Jokic", 1.2),
			}
			So(verifyRoster(rows), ShouldNotBeNil)
		})

		Convey("When a player repeats", func() {
			rows := []types.Row{
				row(1, "Nikola Jokic", 1.2),
				row(2, "Nikola Jokic", 2.5),
			}
			So(verifyRoster(rows), ShouldNotBeNil)
		})

		Convey("When ranks are not dense", func() {
			rows := []types.Row{
				row(1, "Nikola Jokic", 1.2),
				row(3, "Joel Embiid", 2.5),
			}
			So(verifyRoster(rows), ShouldNotBeNil)
		})
	})
}

func TestVerifyPartition(t *testing.T) {
	Convey("Given a roster split across the board", t, func() {
		roster := []types.Row{
			row(1, "Nikola Jokic", 1.2),
			row(2, "Joel Embiid", 2.5),
			row(3, "Luka Doncic", 4.0),
		}

		Convey("When the partition is clean", func() {
			remaining := []types.Row{roster[1]}
			drafted := []types.Row{roster[0], roster[2]}
			So(verifyPartition(roster, remaining, drafted), ShouldBeNil)
		})

		Convey("When a player sits on both sides", func() {
			remaining := []types.Row{roster[0], roster[1]}
			drafted := []types.Row{roster[0]}
			So(verifyPartition(roster, remaining, drafted), ShouldNotBeNil)
		})

		Convey("When a player is missing", func() {
			remaining := []types.Row{roster[1]}
			drafted := []types.Row{roster[0]}
			So(verifyPartition(roster, remaining, drafted), ShouldNotBeNil)
		})
	})
}

func intPtr(v int) *int { return &v }
