package draft_test

import (
	"context"
	"testing"

	"github.com/okian/draftboard/internal/domain/draft"
	"github.com/okian/draftboard/internal/domain/model"
	"github.com/okian/draftboard/internal/domain/roster"
	"github.com/okian/draftboard/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func buildRoster() []types.Row {
	score := func(v float64) *float64 { return &v }
	return roster.Consolidate([]model.RawRecord{
		{Player: "Nikola Jokic", Team: "DEN", Pos: "C", Score: score(1.2)},
		{Player: "Joel Embiid", Team: "PHI", Pos: "C", Score: score(2.5)},
		{Player: "Luka Doncic", Team: "DAL", Pos: "PG/SG", Score: score(4.0)},
		{Player: "Anthony Edwards", Team: "MIN", Pos: "SG", Score: score(5.1)},
	}, 300)
}

func names(rows []types.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Player
	}
	return out
}

func TestBoard(t *testing.T) {
	Convey("Given a board over a ranked roster", t, func() {
		ctx := context.Background()
		b := draft.NewBoard(buildRoster())

		Convey("When nothing has been drafted", func() {
			Convey("Then remaining is the full roster and drafted is empty", func() {
				So(b.Remaining(ctx), ShouldHaveLength, 4)
				So(b.Drafted(ctx), ShouldBeEmpty)
				So(b.DraftedCount(), ShouldEqual, 0)
			})
		})

		Convey("When players are moved to drafted", func() {
			moved := b.Move(ctx, "Joel Embiid", "Luka Doncic")

			Convey("Then the partition updates and order is preserved", func() {
				So(moved, ShouldEqual, 2)
				So(names(b.Remaining(ctx)), ShouldResemble, []string{"Nikola Jokic", "Anthony Edwards"})
				So(names(b.Drafted(ctx)), ShouldResemble, []string{"Joel Embiid", "Luka Doncic"})
			})

			Convey("And remaining union drafted always equals the roster", func() {
				all := append(names(b.Remaining(ctx)), names(b.Drafted(ctx))...)
				So(all, ShouldHaveLength, b.Size())
				seen := map[string]bool{}
				for _, n := range all {
					So(seen[n], ShouldBeFalse)
					seen[n] = true
				}
			})

			Convey("And moving the same players again is a no-op", func() {
				So(b.Move(ctx, "Joel Embiid", "Luka Doncic"), ShouldEqual, 0)
				So(b.DraftedCount(), ShouldEqual, 2)
			})
		})

		Convey("When the selection is empty", func() {
			So(b.Move(ctx), ShouldEqual, 0)
			So(b.DraftedCount(), ShouldEqual, 0)
		})

		Convey("When a selected player is not on the roster", func() {
			moved := b.Move(ctx, "Nikola Jokic", "Michael Jordan")

			Convey("Then only roster members are drafted", func() {
				So(moved, ShouldEqual, 1)
				So(names(b.Drafted(ctx)), ShouldResemble, []string{"Nikola Jokic"})
			})
		})

		Convey("When the board is reset", func() {
			b.Move(ctx, "Nikola Jokic", "Joel Embiid")
			b.Reset(ctx)

			Convey("Then remaining is the full roster again, in order", func() {
				So(b.Drafted(ctx), ShouldBeEmpty)
				So(names(b.Remaining(ctx)), ShouldResemble,
					[]string{"Nikola Jokic", "Joel Embiid", "Luka Doncic", "Anthony Edwards"})
			})
		})

		Convey("When draft operations run", func() {
			before := b.Roster(ctx)
			b.Move(ctx, "Nikola Jokic")
			b.Reset(ctx)
			b.Move(ctx, "Luka Doncic")

			Convey("Then the roster itself never changes", func() {
				So(b.Roster(ctx), ShouldResemble, before)
			})
		})
	})
}
