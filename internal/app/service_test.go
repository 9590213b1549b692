package service_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	service "github.com/okian/draftboard/internal/app"
	"github.com/okian/draftboard/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	m.Run()
}

const rankingsCSV = "player,team,pos,blend\n" +
	"Joel Embiid,PHI,C,2.5\n" +
	"Nikola Jokic,DEN,C,1.2\n" +
	"Luka Doncic,DAL,PG,4.0\n" +
	"Nikola Jokic,DEN,C,9.9\n"

func newStarted(t *testing.T, opts ...service.Option) *service.Service {
	t.Helper()
	svc := service.New(opts...)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	t.Cleanup(svc.Stop)
	return svc
}

func TestSessions(t *testing.T) {
	Convey("Given a running service", t, func() {
		ctx := context.Background()
		svc := newStarted(t)

		Convey("When a session is created", func() {
			id, err := svc.CreateSession(ctx)

			Convey("Then it starts with an empty roster", func() {
				So(err, ShouldBeNil)
				So(id, ShouldNotBeEmpty)

				rows, err := svc.Roster(ctx, id)
				So(err, ShouldBeNil)
				So(rows, ShouldBeEmpty)
			})

			Convey("Then it can be dropped exactly once", func() {
				So(svc.DropSession(ctx, id), ShouldBeNil)
				So(errors.Is(svc.DropSession(ctx, id), service.ErrSessionNotFound), ShouldBeTrue)
			})
		})

		Convey("When an unknown session is queried", func() {
			_, err := svc.Roster(ctx, "nope")
			So(errors.Is(err, service.ErrSessionNotFound), ShouldBeTrue)
		})
	})
}

func TestLoadCSV(t *testing.T) {
	Convey("Given a session", t, func() {
		ctx := context.Background()
		svc := newStarted(t)
		id, err := svc.CreateSession(ctx)
		So(err, ShouldBeNil)

		Convey("When a CSV document is loaded", func() {
			size, err := svc.LoadCSV(ctx, id, []byte(rankingsCSV))

			Convey("Then the roster is sorted, deduplicated and ranked", func() {
				So(err, ShouldBeNil)
				So(size, ShouldEqual, 3)

				rows, err := svc.Roster(ctx, id)
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 3)
				So(rows[0].Player, ShouldEqual, "Nikola Jokic")
				So(*rows[0].Blend, ShouldEqual, 1.2)
				So(*rows[0].Rank, ShouldEqual, 1)
				So(rows[1].Player, ShouldEqual, "Joel Embiid")
				So(rows[2].Player, ShouldEqual, "Luka Doncic")
			})

			Convey("Then reloading identical bytes hits the cache", func() {
				again, err := svc.LoadCSV(ctx, id, []byte(rankingsCSV))
				So(err, ShouldBeNil)
				So(again, ShouldEqual, 3)
				So(svc.GetStats(ctx).CachedRosters, ShouldEqual, 1)
			})

			Convey("Then reloading resets draft progress", func() {
				_, err := svc.MoveToDrafted(ctx, id, []string{"Nikola Jokic"})
				So(err, ShouldBeNil)

				_, err = svc.LoadCSV(ctx, id, []byte(rankingsCSV))
				So(err, ShouldBeNil)

				drafted, err := svc.Drafted(ctx, id)
				So(err, ShouldBeNil)
				So(drafted, ShouldBeEmpty)
			})
		})

		Convey("When the document exceeds the upload limit", func() {
			small := newStarted(t, service.WithMaxUploadBytes(8))
			sid, err := small.CreateSession(ctx)
			So(err, ShouldBeNil)

			_, err = small.LoadCSV(ctx, sid, []byte(rankingsCSV))
			So(errors.Is(err, service.ErrDocumentTooLarge), ShouldBeTrue)
		})

		Convey("When the document is malformed", func() {
			_, err := svc.LoadCSV(ctx, id, nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestDraftFlow(t *testing.T) {
	Convey("Given a session with a loaded roster", t, func() {
		ctx := context.Background()
		svc := newStarted(t)
		id, err := svc.CreateSession(ctx)
		So(err, ShouldBeNil)
		_, err = svc.LoadCSV(ctx, id, []byte(rankingsCSV))
		So(err, ShouldBeNil)

		Convey("When players are drafted", func() {
			moved, err := svc.MoveToDrafted(ctx, id, []string{"Nikola Jokic", "Luka Doncic", "Nobody"})

			Convey("Then known names move and the partition holds", func() {
				So(err, ShouldBeNil)
				So(moved, ShouldEqual, 2)

				remaining, err := svc.Remaining(ctx, id)
				So(err, ShouldBeNil)
				So(remaining, ShouldHaveLength, 1)
				So(remaining[0].Player, ShouldEqual, "Joel Embiid")

				drafted, err := svc.Drafted(ctx, id)
				So(err, ShouldBeNil)
				So(drafted, ShouldHaveLength, 2)
				So(drafted[0].Player, ShouldEqual, "Nikola Jokic")
			})

			Convey("Then drafting the same names again moves nobody", func() {
				again, err := svc.MoveToDrafted(ctx, id, []string{"Nikola Jokic", "Luka Doncic"})
				So(err, ShouldBeNil)
				So(again, ShouldEqual, 0)
			})

			Convey("Then reset restores the full pool", func() {
				So(svc.ResetDraft(ctx, id), ShouldBeNil)

				remaining, err := svc.Remaining(ctx, id)
				So(err, ShouldBeNil)
				So(remaining, ShouldHaveLength, 3)

				drafted, err := svc.Drafted(ctx, id)
				So(err, ShouldBeNil)
				So(drafted, ShouldBeEmpty)
			})
		})

		Convey("When the selection is empty", func() {
			_, err := svc.MoveToDrafted(ctx, id, nil)
			So(errors.Is(err, service.ErrEmptySelection), ShouldBeTrue)
		})
	})
}

func TestGetStats(t *testing.T) {
	Convey("Given a running service", t, func() {
		ctx := context.Background()
		svc := newStarted(t, service.WithRosterCap(2), service.WithWorkerCount(3))

		id, err := svc.CreateSession(ctx)
		So(err, ShouldBeNil)
		_, err = svc.LoadCSV(ctx, id, []byte(rankingsCSV))
		So(err, ShouldBeNil)

		Convey("When stats are read", func() {
			stats := svc.GetStats(ctx)

			Convey("Then counters reflect the configuration and state", func() {
				So(stats.Sessions, ShouldEqual, 1)
				So(stats.CachedRosters, ShouldEqual, 1)
				So(stats.WorkerCount, ShouldEqual, 3)
				So(stats.RosterCapacity, ShouldEqual, 2)
			})

			Convey("Then the roster cap was applied", func() {
				rows, err := svc.Roster(ctx, id)
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 2)
			})
		})
	})
}
