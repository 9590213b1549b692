package pipeline_test

import (
	"context"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/draftboard/internal/adapters/pipeline"
	"github.com/okian/draftboard/internal/domain/model"
	"github.com/okian/draftboard/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	m.Run()
}

// tablePage builds a single-table page ranking one player per row.
func tablePage(number int, players ...string) model.Page {
	table := model.Table{{"Player", "Team", "BLEND"}}
	for i, p := range players {
		table = append(table, []string{p, "DEN", fmt.Sprintf("%d.0", i+1)})
	}
	return model.Page{Number: number, Tables: []model.Table{table}}
}

func TestQueue(t *testing.T) {
	Convey("Given a bounded page queue", t, func() {
		ctx := context.Background()
		q := pipeline.NewInMemoryQueue(pipeline.WithQueueCapacity(2))

		Convey("When jobs fit the capacity", func() {
			So(q.Enqueue(ctx, pipeline.Job{Index: 0}), ShouldBeTrue)
			So(q.Enqueue(ctx, pipeline.Job{Index: 1}), ShouldBeTrue)
			So(q.Len(ctx), ShouldEqual, 2)

			Convey("Then an overflowing job is refused", func() {
				So(q.Enqueue(ctx, pipeline.Job{Index: 2}), ShouldBeFalse)
			})
		})

		Convey("When the queue is closed", func() {
			q.Enqueue(ctx, pipeline.Job{Index: 0})
			So(q.Close(), ShouldBeNil)

			Convey("Then enqueue is refused and the channel drains", func() {
				So(q.IsClosed(), ShouldBeTrue)
				So(q.Enqueue(ctx, pipeline.Job{Index: 1}), ShouldBeFalse)

				job, ok := <-q.Dequeue(ctx)
				So(ok, ShouldBeTrue)
				So(job.Index, ShouldEqual, 0)

				_, ok = <-q.Dequeue(ctx)
				So(ok, ShouldBeFalse)
			})

			Convey("Then closing again is harmless", func() {
				So(q.Close(), ShouldBeNil)
			})
		})
	})
}

func TestPoolExtract(t *testing.T) {
	Convey("Given an extraction pool", t, func() {
		ctx := context.Background()

		pages := []model.Page{
			tablePage(1, "Nikola Jokic", "Joel Embiid"),
			tablePage(2, "Luka Doncic"),
			{Number: 3, Text: "Shai Gilgeous-Alexander OKC 3.1\n"},
		}

		Convey("When extracting with many workers", func() {
			pool := pipeline.NewPool(pipeline.WithWorkerCount(8))
			records := pool.Extract(ctx, pages)

			Convey("Then records come back in page order", func() {
				players := make([]string, 0, len(records))
				for _, r := range records {
					players = append(players, r.Player)
				}
				So(players, ShouldResemble, []string{
					"Nikola Jokic", "Joel Embiid", "Luka Doncic", "Shai Gilgeous-Alexander",
				})
			})
		})

		Convey("When extracting with a single worker", func() {
			sequential := pipeline.NewPool(pipeline.WithWorkerCount(1)).Extract(ctx, pages)
			parallel := pipeline.NewPool(pipeline.WithWorkerCount(4)).Extract(ctx, pages)

			Convey("Then parallel output matches sequential output", func() {
				So(parallel, ShouldResemble, sequential)
			})
		})

		Convey("When a page carries both a table and extra text rows", func() {
			mixed := []model.Page{
				{
					Number: 1,
					Tables: []model.Table{{
						{"Rank", "Player", "Team", "Pos", "BLEND"},
						{"1", "Nikola Jokic", "DEN", "C", "1.2"},
					}},
					Text: "2. Joel Embiid (C) PHI 2.5\n",
				},
			}
			records := pipeline.NewPool(pipeline.WithWorkerCount(1)).Extract(ctx, mixed)

			Convey("Then both extractors contribute, table rows first", func() {
				players := make([]string, 0, len(records))
				for _, r := range records {
					players = append(players, r.Player)
				}
				So(players, ShouldResemble, []string{"Nikola Jokic", "Joel Embiid"})
			})
		})

		Convey("When there are no pages", func() {
			So(pipeline.NewPool().Extract(ctx, nil), ShouldBeNil)
		})

		Convey("When the context is already cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			records := pipeline.NewPool(pipeline.WithWorkerCount(2)).Extract(cancelled, pages)

			Convey("Then extraction stops without completing every page", func() {
				So(len(records), ShouldBeLessThanOrEqualTo, 4)
			})
		})
	})
}
