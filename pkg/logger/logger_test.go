package logger_test

import (
	"context"
	"testing"

	"github.com/okian/draftboard/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given the logger package", t, func() {
		Convey("When initializing the global logger", func() {
			err := logger.Init()

			Convey("Then it should succeed and be retrievable", func() {
				So(err, ShouldBeNil)
				So(logger.Get(), ShouldNotBeNil)
			})

			Convey("And named loggers should derive from it", func() {
				named := logger.Named("extract")
				So(named, ShouldNotBeNil)

				// Logging must not panic.
				named.Info(context.Background(), "hello",
					logger.String("k", "v"),
					logger.Int("n", 1),
					logger.Float64("f", 1.5),
					logger.Bool("b", true),
				)
			})
		})

		Convey("When setting the level from a string", func() {
			So(logger.Init(), ShouldBeNil)

			Convey("Then known levels should be accepted", func() {
				for _, lvl := range []string{"debug", "info", "warn", "warning", "error", "", "  INFO "} {
					So(logger.SetLevelString(lvl), ShouldBeNil)
				}
			})

			Convey("And unknown levels should be rejected", func() {
				So(logger.SetLevelString("loud"), ShouldNotBeNil)
			})
		})

		Convey("When syncing", func() {
			So(logger.Sync(), ShouldBeNil)
		})
	})
}
