package service_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/fifastats/internal/adapters/loader"
	service "github.com/okian/fifastats/internal/app"
	"github.com/okian/fifastats/internal/domain/stats"
	"github.com/okian/fifastats/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(logger.WithWriter(io.Discard)); err != nil {
		panic(err)
	}
}

const dataset = `Country,Participated,Titles,Played,Win,Draw,Loss,Goals For,Goals Against,Pts,Goal Diff
Brazil,22,5,114,76,19,19,237,108,247,129
Germany,20,4,112,68,21,23,232,130,225,102
Italy,18,4,83,45,21,17,128,77,156,51
Spain,16,1,67,31,17,19,108,75,110,33
`

func writeDataset(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ranking.csv")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestService_Start(t *testing.T) {
	Convey("Given a service pointed at a dataset", t, func() {
		ctx := context.Background()
		svc := service.New(service.WithDataPath(writeDataset(t, dataset)))
		defer svc.Stop()

		Convey("When it is started", func() {
			err := svc.Start(ctx)

			Convey("Then the dataset is loaded", func() {
				So(err, ShouldBeNil)
				st := svc.GetStats()
				So(st["started"], ShouldEqual, true)
				So(st["countries"], ShouldEqual, 4)
			})

			Convey("And starting again is a no-op", func() {
				So(svc.Start(ctx), ShouldBeNil)
			})
		})

		Convey("When it is stopped", func() {
			So(svc.Start(ctx), ShouldBeNil)
			svc.Stop()

			Convey("Then queries report ErrNotStarted", func() {
				So(svc.GetStats()["started"], ShouldEqual, false)
				_, err := svc.Countries(ctx)
				So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			})
		})
	})

	Convey("Given a service pointed at a missing file", t, func() {
		svc := service.New(service.WithDataPath(filepath.Join(t.TempDir(), "nope.csv")))

		Convey("Then Start returns ErrFileNotFound", func() {
			err := svc.Start(context.Background())
			So(errors.Is(err, loader.ErrFileNotFound), ShouldBeTrue)
			So(svc.GetStats()["started"], ShouldEqual, false)
		})
	})
}

func TestService_Queries(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := service.New(service.WithDataPath(writeDataset(t, dataset)))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When looking up a present country", func() {
			s, err := svc.Country(ctx, "Brazil")

			Convey("Then its summary carries derived metrics", func() {
				So(err, ShouldBeNil)
				So(s.Name, ShouldEqual, "Brazil")
				So(s.Titles, ShouldEqual, 5)
				So(s.AverageGoalsPerGame, ShouldEqual, 2.08)
				So(s.WinRatePercent, ShouldEqual, 66.67)
			})
		})

		Convey("When looking up a missing country", func() {
			_, err := svc.Country(ctx, "France")

			Convey("Then ErrNotFound is returned", func() {
				So(errors.Is(err, service.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When listing countries", func() {
			all, err := svc.Countries(ctx)

			Convey("Then dataset order is kept", func() {
				So(err, ShouldBeNil)
				So(len(all), ShouldEqual, 4)
				So(all[0].Name, ShouldEqual, "Brazil")
				So(all[3].Name, ShouldEqual, "Spain")
			})
		})

		Convey("When asking for leaders", func() {
			titles, err := svc.Top(ctx, stats.MetricTitles)
			So(err, ShouldBeNil)
			rate, err := svc.Top(ctx, stats.MetricWinRate)
			So(err, ShouldBeNil)
			eff, err := svc.Top(ctx, stats.MetricEfficiency)
			So(err, ShouldBeNil)

			Convey("Then each metric picks its leader", func() {
				So(titles.Name, ShouldEqual, "Brazil")
				So(rate.Name, ShouldEqual, "Brazil")
				So(eff.Name, ShouldEqual, "Brazil")
			})
		})

		Convey("When asking for an unknown metric", func() {
			_, err := svc.Top(ctx, stats.Metric("goals"))

			Convey("Then ErrUnknownMetric is returned", func() {
				So(errors.Is(err, stats.ErrUnknownMetric), ShouldBeTrue)
			})
		})
	})

	Convey("Given a started service over a header-only dataset", t, func() {
		ctx := context.Background()
		svc := service.New(service.WithDataPath(writeDataset(t, "Country,Titles\n")))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("Then Top reports ErrEmpty", func() {
			_, err := svc.Top(ctx, stats.MetricTitles)
			So(errors.Is(err, service.ErrEmpty), ShouldBeTrue)
		})
	})
}

func TestService_Reload(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		path := writeDataset(t, dataset)
		svc := service.New(service.WithDataPath(path))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When the file changes and the service reloads", func() {
			So(os.WriteFile(path, []byte("Country,Titles\nUruguay,2\n"), 0o600), ShouldBeNil)
			err := svc.Reload(ctx)

			Convey("Then the new collection is served", func() {
				So(err, ShouldBeNil)
				all, err := svc.Countries(ctx)
				So(err, ShouldBeNil)
				So(len(all), ShouldEqual, 1)
				So(all[0].Name, ShouldEqual, "Uruguay")
			})
		})

		Convey("When the file disappears and the service reloads", func() {
			So(os.Remove(path), ShouldBeNil)
			err := svc.Reload(ctx)

			Convey("Then the error is returned and the old data is kept", func() {
				So(errors.Is(err, loader.ErrFileNotFound), ShouldBeTrue)
				all, err := svc.Countries(ctx)
				So(err, ShouldBeNil)
				So(len(all), ShouldEqual, 4)
			})
		})
	})

	Convey("Given a service that was started and stopped", t, func() {
		ctx := context.Background()
		svc := service.New(service.WithDataPath(writeDataset(t, dataset)))
		So(svc.Start(ctx), ShouldBeNil)
		svc.Stop()

		Convey("Then Reload reports ErrNotStarted and stays stopped", func() {
			So(errors.Is(svc.Reload(ctx), service.ErrNotStarted), ShouldBeTrue)
			So(svc.GetStats()["started"], ShouldEqual, false)
		})
	})

	Convey("Given a service that was never started", t, func() {
		svc := service.New()

		Convey("Then Reload reports ErrNotStarted", func() {
			So(errors.Is(svc.Reload(context.Background()), service.ErrNotStarted), ShouldBeTrue)
		})
	})
}
