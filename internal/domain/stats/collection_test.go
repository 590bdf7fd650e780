package stats_test

import (
	"errors"
	"testing"

	"github.com/okian/fifastats/internal/domain/stats"
	. "github.com/smartystreets/goconvey/convey"
)

func record(name string, fields stats.Row) stats.Record {
	row := stats.Row{"Country": name}
	for k, v := range fields {
		row[k] = v
	}
	return stats.NewRecord(row)
}

func TestCollection_FindByName(t *testing.T) {
	Convey("Given a collection of Spain and Brazil", t, func() {
		c := stats.NewCollection([]stats.Record{
			record("Spain", stats.Row{"Titles": 1}),
			record("Brazil", stats.Row{"Titles": 5}),
		})

		Convey("When searching for Brazil", func() {
			r, ok := c.FindByName("Brazil")

			Convey("Then the Brazil record is returned", func() {
				So(ok, ShouldBeTrue)
				So(r.Name(), ShouldEqual, "Brazil")
				So(r.Titles(), ShouldEqual, 5)
			})
		})

		Convey("When searching for France", func() {
			_, ok := c.FindByName("France")

			Convey("Then nothing is found", func() {
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When searching with different case", func() {
			_, ok := c.FindByName("brazil")

			Convey("Then the match is case-sensitive", func() {
				So(ok, ShouldBeFalse)
			})
		})
	})

	Convey("Given a collection with a duplicated name", t, func() {
		c := stats.NewCollection([]stats.Record{
			record("Germany", stats.Row{"Titles": 4}),
			record("Germany", stats.Row{"Titles": 3}),
		})

		Convey("Then the first match wins", func() {
			r, ok := c.FindByName("Germany")
			So(ok, ShouldBeTrue)
			So(r.Titles(), ShouldEqual, 4)
		})
	})
}

func TestCollection_Top(t *testing.T) {
	Convey("Given Brazil, Germany and Italy", t, func() {
		c := stats.NewCollection([]stats.Record{
			record("Brazil", stats.Row{"Titles": 5, "Played": 10, "Win": 6, "Draw": 1}),
			record("Germany", stats.Row{"Titles": 4, "Played": 10, "Win": 7, "Draw": 0}),
			record("Italy", stats.Row{"Titles": 4, "Played": 10, "Win": 6, "Draw": 4}),
		})

		Convey("Then Brazil has the most titles", func() {
			r, ok := c.TopByTitles()
			So(ok, ShouldBeTrue)
			So(r.Name(), ShouldEqual, "Brazil")
		})

		Convey("Then Germany has the best win rate", func() {
			r, ok := c.TopByWinRate()
			So(ok, ShouldBeTrue)
			So(r.Name(), ShouldEqual, "Germany")
		})

		Convey("Then Italy is the most efficient", func() {
			r, ok := c.MostEfficient()
			So(ok, ShouldBeTrue)
			So(r.Name(), ShouldEqual, "Italy")
		})
	})

	Convey("Given a tie on titles", t, func() {
		c := stats.NewCollection([]stats.Record{
			record("Germany", stats.Row{"Titles": 4}),
			record("Italy", stats.Row{"Titles": 4}),
		})

		Convey("Then the first occurrence wins", func() {
			r, ok := c.TopByTitles()
			So(ok, ShouldBeTrue)
			So(r.Name(), ShouldEqual, "Germany")
		})

		Convey("And reversing the input flips the winner", func() {
			rev := stats.NewCollection([]stats.Record{
				record("Italy", stats.Row{"Titles": 4}),
				record("Germany", stats.Row{"Titles": 4}),
			})
			r, ok := rev.TopByTitles()
			So(ok, ShouldBeTrue)
			So(r.Name(), ShouldEqual, "Italy")
		})
	})

	Convey("Given ties on derived metrics", t, func() {
		c := stats.NewCollection([]stats.Record{
			record("Uruguay", stats.Row{"Played": 4, "Win": 2, "Draw": 2}),
			record("Chile", stats.Row{"Played": 8, "Win": 4, "Draw": 4}),
		})

		Convey("Then the first occurrence wins for win rate and efficiency", func() {
			r, _ := c.TopByWinRate()
			So(r.Name(), ShouldEqual, "Uruguay")
			r, _ = c.MostEfficient()
			So(r.Name(), ShouldEqual, "Uruguay")
		})
	})

	Convey("Given an empty collection", t, func() {
		c := stats.NewCollection(nil)

		Convey("Then every top query reports empty", func() {
			_, ok := c.TopByTitles()
			So(ok, ShouldBeFalse)
			_, ok = c.TopByWinRate()
			So(ok, ShouldBeFalse)
			_, ok = c.MostEfficient()
			So(ok, ShouldBeFalse)
			So(c.Len(), ShouldEqual, 0)
		})
	})

	Convey("Given a nil collection", t, func() {
		var c *stats.Collection

		Convey("Then queries report empty instead of panicking", func() {
			_, ok := c.TopByTitles()
			So(ok, ShouldBeFalse)
			_, ok = c.FindByName("Spain")
			So(ok, ShouldBeFalse)
			So(c.Records(), ShouldBeNil)
		})
	})

	Convey("Given an unknown metric", t, func() {
		c := stats.NewCollection([]stats.Record{record("Spain", nil)})

		Convey("Then TopBy reports nothing", func() {
			_, ok := c.TopBy(stats.Metric("goals"))
			So(ok, ShouldBeFalse)
		})
	})
}

func TestCollection_Ownership(t *testing.T) {
	Convey("Given a slice handed to a collection", t, func() {
		in := []stats.Record{record("Spain", nil), record("Brazil", nil)}
		c := stats.NewCollection(in)

		Convey("When the caller mutates its slice", func() {
			in[0] = record("France", nil)

			Convey("Then the collection is unaffected", func() {
				So(c.Records()[0].Name(), ShouldEqual, "Spain")
			})
		})

		Convey("When the returned records are mutated", func() {
			out := c.Records()
			out[1] = record("France", nil)

			Convey("Then the collection is unaffected", func() {
				_, ok := c.FindByName("Brazil")
				So(ok, ShouldBeTrue)
			})
		})
	})
}

func TestFromRows(t *testing.T) {
	Convey("Given parsed rows", t, func() {
		c := stats.FromRows([]stats.Row{
			{"Country": "Spain", "Titles": "1"},
			{"Country": "Brazil", "Titles": "5"},
		})

		Convey("Then records keep input order", func() {
			So(c.Len(), ShouldEqual, 2)
			So(c.Records()[0].Name(), ShouldEqual, "Spain")
			So(c.Records()[1].Name(), ShouldEqual, "Brazil")
		})
	})
}

func TestParseMetric(t *testing.T) {
	Convey("Given metric names", t, func() {
		Convey("Then known names resolve", func() {
			m, err := stats.ParseMetric("titles")
			So(err, ShouldBeNil)
			So(m, ShouldEqual, stats.MetricTitles)

			m, err = stats.ParseMetric("Win-Rate")
			So(err, ShouldBeNil)
			So(m, ShouldEqual, stats.MetricWinRate)

			m, err = stats.ParseMetric(" efficiency ")
			So(err, ShouldBeNil)
			So(m, ShouldEqual, stats.MetricEfficiency)
		})

		Convey("Then unknown names fail with ErrUnknownMetric", func() {
			_, err := stats.ParseMetric("goals")
			So(err, ShouldNotBeNil)
			So(errors.Is(err, stats.ErrUnknownMetric), ShouldBeTrue)
		})

		Convey("Then Metrics lists every supported metric", func() {
			So(stats.Metrics(), ShouldResemble, []stats.Metric{stats.MetricTitles, stats.MetricWinRate, stats.MetricEfficiency})
		})
	})
}
