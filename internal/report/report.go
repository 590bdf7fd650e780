// Package report renders the console summary of a stats collection: a
// detailed block for one country followed by the leaders in each metric.
package report

import (
	"io"
	"strings"

	"github.com/okian/fifastats/internal/domain/stats"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const ruleWidth = 32

// Option configures a Reporter.
type Option func(*Reporter)

// WithLanguage sets the BCP 47 tag used for number formatting. Unparseable
// tags fall back to English.
func WithLanguage(tag string) Option {
	return func(r *Reporter) {
		t, err := language.Parse(tag)
		if err != nil {
			return
		}
		r.tag = t
	}
}

// Reporter writes human-readable reports.
type Reporter struct {
	w   io.Writer
	tag language.Tag
	p   *message.Printer
}

// New returns a Reporter writing to w.
func New(w io.Writer, opts ...Option) *Reporter {
	r := &Reporter{w: w, tag: language.English}
	for _, opt := range opts {
		opt(r)
	}
	r.p = message.NewPrinter(r.tag)
	return r
}

// TitleWinRateRatio divides titles by win rate, rounded to four decimals.
// It is undefined for a zero win rate, reported as false.
func TitleWinRateRatio(rec stats.Record) (float64, bool) {
	rate := rec.WinRatePercent()
	if rate <= 0 {
		return 0, false
	}
	return stats.RoundTo(float64(rec.Titles())/rate, 4), true
}

// Country writes the detail block for one record.
func (r *Reporter) Country(rec stats.Record) {
	r.p.Fprintf(r.w, "Statistics for %s:\n", rec.Name())
	r.p.Fprintf(r.w, "%s\n", strings.Repeat("-", ruleWidth))
	r.p.Fprintf(r.w, "Matches played: %d\n", rec.Played())
	r.p.Fprintf(r.w, "Goals scored: %d\n", rec.GoalsFor())
	r.p.Fprintf(r.w, "Wins: %d\n", rec.Wins())
	r.p.Fprintf(r.w, "Average goals per match: %.2f\n", rec.AverageGoalsPerGame())
	r.p.Fprintf(r.w, "Win rate: %.2f%%\n", rec.WinRatePercent())
	r.p.Fprintf(r.w, "Goal difference: %d\n", rec.GoalDiff())
	r.p.Fprintf(r.w, "Efficiency index: %.2f%%\n", rec.EfficiencyIndex())
	r.p.Fprintf(r.w, "Titles: %d\n", rec.Titles())
	if ratio, ok := TitleWinRateRatio(rec); ok {
		r.p.Fprintf(r.w, "Titles to win rate ratio: %.4f\n", ratio)
	}
}

// Leaders writes the top country for each metric. Lines for an empty
// collection say so instead of naming a country.
func (r *Reporter) Leaders(c *stats.Collection) {
	if rec, ok := c.TopByTitles(); ok {
		r.p.Fprintf(r.w, "Most titles: %s (%d)\n", rec.Name(), rec.Titles())
	} else {
		r.p.Fprintf(r.w, "Most titles: no data\n")
	}
	if rec, ok := c.TopByWinRate(); ok {
		r.p.Fprintf(r.w, "Highest win rate: %s (%.2f%%)\n", rec.Name(), rec.WinRatePercent())
	} else {
		r.p.Fprintf(r.w, "Highest win rate: no data\n")
	}
	if rec, ok := c.MostEfficient(); ok {
		r.p.Fprintf(r.w, "Most efficient: %s (index %.2f%%)\n", rec.Name(), rec.EfficiencyIndex())
	} else {
		r.p.Fprintf(r.w, "Most efficient: no data\n")
	}
}

// Full writes the detail block for country (or a not-found line) followed by
// a blank line and the leaders.
func (r *Reporter) Full(c *stats.Collection, country string) {
	if rec, ok := c.FindByName(country); ok {
		r.Country(rec)
	} else {
		r.p.Fprintf(r.w, "Country %q not found in the dataset.\n", country)
	}
	r.p.Fprintf(r.w, "\n")
	r.Leaders(c)
}
