// Package stats holds the in-memory analytics model: one Record per country
// and a Collection answering lookup and "top by metric" queries.
//
// The package never reads files or formats text. It consumes rows that a
// loader already parsed and returns plain values.
package stats

import (
	"github.com/okian/fifastats/internal/domain/types"
)

// Field names expected in a Row.
const (
	FieldCountry      = "Country"
	FieldParticipated = "Participated"
	FieldTitles       = "Titles"
	FieldPlayed       = "Played"
	FieldWin          = "Win"
	FieldDraw         = "Draw"
	FieldLoss         = "Loss"
	FieldGoalsFor     = "Goals For"
	FieldGoalsAgainst = "Goals Against"
	FieldPts          = "Pts"
	FieldGoalDiff     = "Goal Diff"
)

// pointsPerWin is the standard football score for a win; a draw is worth one.
const pointsPerWin = 3

// Row maps a field name to its raw value. Values are usually strings coming
// from a tabular source, but any Go number (or json.Number) is accepted.
type Row map[string]any

// Record is one country's aggregate tournament record. It is immutable once
// built; derived metrics are computed on every call and never stored.
type Record struct {
	name         string
	participated int
	titles       int
	played       int
	wins         int
	draws        int
	losses       int
	goalsFor     int
	goalsAgainst int
	points       int
	goalDiff     int
}

// NewRecord builds a Record from a raw row.
//
// Numeric coercion is deliberately lenient: a missing or non-numeric integer
// field becomes 0 and no error is reported. Strings are read up to the first
// non-digit, so "12abc" is 12 and "3.7" is 3. Callers that need strict input
// must validate rows before they get here.
func NewRecord(row Row) Record {
	return Record{
		name:         coerceString(row[FieldCountry]),
		participated: coerceInt(row[FieldParticipated]),
		titles:       coerceInt(row[FieldTitles]),
		played:       coerceInt(row[FieldPlayed]),
		wins:         coerceInt(row[FieldWin]),
		draws:        coerceInt(row[FieldDraw]),
		losses:       coerceInt(row[FieldLoss]),
		goalsFor:     coerceInt(row[FieldGoalsFor]),
		goalsAgainst: coerceInt(row[FieldGoalsAgainst]),
		points:       coerceInt(row[FieldPts]),
		goalDiff:     coerceInt(row[FieldGoalDiff]),
	}
}

// Name returns the country name.
func (r Record) Name() string { return r.name }

// Participated returns the number of tournaments entered.
func (r Record) Participated() int { return r.participated }

// Titles returns the number of tournaments won.
func (r Record) Titles() int { return r.titles }

// Played returns the number of matches played.
func (r Record) Played() int { return r.played }

// Wins returns the number of matches won.
func (r Record) Wins() int { return r.wins }

// Draws returns the number of matches drawn.
func (r Record) Draws() int { return r.draws }

// Losses returns the number of matches lost.
func (r Record) Losses() int { return r.losses }

// GoalsFor returns the goals scored.
func (r Record) GoalsFor() int { return r.goalsFor }

// GoalsAgainst returns the goals conceded.
func (r Record) GoalsAgainst() int { return r.goalsAgainst }

// Points returns the points total as supplied by the source.
func (r Record) Points() int { return r.points }

// GoalDiff returns the goal difference as supplied by the source; it is not
// recomputed from goals for and against.
func (r Record) GoalDiff() int { return r.goalDiff }

// AverageGoalsPerGame returns goals scored per match played, rounded to two
// decimals. Zero matches played yields 0.
func (r Record) AverageGoalsPerGame() float64 {
	if r.played == 0 {
		return 0
	}
	return roundRatio(bigInt(r.goalsFor), bigInt(r.played))
}

// WinRatePercent returns the share of matches won as a percentage, rounded
// to two decimals. Zero matches played yields 0.
func (r Record) WinRatePercent() float64 {
	if r.played == 0 {
		return 0
	}
	return roundRatio(scaled(bigInt(r.wins), 100), bigInt(r.played))
}

// EfficiencyIndex returns points earned (3 per win, 1 per draw) as a
// percentage of the maximum attainable (3 per match), rounded to two
// decimals. Zero matches played yields 0.
func (r Record) EfficiencyIndex() float64 {
	if r.played == 0 {
		return 0
	}
	earned := scaled(bigInt(r.wins), pointsPerWin)
	earned.Add(earned, bigInt(r.draws))
	return roundRatio(scaled(earned, 100), scaled(bigInt(r.played), pointsPerWin))
}

// Summary snapshots the record and its derived metrics into a flat value.
func (r Record) Summary() types.CountrySummary {
	return types.CountrySummary{
		Name:                r.name,
		Participated:        r.participated,
		Titles:              r.titles,
		Played:              r.played,
		Wins:                r.wins,
		Draws:               r.draws,
		Losses:              r.losses,
		GoalsFor:            r.goalsFor,
		GoalsAgainst:        r.goalsAgainst,
		Points:              r.points,
		GoalDiff:            r.goalDiff,
		AverageGoalsPerGame: r.AverageGoalsPerGame(),
		WinRatePercent:      r.WinRatePercent(),
		EfficiencyIndex:     r.EfficiencyIndex(),
	}
}
