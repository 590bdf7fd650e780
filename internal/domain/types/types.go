// Package types contains common types used across the application
package types

// CountrySummary is the flat, read-only view of one country's record
// with its derived metrics already computed.
type CountrySummary struct {
	Name                string  `json:"name"`
	Participated        int     `json:"participated"`
	Titles              int     `json:"titles"`
	Played              int     `json:"played"`
	Wins                int     `json:"wins"`
	Draws               int     `json:"draws"`
	Losses              int     `json:"losses"`
	GoalsFor            int     `json:"goals_for"`
	GoalsAgainst        int     `json:"goals_against"`
	Points              int     `json:"points"`
	GoalDiff            int     `json:"goal_diff"`
	AverageGoalsPerGame float64 `json:"average_goals_per_game"`
	WinRatePercent      float64 `json:"win_rate_percent"`
	EfficiencyIndex     float64 `json:"efficiency_index"`
}
