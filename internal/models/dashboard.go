package models

// Category is one competition grouping of matches (e.g. ODIs, tests).
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// CountEntry is one label/count pair of a value distribution.
type CountEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// RunsBucket is one bucket of the runs-per-delivery distribution.
// The dashboard always carries exactly six buckets: 0, 1, 2, 3, 4, 6.
type RunsBucket struct {
	Runs  int `json:"runs"`
	Count int `json:"count"`
}

// Totals holds the four scalar aggregates over the ball-by-ball table.
type Totals struct {
	Runs    int64 `json:"total_runs"`
	Wickets int   `json:"total_wickets"`
	Extras  int64 `json:"total_extras"`
	Balls   int   `json:"total_balls"`
}

// BattingEntry is one row of the top run-scorer leaderboard.
type BattingEntry struct {
	Rank   int    `json:"rank"`
	Player string `json:"player"`
	Runs   int64  `json:"runs"`
}

// BowlingEntry is one row of the top wicket-taker leaderboard.
type BowlingEntry struct {
	Rank    int    `json:"rank"`
	Player  string `json:"player"`
	Wickets int    `json:"wickets"`
}

// FieldingEntry is one row of the top fielder leaderboard.
// Total is always Catches + RunOuts.
type FieldingEntry struct {
	Rank    int    `json:"rank"`
	Player  string `json:"player"`
	Total   int    `json:"total"`
	Catches int    `json:"catches"`
	RunOuts int    `json:"runouts"`
}

// TossDecisionEntry is one (toss winner, decision) group with its count.
type TossDecisionEntry struct {
	Team     string `json:"toss_winner"`
	Decision string `json:"toss_decision"`
	Count    int    `json:"count"`
}

// WinMargin is one row of the win-margin preview table. The margin cells
// are carried as raw CSV values since a match is decided by either runs
// or wickets, never both.
type WinMargin struct {
	Winner    string `json:"winner"`
	ByWickets string `json:"by_wickets"`
	ByRuns    string `json:"by_runs"`
	Result    string `json:"result"`
}

// Dashboard is the full aggregate document for one category, optionally
// narrowed to a single team. Optional sections are nil when their source
// table or column is absent; Warning is set (and every section omitted)
// when no ball-by-ball data survives the selection.
type Dashboard struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Team     string `json:"team,omitempty"`
	Warning  string `json:"warning,omitempty"`

	RunsDistribution []RunsBucket `json:"runs_distribution,omitempty"`
	WicketTypes      []CountEntry `json:"wicket_types,omitempty"`
	ExtrasTypes      []CountEntry `json:"extras_types,omitempty"`
	Totals           *Totals      `json:"totals,omitempty"`

	TopRunScorers   []BattingEntry  `json:"top_run_scorers,omitempty"`
	TopWicketTakers []BowlingEntry  `json:"top_wicket_takers,omitempty"`
	TopFielders     []FieldingEntry `json:"top_fielders,omitempty"`

	TossWins      []CountEntry        `json:"toss_wins,omitempty"`
	TossDecisions []TossDecisionEntry `json:"toss_decisions,omitempty"`

	PlayerOfMatchAwards []CountEntry `json:"player_of_match_awards,omitempty"`
	MatchWinners        []CountEntry `json:"match_winners,omitempty"`
	WinMargins          []WinMargin  `json:"win_margins,omitempty"`
}

// PlayerSummary aggregates a single player's batter, bowler and fielder
// record tables.
type PlayerSummary struct {
	Player   string `json:"player"`
	Category string `json:"category"`
	Team     string `json:"team,omitempty"`

	Runs       int64 `json:"runs"`
	BallsFaced int   `json:"balls_faced"`

	Wickets     int `json:"wickets"`
	BallsBowled int `json:"balls_bowled"`

	Catches            int `json:"catches"`
	RunOuts            int `json:"runouts"`
	FieldingDismissals int `json:"fielding_dismissals"`
}
