package logic

import (
	"sort"
	"strconv"

	"github.com/cricstats/analytics-api/internal/dataset"
	"github.com/cricstats/analytics-api/internal/models"
)

// The six scoring outcomes a batter can produce off the bat. Fives exist
// in theory but the exports never carry them, matching the source data.
var runsBuckets = [6]int{0, 1, 2, 3, 4, 6}

// Win-margin previews are capped; the full matches table can run to
// thousands of rows.
const maxMarginRows = 20

// runsDistribution counts deliveries per batter-runs bucket. Every bucket
// is always present, zero-filled when no delivery scored that value.
func runsDistribution(ball *dataset.Table) []models.RunsBucket {
	counts := ball.ValueCounts("runs_batter")
	out := make([]models.RunsBucket, 0, len(runsBuckets))
	for _, r := range runsBuckets {
		out = append(out, models.RunsBucket{Runs: r, Count: counts[strconv.Itoa(r)]})
	}
	return out
}

// distribution counts distinct non-null values of a column, most frequent
// first. Null cells carry no information (no dismissal, no extras) and
// are excluded entirely.
func distribution(t *dataset.Table, col string) []models.CountEntry {
	return sortedCounts(t.ValueCounts(col))
}

func sortedCounts(counts map[string]int) []models.CountEntry {
	out := make([]models.CountEntry, 0, len(counts))
	for label, n := range counts {
		out = append(out, models.CountEntry{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// ballTotals computes the four scalar aggregates over the ball table.
// Missing columns sum to zero; total balls is the plain row count.
func ballTotals(ball *dataset.Table) *models.Totals {
	return &models.Totals{
		Runs:    ball.SumInt("runs_total"),
		Wickets: ball.CountNonEmpty("wicket_type"),
		Extras:  ball.SumInt("runs_extras"),
		Balls:   ball.Len(),
	}
}

// tossDecisions groups the info table by (toss winner, decision) pair.
// Both columns must be present or the section is omitted.
func tossDecisions(info *dataset.Table) []models.TossDecisionEntry {
	if !info.HasColumn("toss_winner") || !info.HasColumn("toss_decision") {
		return nil
	}
	type key struct{ team, decision string }
	groups := make(map[key]int)
	for i := 0; i < info.Len(); i++ {
		k := key{info.Value(i, "toss_winner"), info.Value(i, "toss_decision")}
		if k.team == "" && k.decision == "" {
			continue
		}
		groups[k]++
	}
	out := make([]models.TossDecisionEntry, 0, len(groups))
	for k, n := range groups {
		out = append(out, models.TossDecisionEntry{Team: k.team, Decision: k.decision, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].Team != out[j].Team {
			return out[i].Team < out[j].Team
		}
		return out[i].Decision < out[j].Decision
	})
	return out
}

// winMargins builds the margin preview table. It requires the winner
// column plus at least one margin column; rows where all four fields are
// null are dropped.
func winMargins(matches *dataset.Table) []models.WinMargin {
	if !matches.HasColumn("outcome.winner") {
		return nil
	}
	if !matches.HasColumn("outcome.by.wickets") && !matches.HasColumn("outcome.by.runs") {
		return nil
	}
	var out []models.WinMargin
	for i := 0; i < matches.Len() && len(out) < maxMarginRows; i++ {
		m := models.WinMargin{
			Winner:    matches.Value(i, "outcome.winner"),
			ByWickets: matches.Value(i, "outcome.by.wickets"),
			ByRuns:    matches.Value(i, "outcome.by.runs"),
			Result:    matches.Value(i, "outcome.result"),
		}
		if m.Winner == "" && m.ByWickets == "" && m.ByRuns == "" && m.Result == "" {
			continue
		}
		out = append(out, m)
	}
	return out
}
