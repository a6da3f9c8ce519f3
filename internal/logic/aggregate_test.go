package logic

import (
	"reflect"
	"testing"

	"github.com/cricstats/analytics-api/internal/dataset"
	"github.com/cricstats/analytics-api/internal/models"
)

func TestRunsDistribution(t *testing.T) {
	ball := dataset.NewTable(
		[]string{"match_id", "runs_batter"},
		[][]string{{"1", "4"}, {"1", "0"}, {"2", "6"}},
	)

	got := runsDistribution(ball)
	want := []models.RunsBucket{
		{Runs: 0, Count: 1},
		{Runs: 1, Count: 0},
		{Runs: 2, Count: 0},
		{Runs: 3, Count: 0},
		{Runs: 4, Count: 1},
		{Runs: 6, Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("runsDistribution = %v, want %v", got, want)
	}
}

func TestRunsDistributionIgnoresForeignValues(t *testing.T) {
	ball := dataset.NewTable(
		[]string{"runs_batter"},
		[][]string{{"5"}, {"7"}, {"4"}},
	)

	got := runsDistribution(ball)
	if len(got) != 6 {
		t.Fatalf("buckets = %d, want exactly 6", len(got))
	}
	total := 0
	for _, b := range got {
		total += b.Count
	}
	if total != 1 {
		t.Errorf("counted %d deliveries, want 1 (values outside the bucket set are ignored)", total)
	}
}

func TestRunsDistributionEmptyTable(t *testing.T) {
	got := runsDistribution(dataset.NewTable(nil, nil))
	if len(got) != 6 {
		t.Fatalf("buckets = %d, want 6 even for an empty table", len(got))
	}
	for _, b := range got {
		if b.Count != 0 {
			t.Errorf("bucket %d = %d, want 0", b.Runs, b.Count)
		}
	}
}

func TestDistributionOrdering(t *testing.T) {
	ball := dataset.NewTable(
		[]string{"wicket_type"},
		[][]string{{"caught"}, {"bowled"}, {"caught"}, {""}, {"lbw"}, {"bowled"}},
	)

	got := distribution(ball, "wicket_type")
	// Most frequent first; equal counts break alphabetically.
	want := []models.CountEntry{
		{Label: "bowled", Count: 2},
		{Label: "caught", Count: 2},
		{Label: "lbw", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("distribution = %v, want %v", got, want)
	}
}

func TestBallTotals(t *testing.T) {
	tests := []struct {
		name string
		cols []string
		rows [][]string
		want models.Totals
	}{
		{
			name: "Full Columns",
			cols: []string{"runs_total", "runs_extras", "wicket_type"},
			rows: [][]string{{"4", "0", ""}, {"1", "1", "caught"}, {"6", "0", ""}},
			want: models.Totals{Runs: 11, Wickets: 1, Extras: 1, Balls: 3},
		},
		{
			name: "Missing Runs Total Defaults To Zero",
			cols: []string{"runs_batter"},
			rows: [][]string{{"4"}, {"0"}, {"6"}},
			want: models.Totals{Runs: 0, Wickets: 0, Extras: 0, Balls: 3},
		},
		{
			name: "Empty Table",
			cols: nil,
			rows: nil,
			want: models.Totals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ballTotals(dataset.NewTable(tt.cols, tt.rows))
			if *got != tt.want {
				t.Errorf("ballTotals = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestTossDecisions(t *testing.T) {
	t.Run("Grouped Pairs", func(t *testing.T) {
		info := dataset.NewTable(
			[]string{"toss_winner", "toss_decision"},
			[][]string{
				{"India", "bat"},
				{"India", "bat"},
				{"India", "field"},
				{"Australia", "field"},
			},
		)
		got := tossDecisions(info)
		want := []models.TossDecisionEntry{
			{Team: "India", Decision: "bat", Count: 2},
			{Team: "Australia", Decision: "field", Count: 1},
			{Team: "India", Decision: "field", Count: 1},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("tossDecisions = %v, want %v", got, want)
		}
	})

	t.Run("Missing Column Omits Section", func(t *testing.T) {
		info := dataset.NewTable([]string{"toss_winner"}, [][]string{{"India"}})
		if got := tossDecisions(info); got != nil {
			t.Errorf("tossDecisions = %v, want nil without both columns", got)
		}
	})
}

func TestWinMargins(t *testing.T) {
	t.Run("Preview With Blank Rows Dropped", func(t *testing.T) {
		matches := dataset.NewTable(
			[]string{"match_id", "outcome.winner", "outcome.by.wickets", "outcome.by.runs", "outcome.result"},
			[][]string{
				{"1", "India", "5", "", ""},
				{"2", "", "", "", ""},
				{"3", "Australia", "", "20", ""},
				{"4", "", "", "", "tie"},
			},
		)
		got := winMargins(matches)
		want := []models.WinMargin{
			{Winner: "India", ByWickets: "5"},
			{Winner: "Australia", ByRuns: "20"},
			{Result: "tie"},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("winMargins = %v, want %v", got, want)
		}
	})

	t.Run("Requires A Margin Column", func(t *testing.T) {
		matches := dataset.NewTable(
			[]string{"match_id", "outcome.winner"},
			[][]string{{"1", "India"}},
		)
		if got := winMargins(matches); got != nil {
			t.Errorf("winMargins = %v, want nil without margin columns", got)
		}
	})

	t.Run("Capped At Twenty Rows", func(t *testing.T) {
		var rows [][]string
		for i := 0; i < 30; i++ {
			rows = append(rows, []string{"India", "3"})
		}
		matches := dataset.NewTable([]string{"outcome.winner", "outcome.by.wickets"}, rows)
		if got := winMargins(matches); len(got) != maxMarginRows {
			t.Errorf("margin rows = %d, want %d", len(got), maxMarginRows)
		}
	})
}
