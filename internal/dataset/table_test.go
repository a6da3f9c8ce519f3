package dataset

import (
	"testing"
)

func TestTableValueCounts(t *testing.T) {
	tbl := NewTable(
		[]string{"match_id", "wicket_type"},
		[][]string{
			{"1", "caught"},
			{"1", ""},
			{"2", "caught"},
			{"2", "bowled"},
		},
	)

	counts := tbl.ValueCounts("wicket_type")
	if counts["caught"] != 2 || counts["bowled"] != 1 {
		t.Errorf("counts = %v, want caught=2 bowled=1", counts)
	}
	if _, ok := counts[""]; ok {
		t.Error("empty cells must be excluded from value counts")
	}

	if got := tbl.ValueCounts("no_such_column"); len(got) != 0 {
		t.Errorf("counts for absent column = %v, want empty", got)
	}
}

func TestTableSumInt(t *testing.T) {
	tests := []struct {
		name string
		cols []string
		rows [][]string
		col  string
		want int64
	}{
		{
			name: "Plain Integers",
			cols: []string{"runs_total"},
			rows: [][]string{{"4"}, {"0"}, {"6"}},
			col:  "runs_total",
			want: 10,
		},
		{
			name: "Float Exports",
			cols: []string{"runs_total"},
			rows: [][]string{{"4.0"}, {"2.0"}},
			col:  "runs_total",
			want: 6,
		},
		{
			name: "Empty And Unparsable Cells",
			cols: []string{"runs_total"},
			rows: [][]string{{"3"}, {""}, {"n/a"}},
			col:  "runs_total",
			want: 3,
		},
		{
			name: "Absent Column",
			cols: []string{"runs_batter"},
			rows: [][]string{{"4"}},
			col:  "runs_total",
			want: 0,
		},
		{
			name: "Empty Table",
			cols: nil,
			rows: nil,
			col:  "runs_total",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := NewTable(tt.cols, tt.rows)
			if got := tbl.SumInt(tt.col); got != tt.want {
				t.Errorf("SumInt(%q) = %d, want %d", tt.col, got, tt.want)
			}
		})
	}
}

func TestTableFilter(t *testing.T) {
	tbl := NewTable(
		[]string{"match_id", "runs_batter"},
		[][]string{{"1", "4"}, {"2", "6"}, {"1", "0"}},
	)

	got := tbl.Filter(func(i int) bool { return tbl.Value(i, "match_id") == "1" })
	if got.Len() != 2 {
		t.Fatalf("filtered rows = %d, want 2", got.Len())
	}
	if !got.HasColumn("runs_batter") {
		t.Error("filter must preserve the column set")
	}
	if got.SumInt("runs_batter") != 4 {
		t.Errorf("filtered sum = %d, want 4", got.SumInt("runs_batter"))
	}
}

func TestTableCountEqual(t *testing.T) {
	tbl := NewTable(
		[]string{"wicket_type"},
		[][]string{{"caught"}, {"run out"}, {"caught"}, {""}},
	)
	if got := tbl.CountEqual("wicket_type", "caught"); got != 2 {
		t.Errorf("CountEqual caught = %d, want 2", got)
	}
	if got := tbl.CountEqual("wicket_type", "run out"); got != 1 {
		t.Errorf("CountEqual run out = %d, want 1", got)
	}
	if got := tbl.CountNonEmpty("wicket_type"); got != 3 {
		t.Errorf("CountNonEmpty = %d, want 3", got)
	}
}

func TestTableShortRowPadding(t *testing.T) {
	tbl := NewTable(
		[]string{"match_id", "teams", "player_of_match"},
		[][]string{{"1", "India vs Australia"}},
	)
	if got := tbl.Value(0, "player_of_match"); got != "" {
		t.Errorf("padded cell = %q, want empty", got)
	}
}

func TestNewTableLeavesInputRowsUntouched(t *testing.T) {
	rows := [][]string{{"1", "India vs Australia"}}
	NewTable([]string{"match_id", "teams", "player_of_match"}, rows)
	if len(rows[0]) != 2 {
		t.Errorf("caller row length = %d, want 2", len(rows[0]))
	}
}
