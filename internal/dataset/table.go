// Package dataset reads the per-category CSV exports produced by the
// ingestion pipeline and exposes them as in-memory tables with the small
// set of aggregation primitives the stats services need.
package dataset

import (
	"strconv"
)

// Table is an immutable in-memory tabular frame. Cells are kept as raw CSV
// strings; an empty cell is the null value. A table read from a missing
// file has no columns at all, which is how callers distinguish "file not
// present" from "file present but no rows".
type Table struct {
	cols   []string
	colIdx map[string]int
	rows   [][]string
}

// NewTable builds a table from a header and rows. Rows shorter than the
// header are padded with empty cells so every column access is safe. The
// rows slice is copied; the caller's slice is left untouched.
func NewTable(cols []string, rows [][]string) *Table {
	idx := make(map[string]int, len(cols))
	for i, c := range cols {
		idx[c] = i
	}
	held := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) < len(cols) {
			padded := make([]string, len(cols))
			copy(padded, row)
			row = padded
		}
		held[i] = row
	}
	return &Table{cols: cols, colIdx: idx, rows: held}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return len(t.rows) == 0
}

// NumColumns returns the number of columns. Zero means the source file
// was absent (or had no header).
func (t *Table) NumColumns() int {
	return len(t.cols)
}

// HasColumn reports whether the named column is present. Optional
// dashboard sections branch on this capability check rather than probing
// cell values.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.colIdx[name]
	return ok
}

// Value returns the cell at row i in the named column, or "" when the
// column is absent.
func (t *Table) Value(i int, col string) string {
	j, ok := t.colIdx[col]
	if !ok || j >= len(t.rows[i]) {
		return ""
	}
	return t.rows[i][j]
}

// Filter returns a new table containing only the rows for which keep
// returns true. The column set is preserved unchanged.
func (t *Table) Filter(keep func(i int) bool) *Table {
	var rows [][]string
	for i := range t.rows {
		if keep(i) {
			rows = append(rows, t.rows[i])
		}
	}
	return &Table{cols: t.cols, colIdx: t.colIdx, rows: rows}
}

// ValueCounts counts occurrences of each distinct non-empty value in the
// named column. An absent column yields an empty map.
func (t *Table) ValueCounts(col string) map[string]int {
	counts := make(map[string]int)
	if !t.HasColumn(col) {
		return counts
	}
	for i := range t.rows {
		if v := t.Value(i, col); v != "" {
			counts[v]++
		}
	}
	return counts
}

// SumInt sums the named column as integers. Empty cells, unparsable cells
// and an absent column all contribute zero.
func (t *Table) SumInt(col string) int64 {
	if !t.HasColumn(col) {
		return 0
	}
	var sum int64
	for i := range t.rows {
		v := t.Value(i, col)
		if v == "" {
			continue
		}
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			sum += n
			continue
		}
		// Some exports carry integral values as floats ("4.0").
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			sum += int64(f)
		}
	}
	return sum
}

// CountNonEmpty counts rows with a non-empty cell in the named column.
func (t *Table) CountNonEmpty(col string) int {
	if !t.HasColumn(col) {
		return 0
	}
	n := 0
	for i := range t.rows {
		if t.Value(i, col) != "" {
			n++
		}
	}
	return n
}

// CountEqual counts rows whose cell in the named column equals value.
func (t *Table) CountEqual(col, value string) int {
	if !t.HasColumn(col) {
		return 0
	}
	n := 0
	for i := range t.rows {
		if t.Value(i, col) == value {
			n++
		}
	}
	return n
}
