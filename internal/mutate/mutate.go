// Package mutate implements the row/column insertion and deletion
// operators of spec.md §4.F. Every operator reads the current selection
// rectangle but never writes back to it: later commands see the same
// rectangle even though it may now point at different cells, or past
// the table's new boundary.
package mutate

import (
	"github.com/vippsas/sqltab/internal/selector"
	"github.com/vippsas/sqltab/internal/table"
)

// IRow inserts an empty row (with the table's current column count) at
// index r.R1, shifting existing rows downward. r.R1 is clamped to
// [0, RowCount()] first, since the selection is never re-validated
// after a prior mutation may have shrunk the table.
func IRow(t *table.Table, r selector.Rect) {
	insertRow(t, clampIndex(r.R1, t.RowCount()))
}

// ARow appends after r.R2 if r.R2 is the last row, otherwise inserts
// at r.R2+1. r.R2 is clamped to the table's current last row first.
func ARow(t *table.Table, r selector.Rect) {
	r2 := clampIndex(r.R2, t.RowCount()-1)
	if r2 == t.RowCount()-1 {
		insertRow(t, t.RowCount())
	} else {
		insertRow(t, r2+1)
	}
}

// DRow deletes rows r.R1..=r.R2 inclusive, clamped to [0, last row].
func DRow(t *table.Table, r selector.Rect) {
	last := t.RowCount() - 1
	if last < 0 {
		return
	}
	lo, hi := clampIndex(r.R1, last), clampIndex(r.R2, last)
	if lo > hi {
		return
	}
	t.Rows = append(t.Rows[:lo], t.Rows[hi+1:]...)
}

// ICol inserts an empty column at index r.C1 in every row. r.C1 is
// clamped to [0, ColCount()] first, for the same reason as IRow.
func ICol(t *table.Table, r selector.Rect) {
	insertCol(t, clampIndex(r.C1, t.ColCount()))
}

// ACol appends a column after r.C2 if it is the last column, otherwise
// inserts at r.C2+1. r.C2 is clamped to the table's current last
// column first.
func ACol(t *table.Table, r selector.Rect) {
	c2 := clampIndex(r.C2, t.ColCount()-1)
	if c2 == t.ColCount()-1 {
		insertCol(t, t.ColCount())
	} else {
		insertCol(t, c2+1)
	}
}

// DCol deletes columns r.C1..=r.C2 inclusive in every row, clamped to
// [0, last column].
func DCol(t *table.Table, r selector.Rect) {
	last := t.ColCount() - 1
	if last < 0 {
		return
	}
	lo, hi := clampIndex(r.C1, last), clampIndex(r.C2, last)
	if lo > hi {
		return
	}
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i][:lo], t.Rows[i][hi+1:]...)
	}
}

// clampIndex bounds idx to [0, max].
func clampIndex(idx, max int) int {
	if idx < 0 {
		return 0
	}
	if idx > max {
		return max
	}
	return idx
}

func insertRow(t *table.Table, at int) {
	cols := t.ColCount()
	newRow := make([]table.Cell, cols)
	t.Rows = append(t.Rows, nil)
	copy(t.Rows[at+1:], t.Rows[at:])
	t.Rows[at] = newRow
}

func insertCol(t *table.Table, at int) {
	for i := range t.Rows {
		row := t.Rows[i]
		row = append(row, table.Cell{})
		copy(row[at+1:], row[at:])
		row[at] = table.Cell{}
		t.Rows[i] = row
	}
}
