// Package table implements the owning 2-D cell store and the operations
// over it that must preserve the rectangular-shape invariant: every row
// has the same number of cells after load-normalization, and every
// subsequent mutation must preserve that.
package table

import "github.com/vippsas/sqltab/internal/sqltaberr"

// Table is an ordered sequence of rows plus the output delimiter byte.
// The table owns its rows; rows own their cells; cells own their
// content. Nothing is shared, nothing is cyclic.
type Table struct {
	Rows      [][]Cell
	Delimiter byte
}

// Cell is a single variable-length byte string. It has no type; numeric
// interpretation happens on demand by the caller.
type Cell struct {
	content []byte
}

// String returns the cell's content as a string.
func (c *Cell) String() string {
	return string(c.content)
}

// Bytes returns the cell's raw content.
func (c *Cell) Bytes() []byte {
	return c.content
}

// Set replaces the cell's content with a copy of s. Go's slice growth
// already amortizes the "grow the backing buffer as needed" requirement
// from the original allocation API; we keep Set as a named operation so
// call sites read the same way the original store's set_cell does.
func (c *Cell) Set(s []byte) {
	c.content = append(c.content[:0], s...)
}

// New builds an empty table with the given output delimiter.
func New(delimiter byte) *Table {
	return &Table{Delimiter: delimiter}
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns (0 if the table has no rows).
func (t *Table) ColCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// AppendEmptyCell appends a cell with empty content to the given row.
func AppendEmptyCell(row []Cell) []Cell {
	return append(row, Cell{})
}

// AppendRow appends a new row built from the given cell contents,
// taking ownership of copies of each.
func (t *Table) AppendRow(cells ...[]byte) {
	row := make([]Cell, len(cells))
	for i, c := range cells {
		row[i].Set(c)
	}
	t.Rows = append(t.Rows, row)
}

// CheckRectangular validates the rectangular invariant: every row has
// the same length. It is called before and after every command by the
// interpreter and reports ExitInvariant on violation.
func (t *Table) CheckRectangular() error {
	if len(t.Rows) == 0 {
		return nil
	}
	want := len(t.Rows[0])
	for _, r := range t.Rows {
		if len(r) != want {
			return sqltaberr.New(sqltaberr.ExitInvariant, "table.CheckRectangular",
				"row has a different column count than row 0")
		}
	}
	return nil
}

// NormalizeShape pads every row to the widest row's length, then trims
// trailing all-empty columns (stopping at the first column, scanning
// right to left, that is not entirely empty). Column 0 is never
// trimmed even if entirely empty.
func (t *Table) NormalizeShape() {
	width := 0
	for _, r := range t.Rows {
		if len(r) > width {
			width = len(r)
		}
	}
	for i := range t.Rows {
		for len(t.Rows[i]) < width {
			t.Rows[i] = AppendEmptyCell(t.Rows[i])
		}
	}

	for col := width - 1; col >= 1; col-- {
		if !t.columnAllEmpty(col) {
			break
		}
		t.deleteColumn(col)
	}
}

func (t *Table) columnAllEmpty(col int) bool {
	for _, r := range t.Rows {
		if len(r[col].content) != 0 {
			return false
		}
	}
	return true
}

func (t *Table) deleteColumn(col int) {
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i][:col], t.Rows[i][col+1:]...)
	}
}
