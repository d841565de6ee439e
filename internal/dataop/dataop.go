// Package dataop implements the data operators of spec.md §4.G: set,
// clear, swap, sum, avg, count and len, all acting over every cell
// within the current selection, clamped to the table's current
// dimensions.
package dataop

import (
	"strconv"
	"strings"

	"github.com/vippsas/sqltab/internal/numfmt"
	"github.com/vippsas/sqltab/internal/selector"
	"github.com/vippsas/sqltab/internal/sqltaberr"
	"github.com/vippsas/sqltab/internal/table"
)

const op = "dataop"

// ParseTarget parses a "[R,C]" argument (each component a positive
// 1-based integer or '-' meaning last row/column) into 0-based indices,
// validated against the table's current dimensions.
func ParseTarget(arg string, rows, cols int) (row, col int, err error) {
	inner := strings.TrimSpace(arg)
	inner = strings.TrimPrefix(inner, "[")
	inner = strings.TrimSuffix(inner, "]")
	parts := strings.Split(inner, ",")
	if len(parts) != 2 {
		return 0, 0, sqltaberr.New(sqltaberr.ExitBadArgument, op, "expected [R,C]")
	}

	resolve := func(raw string, dim int) (int, error) {
		raw = strings.TrimSpace(raw)
		if raw == "-" {
			if dim < 1 {
				return 0, sqltaberr.New(sqltaberr.ExitBadArgument, op, "coordinate out of range")
			}
			return dim - 1, nil
		}
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 1 || n > dim {
			return 0, sqltaberr.New(sqltaberr.ExitBadArgument, op, "coordinate out of range")
		}
		return n - 1, nil
	}

	row, err = resolve(parts[0], rows)
	if err != nil {
		return 0, 0, err
	}
	col, err = resolve(parts[1], cols)
	if err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

// Clamp bounds r to t's current dimensions. Row/column mutation never
// rewrites the selection rectangle, so a later operator can be asked to
// iterate a rectangle that now reaches past the table edge; the
// iteration simply covers fewer cells.
func Clamp(r selector.Rect, t *table.Table) selector.Rect {
	rows, cols := t.RowCount(), t.ColCount()
	out := r
	if out.R2 > rows-1 {
		out.R2 = rows - 1
	}
	if out.R1 > out.R2 {
		out.R1 = out.R2
	}
	if out.C2 > cols-1 {
		out.C2 = cols - 1
	}
	if out.C1 > out.C2 {
		out.C1 = out.C2
	}
	if out.R1 < 0 {
		out.R1 = 0
	}
	if out.C1 < 0 {
		out.C1 = 0
	}
	return out
}

// Set writes value literally (no unquoting) to every cell in C.
func Set(t *table.Table, r selector.Rect, value string) {
	c := Clamp(r, t)
	content := []byte(value)
	for i := c.R1; i <= c.R2; i++ {
		for j := c.C1; j <= c.C2; j++ {
			t.Rows[i][j].Set(content)
		}
	}
}

// Clear writes an empty string to every cell in C.
func Clear(t *table.Table, r selector.Rect) {
	Set(t, r, "")
}

// Swap exchanges the content of every cell in C (excluding the target
// cell itself) with the target cell's content, in row-major iteration
// order. Every exchange is computed against the target's ORIGINAL
// content (snapshotted once before the loop), not against whatever the
// target holds after a prior exchange — see DESIGN.md for why this
// resolves the "rotate vs. pairwise" ambiguity. After the loop the
// target holds the content of the last cell visited in C.
func Swap(t *table.Table, r selector.Rect, targetRow, targetCol int) {
	c := Clamp(r, t)
	original := append([]byte(nil), t.Rows[targetRow][targetCol].Bytes()...)

	for i := c.R1; i <= c.R2; i++ {
		for j := c.C1; j <= c.C2; j++ {
			if i == targetRow && j == targetCol {
				continue
			}
			cur := append([]byte(nil), t.Rows[i][j].Bytes()...)
			t.Rows[i][j].Set(original)
			t.Rows[targetRow][targetCol].Set(cur)
		}
	}
}

// Sum writes the sum of numeric-parseable cells in C to the target
// cell. If any cell in C fails to parse, it writes the literal "NaN"
// instead and stops scanning.
func Sum(t *table.Table, r selector.Rect, targetRow, targetCol int) {
	c := Clamp(r, t)
	var sum float64
	for i := c.R1; i <= c.R2; i++ {
		for j := c.C1; j <= c.C2; j++ {
			v, ok := numfmt.Parse(t.Rows[i][j].String())
			if !ok {
				t.Rows[targetRow][targetCol].Set([]byte("NaN"))
				return
			}
			sum += v
		}
	}
	t.Rows[targetRow][targetCol].Set([]byte(numfmt.Format(sum)))
}

// Avg is Sum divided by the count of numeric-parseable cells scanned;
// it stops scanning and writes "NaN" under the same condition as Sum.
func Avg(t *table.Table, r selector.Rect, targetRow, targetCol int) {
	c := Clamp(r, t)
	var sum float64
	var n int
	for i := c.R1; i <= c.R2; i++ {
		for j := c.C1; j <= c.C2; j++ {
			v, ok := numfmt.Parse(t.Rows[i][j].String())
			if !ok {
				t.Rows[targetRow][targetCol].Set([]byte("NaN"))
				return
			}
			sum += v
			n++
		}
	}
	if n == 0 {
		t.Rows[targetRow][targetCol].Set([]byte("NaN"))
		return
	}
	t.Rows[targetRow][targetCol].Set([]byte(numfmt.Format(sum / float64(n))))
}

// Count writes the count of non-empty cells in C to the target cell.
func Count(t *table.Table, r selector.Rect, targetRow, targetCol int) {
	c := Clamp(r, t)
	n := 0
	for i := c.R1; i <= c.R2; i++ {
		for j := c.C1; j <= c.C2; j++ {
			if len(t.Rows[i][j].Bytes()) != 0 {
				n++
			}
		}
	}
	t.Rows[targetRow][targetCol].Set([]byte(strconv.Itoa(n)))
}

// Len writes the byte length of the bottom-right cell of C to the
// target cell.
func Len(t *table.Table, r selector.Rect, targetRow, targetCol int) {
	c := Clamp(r, t)
	n := len(t.Rows[c.R2][c.C2].Bytes())
	t.Rows[targetRow][targetCol].Set([]byte(strconv.Itoa(n)))
}
