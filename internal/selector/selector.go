// Package selector implements the selector grammar of spec.md §4.E: a
// tiny recursive-descent parser over bracketed expressions that updates
// a persistent current selection and a saved selection against a table.
//
// Functions here follow the convention used throughout this codebase's
// parsers: a function consumes the selector content it is documented to
// parse and reports a structured error on malformed input; it never
// leaves the evaluator's state partially updated on error.
package selector

import (
	"strconv"
	"strings"

	"github.com/vippsas/sqltab/internal/numfmt"
	"github.com/vippsas/sqltab/internal/sqltaberr"
	"github.com/vippsas/sqltab/internal/table"
)

// Rect is a 0-based, inclusive rectangle (r1,c1,r2,c2) with
// r1<=r2, c1<=c2. It is a pure value type.
type Rect struct {
	R1, C1, R2, C2 int
}

// Warner receives non-fatal selector diagnostics (find with no match,
// min/max with no numeric cells). It is satisfied by *logrus.Logger /
// *logrus.Entry in the CLI, and by a no-op in tests that don't care.
type Warner interface {
	Warnf(format string, args ...interface{})
}

// State holds the current selection (C) and the saved selection (S),
// both initialized to (0,0,0,0).
type State struct {
	Current Rect
	Saved   Rect
}

// NewState returns a state with both rectangles at their initial value.
func NewState() *State {
	return &State{}
}

const op = "selector.Evaluate"

// Evaluate dispatches a single selector command (the full "[...]"
// text, brackets included) against t, updating st in place. Selector
// warnings are reported to warn and are not errors.
func Evaluate(st *State, t *table.Table, raw string, warn Warner) error {
	inner := strings.TrimSpace(raw)
	inner = strings.TrimPrefix(inner, "[")
	inner = strings.TrimSuffix(inner, "]")
	inner = strings.TrimSpace(inner)

	switch {
	case inner == "_":
		st.Current = st.Saved
		return nil
	case inner == "set":
		st.Saved = st.Current
		return nil
	case inner == "min":
		return evalMinMax(st, t, true, warn)
	case inner == "max":
		return evalMinMax(st, t, false, warn)
	case strings.HasPrefix(inner, "find "):
		return evalFind(st, t, inner[len("find "):], warn)
	default:
		return evalCoordinates(st, t, inner)
	}
}

// tokenKind classifies one comma-separated coordinate token.
type tokenKind int

const (
	kindNumber tokenKind = iota
	kindUnderscore
	kindDash
)

type token struct {
	kind  tokenKind
	value int // 1-based, only meaningful when kind == kindNumber
}

func classify(raw string) (token, error) {
	raw = strings.TrimSpace(raw)
	switch raw {
	case "_":
		return token{kind: kindUnderscore}, nil
	case "-":
		return token{kind: kindDash}, nil
	default:
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return token{}, sqltaberr.New(sqltaberr.ExitMalformedSelector, op, "expected a positive integer, '_' or '-'")
		}
		return token{kind: kindNumber, value: n}, nil
	}
}

func evalCoordinates(st *State, t *table.Table, inner string) error {
	parts := strings.Split(inner, ",")
	rows, cols := t.RowCount(), t.ColCount()
	if rows < 1 || cols < 1 {
		return sqltaberr.New(sqltaberr.ExitMalformedSelector, op, "cannot select coordinates on an empty table")
	}

	switch len(parts) {
	case 2:
		return evalPair(st, parts[0], parts[1], rows, cols)
	case 4:
		return evalRect(st, parts, rows, cols)
	default:
		return sqltaberr.New(sqltaberr.ExitMalformedSelector, op, "expected R,C or R1,C1,R2,C2")
	}
}

func evalPair(st *State, rawRow, rawCol string, rows, cols int) error {
	rowTok, err := classify(rawRow)
	if err != nil {
		return err
	}
	colTok, err := classify(rawCol)
	if err != nil {
		return err
	}

	resolveRow := func(tok token) (lo, hi int, err error) {
		switch tok.kind {
		case kindNumber:
			if tok.value < 1 || tok.value > rows {
				return 0, 0, sqltaberr.New(sqltaberr.ExitMalformedSelector, op, "row index out of range")
			}
			return tok.value - 1, tok.value - 1, nil
		case kindDash:
			return rows - 1, rows - 1, nil
		case kindUnderscore:
			return 0, rows - 1, nil
		}
		panic("unreachable")
	}
	resolveCol := func(tok token) (lo, hi int, err error) {
		switch tok.kind {
		case kindNumber:
			if tok.value < 1 || tok.value > cols {
				return 0, 0, sqltaberr.New(sqltaberr.ExitMalformedSelector, op, "column index out of range")
			}
			return tok.value - 1, tok.value - 1, nil
		case kindDash:
			return cols - 1, cols - 1, nil
		case kindUnderscore:
			return 0, cols - 1, nil
		}
		panic("unreachable")
	}

	r1, r2, err := resolveRow(rowTok)
	if err != nil {
		return err
	}
	c1, c2, err := resolveCol(colTok)
	if err != nil {
		return err
	}
	st.Current = Rect{R1: r1, C1: c1, R2: r2, C2: c2}
	return nil
}

func evalRect(st *State, parts []string, rows, cols int) error {
	rawR1, rawC1, rawR2, rawC2 := parts[0], parts[1], parts[2], parts[3]

	resolve := func(raw string, dim int) (int, error) {
		raw = strings.TrimSpace(raw)
		if raw == "_" {
			return 0, sqltaberr.New(sqltaberr.ExitMalformedSelector, op, "'_' is not valid in a four-part rectangle")
		}
		if raw == "-" {
			return dim - 1, nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > dim {
			return 0, sqltaberr.New(sqltaberr.ExitMalformedSelector, op, "coordinate out of range")
		}
		return n - 1, nil
	}

	r1, err := resolve(rawR1, rows)
	if err != nil {
		return err
	}
	c1, err := resolve(rawC1, cols)
	if err != nil {
		return err
	}
	r2, err := resolve(rawR2, rows)
	if err != nil {
		return err
	}
	c2, err := resolve(rawC2, cols)
	if err != nil {
		return err
	}
	if r1 > r2 || c1 > c2 {
		return sqltaberr.New(sqltaberr.ExitMalformedSelector, op, "rectangle requires R1<=R2 and C1<=C2")
	}
	st.Current = Rect{R1: r1, C1: c1, R2: r2, C2: c2}
	return nil
}

// evalFind scans C in row-major order for the first cell whose content
// starts with the literal needle. If found, C shrinks to that single
// cell; otherwise C is unchanged and a warning is emitted.
func evalFind(st *State, t *table.Table, needle string, warn Warner) error {
	r := clamp(st.Current, t)
	for i := r.R1; i <= r.R2; i++ {
		row := t.Rows[i]
		for j := r.C1; j <= r.C2; j++ {
			if strings.HasPrefix(row[j].String(), needle) {
				st.Current = Rect{R1: i, C1: j, R2: i, C2: j}
				return nil
			}
		}
	}
	if warn != nil {
		warn.Warnf("find %q: no matching cell in current selection", needle)
	}
	return nil
}

// evalMinMax collapses C to the single cell with the minimal (or
// maximal) numeric value among cells that parse as numbers, ties going
// to the first cell in row-major order.
func evalMinMax(st *State, t *table.Table, wantMin bool, warn Warner) error {
	r := clamp(st.Current, t)
	found := false
	var bestVal float64
	var bestR, bestC int

	for i := r.R1; i <= r.R2; i++ {
		row := t.Rows[i]
		for j := r.C1; j <= r.C2; j++ {
			trimmed := numfmt.TrimOneQuotePair(row[j].String())
			v, ok := numfmt.Parse(trimmed)
			if !ok {
				continue
			}
			if !found || (wantMin && v < bestVal) || (!wantMin && v > bestVal) {
				found = true
				bestVal = v
				bestR, bestC = i, j
			}
		}
	}

	if !found {
		name := "max"
		if wantMin {
			name = "min"
		}
		if warn != nil {
			warn.Warnf("%s: no numeric cell in current selection", name)
		}
		return nil
	}
	st.Current = Rect{R1: bestR, C1: bestC, R2: bestR, C2: bestC}
	return nil
}

// clamp bounds r to the table's current dimensions: row/column
// operations never touch the selection rectangle itself, so by the
// time a later command reads it the table may have shrunk.
func clamp(r Rect, t *table.Table) Rect {
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
