// Package interp is the command-interpreter loop: for each parsed
// command it either updates the selector state (E) or dispatches to the
// mutation engine (F), the data operators (G), or the temp-variable
// store (H) under the current selection. It checks the rectangular
// invariant before and after every command, per spec.md §7.
package interp

import (
	"github.com/vippsas/sqltab/internal/command"
	"github.com/vippsas/sqltab/internal/dataop"
	"github.com/vippsas/sqltab/internal/mutate"
	"github.com/vippsas/sqltab/internal/selector"
	"github.com/vippsas/sqltab/internal/sqltaberr"
	"github.com/vippsas/sqltab/internal/table"
	"github.com/vippsas/sqltab/internal/tabledump"
	"github.com/vippsas/sqltab/internal/tempvar"
)

const op = "interp.Run"

// Tracer receives a per-command trace line when verbose tracing is
// enabled. It is satisfied by *logrus.Entry / *logrus.Logger.
type Tracer interface {
	Debugf(format string, args ...interface{})
}

// Interp holds all state that is exclusively owned by the interpreter
// loop: the table being mutated, the selector state, and the
// temp-variable store.
type Interp struct {
	Table *table.Table
	Sel   *selector.State
	Vars  *tempvar.Store
	Warn  selector.Warner
	Trace Tracer
}

// New builds an interpreter over t with fresh selector state and an
// empty temp-variable store.
func New(t *table.Table, warn selector.Warner, trace Tracer) *Interp {
	return &Interp{
		Table: t,
		Sel:   selector.NewState(),
		Vars:  tempvar.NewStore(),
		Warn:  warn,
		Trace: trace,
	}
}

// Run executes cmds in order. Any error stops the whole pipeline; the
// caller must not save the table after an error.
func (ip *Interp) Run(cmds []command.Command) error {
	for _, c := range cmds {
		if err := ip.Table.CheckRectangular(); err != nil {
			return err
		}
		if err := ip.execOne(c); err != nil {
			return err
		}
		if err := ip.Table.CheckRectangular(); err != nil {
			return err
		}
	}
	return nil
}

func (ip *Interp) execOne(c command.Command) error {
	tabledump.DPrint("exec function=%q argument=%q current=%s", c.Function, c.Argument, tabledump.Rect(ip.Sel.Current))
	if ip.Trace != nil {
		ip.Trace.Debugf("exec function=%q argument=%q selector=%v current=%s",
			c.Function, c.Argument, c.IsSelector, tabledump.Rect(ip.Sel.Current))
	}

	if c.IsSelector {
		return selector.Evaluate(ip.Sel, ip.Table, c.Function, ip.Warn)
	}

	cur := ip.Sel.Current
	switch c.Function {
	case "irow":
		mutate.IRow(ip.Table, cur)
		return nil
	case "arow":
		mutate.ARow(ip.Table, cur)
		return nil
	case "drow":
		mutate.DRow(ip.Table, cur)
		return nil
	case "icol":
		mutate.ICol(ip.Table, cur)
		return nil
	case "acol":
		mutate.ACol(ip.Table, cur)
		return nil
	case "dcol":
		mutate.DCol(ip.Table, cur)
		return nil
	case "set":
		dataop.Set(ip.Table, cur, c.Argument)
		return nil
	case "clear":
		dataop.Clear(ip.Table, cur)
		return nil
	case "swap":
		return ip.withTarget(c, cur, dataop.Swap)
	case "sum":
		return ip.withTarget(c, cur, dataop.Sum)
	case "avg":
		return ip.withTarget(c, cur, dataop.Avg)
	case "count":
		return ip.withTarget(c, cur, dataop.Count)
	case "len":
		return ip.withTarget(c, cur, dataop.Len)
	case "def":
		return ip.def(c)
	case "use":
		return ip.use(c)
	case "inc":
		return ip.inc(c)
	default:
		return sqltaberr.New(sqltaberr.ExitMalformedCommand, op, "unknown command: "+c.Function)
	}
}

// withTarget parses a "[R,C]" argument and invokes fn(t, selection, row, col).
func (ip *Interp) withTarget(c command.Command, cur selector.Rect, fn func(*table.Table, selector.Rect, int, int)) error {
	row, col, err := dataop.ParseTarget(c.Argument, ip.Table.RowCount(), ip.Table.ColCount())
	if err != nil {
		return err
	}
	fn(ip.Table, cur, row, col)
	return nil
}

func (ip *Interp) def(c command.Command) error {
	idx, err := tempvar.ParseSlotIndex(c.Argument)
	if err != nil {
		return err
	}
	cur := ip.Sel.Current
	if cur.R1 != cur.R2 || cur.C1 != cur.C2 {
		return sqltaberr.New(sqltaberr.ExitBadValue, op, "def requires a single-cell selection")
	}
	// the selection is never re-validated after a prior mutation, so it
	// may point past the table's current bounds; clamp before indexing.
	clamped := dataop.Clamp(cur, ip.Table)
	ip.Vars.Def(idx, ip.Table.Rows[clamped.R1][clamped.C1].Bytes())
	return nil
}

func (ip *Interp) use(c command.Command) error {
	idx, err := tempvar.ParseSlotIndex(c.Argument)
	if err != nil {
		return err
	}
	value, ok := ip.Vars.Use(idx)
	if !ok {
		return nil
	}
	dataop.Set(ip.Table, ip.Sel.Current, string(value))
	return nil
}

func (ip *Interp) inc(c command.Command) error {
	idx, err := tempvar.ParseSlotIndex(c.Argument)
	if err != nil {
		return err
	}
	ip.Vars.Inc(idx)
	return nil
}
