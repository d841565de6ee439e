// Package tabledump provides debug-only representations of a table and
// a selection rectangle. It has no bearing on the on-disk output format
// (spec.md explicitly scopes the exact output byte layout out of the
// core) — this is purely a tracing/test aid.
package tabledump

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/vippsas/sqltab/internal/selector"
	"github.com/vippsas/sqltab/internal/table"
)

var _, enableDebug = os.LookupEnv("SQLTAB_DEBUG")

// DPrint writes a debug line to stderr, but only when SQLTAB_DEBUG is
// set in the environment.
func DPrint(format string, a ...any) {
	if !enableDebug {
		return
	}
	fmt.Fprintf(os.Stderr, "\033[0;31mDEBUG:\033[0m "+format+"\n", a...)
}

// Grid renders t as a plain-text grid (one line per row, cells
// separated by " | "), for test failure messages.
func Grid(t *table.Table) string {
	var b strings.Builder
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i := range row {
			cells[i] = row[i].String()
		}
		b.WriteString(strings.Join(cells, " | "))
		b.WriteByte('\n')
	}
	return b.String()
}

// Rect renders a selection rectangle using repr, the same structural
// dumper the rest of the corpus reaches for when it needs to show a
// small struct's exact field values during debugging.
func Rect(r selector.Rect) string {
	return repr.String(r)
}
