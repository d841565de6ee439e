// Package lineparser turns raw input lines into table rows: it
// normalizes multi-delimiter lines down to the canonical delimiter and
// splits each line into cells using the quoting-aware scanner.
package lineparser

import (
	"bytes"

	"github.com/vippsas/sqltab/internal/scan"
)

// StripLineEnding removes a trailing \n and, if present, a preceding
// \r. Output lines only ever carry \n; \r is an input-only convention.
func StripLineEnding(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	return line
}

// NormalizeDelimiters replaces every non-quoted, non-escaped occurrence
// of a secondary delimiter (delims[1:]) with the primary delimiter
// (delims[0]). If delims has only one byte, line is returned unchanged.
func NormalizeDelimiters(line []byte, delims []byte) []byte {
	if len(delims) <= 1 {
		return line
	}
	primary := delims[0]
	alt := delims[1:]
	out := make([]byte, len(line))
	copy(out, line)

	scan.Walk(out, func(b byte, idx int, quoted, escaped bool) bool {
		if !quoted && !escaped {
			for _, d := range alt {
				if b == d {
					out[idx] = primary
					break
				}
			}
		}
		return true
	})
	return out
}

// SplitCells splits a normalized line into N = count+1 cells on the
// primary delimiter byte, preserving quotes and escapes verbatim in
// each cell's content.
func SplitCells(line []byte, primary byte) [][]byte {
	n := scan.Count(line, primary, false)
	cells := make([][]byte, 0, n+1)
	for i := 0; i <= n; i++ {
		seg, _, _ := scan.Split(line, primary, i, false, false)
		cells = append(cells, seg)
	}
	return cells
}

// ParseLine strips the line ending, normalizes delimiters, and splits
// the result into cell contents.
func ParseLine(line []byte, delims []byte) [][]byte {
	line = StripLineEnding(line)
	line = NormalizeDelimiters(line, delims)
	return SplitCells(line, delims[0])
}
