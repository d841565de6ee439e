// Package tableio implements the load/save collaborators described in
// spec.md §6: the input file is opened, fully read, and closed before
// any command executes; the output file is opened after the last
// command, written, and closed. No file handle outlives a single load
// or save call.
package tableio

import (
	"bytes"
	"os"

	"github.com/vippsas/sqltab/internal/lineparser"
	"github.com/vippsas/sqltab/internal/sqltaberr"
	"github.com/vippsas/sqltab/internal/table"
)

// Load reads path, splits it into lines, parses each line into cells
// using delims (delims[0] is canonical), and normalizes the resulting
// table's shape. The returned table's Delimiter is delims[0].
func Load(path string, delims []byte) (*table.Table, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, sqltaberr.Wrap(sqltaberr.ExitFileOpen, "tableio.Load", err)
	}

	t := table.New(delims[0])

	lines := splitLines(content)
	for _, line := range lines {
		cells := lineparser.ParseLine(line, delims)
		t.AppendRow(cells...)
	}

	t.NormalizeShape()
	return t, nil
}

// splitLines splits content on \n. A trailing empty line produced by a
// final newline is dropped, matching the usual "one row per \n
// terminated line" convention; a file with no trailing newline still
// has its last line parsed.
func splitLines(content []byte) [][]byte {
	if len(content) == 0 {
		return nil
	}
	raw := bytes.Split(content, []byte("\n"))
	if len(raw) > 0 && len(raw[len(raw)-1]) == 0 {
		raw = raw[:len(raw)-1]
	}
	return raw
}

// Save writes t to path, one row per line terminated by \n, fields
// joined by t.Delimiter. Cell content is written verbatim: sqltab never
// re-quotes or re-escapes on output.
func Save(path string, t *table.Table) error {
	var buf bytes.Buffer
	for _, row := range t.Rows {
		for i := range row {
			if i > 0 {
				buf.WriteByte(t.Delimiter)
			}
			buf.Write(row[i].Bytes())
		}
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return sqltaberr.Wrap(sqltaberr.ExitFileOpen, "tableio.Save", err)
	}
	return nil
}
