// Package command tokenizes a command source (a literal ";"-separated
// string, or a "-cPATH" command file) into individual command strings,
// then splits each one into a selector token or a (function, argument)
// pair.
package command

import (
	"bytes"
	"os"
	"strings"

	"github.com/vippsas/sqltab/internal/scan"
	"github.com/vippsas/sqltab/internal/sqltaberr"
)

// Command is one parsed element of the command list: either a selector
// (bracketed expression, Function holds the whole `[...]` text) or an
// action command (Function plus an optional Argument).
type Command struct {
	Raw         string
	IsSelector  bool
	Function    string
	Argument    string
	HasArgument bool
}

// filePrefix is the "-cPATH" marker recognized on the command-spec
// positional argument.
const filePrefix = "-c"

// Commands resolves a command-spec positional argument into the
// ordered list of parsed commands: either tokenizing it as a literal
// ";"-separated string, or reading it line-by-line from a file when it
// starts with "-c".
func Commands(commandSpec string) ([]Command, error) {
	path, isFile := stripFilePrefix(commandSpec)
	var raw []string
	if isFile {
		lines, err := readCommandFile(path)
		if err != nil {
			return nil, err
		}
		raw = lines
	} else {
		raw = tokenizeLiteral(commandSpec)
	}

	out := make([]Command, 0, len(raw))
	for _, r := range raw {
		out = append(out, parseOne(r))
	}
	return out, nil
}

// stripFilePrefix removes the "-c" prefix in place, as the original
// tokenizer does before opening the path; in Go there is no backing
// buffer to alias, so this is simply a slice re-slice.
func stripFilePrefix(commandSpec string) (path string, isFile bool) {
	if strings.HasPrefix(commandSpec, filePrefix) {
		return commandSpec[len(filePrefix):], true
	}
	return commandSpec, false
}

// tokenizeLiteral splits a literal command-spec string on ";" ignoring
// quote/escape state entirely (ignore_escapes=true per spec). An empty
// string yields zero commands.
func tokenizeLiteral(spec string) []string {
	if spec == "" {
		return nil
	}
	s := []byte(spec)
	n := scan.Count(s, ';', true)
	out := make([]string, 0, n+1)
	for i := 0; i <= n; i++ {
		seg, _, _ := scan.Split(s, ';', i, true, false)
		out = append(out, string(seg))
	}
	return out
}

// readCommandFile reads path and returns one command string per line,
// with trailing \r stripped and a single trailing blank line (produced
// by a final \n) dropped.
func readCommandFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, sqltaberr.Wrap(sqltaberr.ExitFileOpen, "command.readCommandFile", err)
	}
	if len(content) == 0 {
		return nil, nil
	}
	raw := bytes.Split(content, []byte("\n"))
	if len(raw) > 0 && len(raw[len(raw)-1]) == 0 {
		raw = raw[:len(raw)-1]
	}
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		l = bytes.TrimSuffix(l, []byte("\r"))
		out = append(out, string(l))
	}
	return out, nil
}

// parseOne splits a single command string into a selector token or a
// (function, argument) pair. A command whose trimmed form both begins
// with '[' and ends with ']' is a single selector token; otherwise the
// command splits once on the first unquoted, unescaped space.
func parseOne(raw string) Command {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		return Command{Raw: raw, IsSelector: true, Function: trimmed}
	}

	pos, ok := scan.Position([]byte(raw), ' ', 0, false)
	if !ok {
		return Command{Raw: raw, Function: raw}
	}
	return Command{
		Raw:         raw,
		Function:    raw[:pos],
		Argument:    raw[pos+1:],
		HasArgument: true,
	}
}
