package interp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/sqltab/internal/command"
	"github.com/vippsas/sqltab/internal/tabledump"
	"github.com/vippsas/sqltab/internal/tableio"
)

// assertRoundTrip runs a scenario and reports the resulting grid on
// failure, to make a mismatch easy to read during debugging.
func assertRoundTrip(t *testing.T, input, commands, delimiter, want string) {
	t.Helper()
	out := run(t, input, commands, delimiter)
	if out != want {
		dir := t.TempDir()
		path := filepath.Join(dir, "t.csv")
		require.NoError(t, os.WriteFile(path, []byte(out), 0o644))
		tb, err := tableio.Load(path, []byte(delimiter))
		require.NoError(t, err)
		t.Logf("got grid:\n%s", tabledump.Grid(tb))
	}
	assert.Equal(t, want, out)
}

// run loads input, executes the ";"-separated commands and returns the
// resulting table rendered with the given delimiter. It mirrors the
// command-line pipeline end to end without going through cmd/sqltab.
func run(t *testing.T, input, commands, delimiter string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "t.csv")
	require.NoError(t, os.WriteFile(path, []byte(input), 0o644))

	delims := []byte(delimiter)
	tb, err := tableio.Load(path, delims)
	require.NoError(t, err)

	cmds, err := command.Commands(commands)
	require.NoError(t, err)

	ip := New(tb, nil, nil)
	require.NoError(t, ip.Run(cmds))

	require.NoError(t, tableio.Save(path, tb))
	out, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(out)
}

func TestS1MinimalRoundTrip(t *testing.T) {
	out := run(t, "a,b,c\nd,e,f\n", "", ",")
	assert.Equal(t, "a,b,c\nd,e,f\n", out)
}

func TestS2SelectorAndSet(t *testing.T) {
	assertRoundTrip(t, "1,2,3\n4,5,6\n", "[2,2];set X", ",", "1,2,3\n4,X,6\n")
}

func TestS3InsertColumn(t *testing.T) {
	out := run(t, "a,b\nc,d\n", "[1,1];icol", ",")
	assert.Equal(t, ",a,b\n,c,d\n", out)
}

func TestS4NumericSum(t *testing.T) {
	out := run(t, "1,2,3\n4,5,6\n", "[1,1,2,3];sum [1,1]", ",")
	assert.Equal(t, "21,2,3\n4,5,6\n", out)
}

func TestS5FindAndClear(t *testing.T) {
	out := run(t, "foo,bar\nbaz,qux\n", "[_,_];[find ba];clear", ",")
	assert.Equal(t, "foo,\nbaz,qux\n", out)
}

func TestS6TempVar(t *testing.T) {
	out := run(t, "7,8\n9,0\n", "[1,1];def _0;[2,2];use _0", ",")
	assert.Equal(t, "7,8\n9,7\n", out)
}

func TestDefRequiresSingleCellSelection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,2\n3,4\n"), 0o644))

	tb, err := tableio.Load(path, []byte(","))
	require.NoError(t, err)
	cmds, err := command.Commands("[_,_];def _0")
	require.NoError(t, err)

	ip := New(tb, nil, nil)
	assert.Error(t, ip.Run(cmds))
}

func TestDefClampsStaleSelectionPastShrunkenTable(t *testing.T) {
	// select row 2, save it, shrink the table back to 1 row via a
	// different selection + drow, then restore the stale saved
	// selection and def against it: it must clamp, not panic.
	out := run(t, "1\n2\n", "[2,1];[set];[1,1];drow;[_];def _0;[1,1];use _0", ",")
	assert.Equal(t, "2\n", out)
}

func TestUseOnEmptySlotIsNoop(t *testing.T) {
	out := run(t, "1,2\n", "[1,1];use _5", ",")
	assert.Equal(t, "1,2\n", out)
}

func TestIncThenUseWritesIncrementedValue(t *testing.T) {
	// slot 0 gets "1" from cell (1,1), inc makes it "2", then use writes
	// "2" into cell (1,2).
	out := run(t, "1,9\n", "[1,1];def _0;inc _0;[1,2];use _0", ",")
	assert.Equal(t, "1,2\n", out)
}

func TestCommandFailureLeavesFileUnwritten(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.csv")
	original := "1,2\n3,4\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))

	tb, err := tableio.Load(path, []byte(","))
	require.NoError(t, err)
	cmds, err := command.Commands("bogus")
	require.NoError(t, err)

	ip := New(tb, nil, nil)
	err = ip.Run(cmds)
	require.Error(t, err)

	// the pipeline's contract is: on a failing command, the caller must
	// not call Save. Verify the file on disk is still the original.
	out, rerr := os.ReadFile(path)
	require.NoError(t, rerr)
	assert.Equal(t, original, string(out))
}
