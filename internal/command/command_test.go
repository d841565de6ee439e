package command

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsEmptyLiteralYieldsZero(t *testing.T) {
	cmds, err := Commands("")
	require.NoError(t, err)
	assert.Empty(t, cmds)
}

func TestCommandsSplitsOnSemicolon(t *testing.T) {
	cmds, err := Commands("[2,2];set X")
	require.NoError(t, err)
	require.Len(t, cmds, 2)
	assert.True(t, cmds[0].IsSelector)
	assert.Equal(t, "[2,2]", cmds[0].Function)
	assert.Equal(t, "set", cmds[1].Function)
	assert.Equal(t, "X", cmds[1].Argument)
}

func TestCommandsSemicolonSplitIgnoresQuoting(t *testing.T) {
	// ignore_escapes=true for command splitting: a ';' inside quotes is
	// still a separator, unlike the function/argument space split below.
	cmds, err := Commands(`set "a;b"`)
	require.NoError(t, err)
	require.Len(t, cmds, 2)
	assert.Equal(t, `set "a`, cmds[0].Raw)
	assert.Equal(t, `b"`, cmds[1].Raw)
}

func TestCommandsSelectorBracketException(t *testing.T) {
	cmds, err := Commands("[1,1,2,3]")
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.True(t, cmds[0].IsSelector)
	assert.Equal(t, "[1,1,2,3]", cmds[0].Function)
	assert.False(t, cmds[0].HasArgument)
}

func TestCommandsFunctionArgumentSplit(t *testing.T) {
	cmds, err := Commands("sum [1,1]")
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.Equal(t, "sum", cmds[0].Function)
	assert.Equal(t, "[1,1]", cmds[0].Argument)
	assert.True(t, cmds[0].HasArgument)
}

func TestCommandsNoArgument(t *testing.T) {
	cmds, err := Commands("clear")
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.Equal(t, "clear", cmds[0].Function)
	assert.False(t, cmds[0].HasArgument)
}

func TestCommandsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cmds.txt")
	require.NoError(t, os.WriteFile(path, []byte("[1,1]\nset A\nclear\n"), 0o644))

	cmds, err := Commands("-c" + path)
	require.NoError(t, err)
	require.Len(t, cmds, 3)
	assert.True(t, cmds[0].IsSelector)
	assert.Equal(t, "set", cmds[1].Function)
	assert.Equal(t, "A", cmds[1].Argument)
	assert.Equal(t, "clear", cmds[2].Function)
}

func TestCommandsFromFileMissing(t *testing.T) {
	_, err := Commands("-c/no/such/path")
	assert.Error(t, err)
}
