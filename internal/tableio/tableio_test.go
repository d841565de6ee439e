package tableio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "table.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRoundTripWithNoCommands(t *testing.T) {
	path := writeTemp(t, "a,b,c\nd,e,f\n")

	tb, err := Load(path, []byte(","))
	require.NoError(t, err)

	require.NoError(t, Save(path, tb))

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b,c\nd,e,f\n", string(out))
}

func TestLoadStripsCRLF(t *testing.T) {
	path := writeTemp(t, "a,b\r\nc,d\r\n")

	tb, err := Load(path, []byte(","))
	require.NoError(t, err)

	require.NoError(t, Save(path, tb))
	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\nc,d\n", string(out))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/no/such/file", []byte(","))
	assert.Error(t, err)
}

func TestLoadNormalizesAlternateDelimiters(t *testing.T) {
	path := writeTemp(t, "a;b,c\nd;e,f\n")

	tb, err := Load(path, []byte(",;"))
	require.NoError(t, err)
	assert.Equal(t, 3, tb.ColCount())
	assert.Equal(t, "a", tb.Rows[0][0].String())
}
