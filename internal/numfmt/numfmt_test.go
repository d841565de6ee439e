package numfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequiresEntireStringConsumed(t *testing.T) {
	_, ok := Parse("123abc")
	assert.False(t, ok)

	v, ok := Parse("123")
	require.True(t, ok)
	assert.Equal(t, 123.0, v)
}

func TestParseAcceptsFloatForms(t *testing.T) {
	v, ok := Parse("-1.5e2")
	require.True(t, ok)
	assert.Equal(t, -150.0, v)
}

func TestFormatIntegerHasNoDecimalPoint(t *testing.T) {
	assert.Equal(t, "21", Format(21))
	assert.Equal(t, "-3", Format(-3))
	assert.Equal(t, "0", Format(0))
}

func TestFormatNonIntegerUsesShortestGeneral(t *testing.T) {
	assert.Equal(t, "1.5", Format(1.5))
}

func TestTrimOneQuotePairStripsSingleLayer(t *testing.T) {
	assert.Equal(t, "2", TrimOneQuotePair(`"2"`))
	assert.Equal(t, "2", TrimOneQuotePair(`'2'`))
	assert.Equal(t, `"2`, TrimOneQuotePair(`"2`))
	assert.Equal(t, "2", TrimOneQuotePair("2"))
}
