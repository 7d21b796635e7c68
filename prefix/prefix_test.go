package prefix

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"units"
)

var _ units.Prefixes = SI

func TestExponent(t *testing.T) {
	tests := []struct {
		symbol   string
		expected int
	}{
		{"", 0},
		{"k", 3},
		{"M", 6},
		{"m", -3},
		{"da", 1},
		{"d", -1},
		{"μ", -6}, // Greek small letter mu
		{"µ", -6}, // micro sign
		{"Y", 24},
		{"y", -24},
		{"x", 0},
		{"K", 0},
	}

	for _, test := range tests {
		t.Run(test.symbol, func(t *testing.T) {
			assert.Equal(t, test.expected, Exponent(test.symbol))
		})
	}
}

func TestValid(t *testing.T) {
	for _, symbol := range []string{"", "k", "da", "μ", "µ", "c"} {
		assert.True(t, Valid(symbol), "symbol %q", symbol)
	}
	for _, symbol := range []string{"x", "K", "kk", "u"} {
		assert.False(t, Valid(symbol), "symbol %q", symbol)
	}
}

func TestMagnitudeFactor(t *testing.T) {
	assert.Equal(t, 3, MagnitudeFactor("k", ""))
	assert.Equal(t, -3, MagnitudeFactor("", "k"))
	assert.Equal(t, 1, MagnitudeFactor("c", "m"))
	assert.Equal(t, 0, MagnitudeFactor("k", "k"))
}

func TestSymbols(t *testing.T) {
	symbols := SI.Symbols()
	assert.Len(t, symbols, 20)
	assert.Equal(t, "Y", symbols[0])
	assert.Equal(t, "y", symbols[len(symbols)-1])
	for i := 1; i < len(symbols); i++ {
		assert.Greater(t, SI[symbols[i-1]], SI[symbols[i]])
	}
}

func TestPrefixExp10(t *testing.T) {
	got, err := units.PrefixExp10(SI, "k", "", units.Int(2))
	assert.NoError(t, err)
	assert.Equal(t, 6, got)

	got, err = units.PrefixExp10(SI, "c", "", units.Int(3))
	assert.NoError(t, err)
	assert.Equal(t, -6, got)

	_, err = units.PrefixExp10(SI, "k", "", units.MustFrac(1, 2))
	assert.True(t, units.IsInvalidArgument(err))

	got, err = units.PrefixExp10(SI, "M", "", units.MustFrac(1, 2))
	assert.NoError(t, err)
	assert.Equal(t, 3, got)

	_, err = units.PrefixExp10(SI, "q", "", units.Int(1))
	assert.True(t, units.IsInvalidArgument(err))
}
