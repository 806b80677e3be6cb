package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseThresholds(t *testing.T) {
	t.Run("warn and crit", func(t *testing.T) {
		parsed, err := ParseThresholds("1:2")
		require.NoError(t, err)
		assert.Equal(t, Thresholds{Warning: 1, Critical: 2}, parsed)
		assert.Empty(t, parsed.Units)
	})

	t.Run("with units", func(t *testing.T) {
		parsed, err := ParseThresholds("1:2:x")
		require.NoError(t, err)
		assert.Equal(t, Thresholds{Warning: 1, Critical: 2, Units: "x"}, parsed)
	})

	t.Run("numeric-looking units stay verbatim", func(t *testing.T) {
		parsed, err := ParseThresholds("1:2:3")
		require.NoError(t, err)
		assert.Equal(t, "3", parsed.Units)
	})

	t.Run("negative thresholds", func(t *testing.T) {
		parsed, err := ParseThresholds("-2:-5")
		require.NoError(t, err)
		assert.Equal(t, Thresholds{Warning: -2, Critical: -5}, parsed)
	})
}

func TestParseThresholdsErrors(t *testing.T) {
	blanks := []string{"0::0", "::", ":0:0", "0:0:", ""}
	for _, spec := range blanks {
		_, err := ParseThresholds(spec)
		assert.ErrorIs(t, err, ErrBlankThreshold, "spec %q", spec)
	}

	t.Run("too few", func(t *testing.T) {
		_, err := ParseThresholds("0")
		assert.ErrorIs(t, err, ErrTooFewThresholds)
	})

	t.Run("too many", func(t *testing.T) {
		_, err := ParseThresholds("0:0:0:0")
		assert.ErrorIs(t, err, ErrTooManyThresholds)
	})

	t.Run("non-numeric warning", func(t *testing.T) {
		_, err := ParseThresholds("x:2")
		assert.ErrorIs(t, err, ErrNotNumeric)
	})

	t.Run("non-numeric critical", func(t *testing.T) {
		_, err := ParseThresholds("1:x")
		assert.ErrorIs(t, err, ErrNotNumeric)
	})
}
