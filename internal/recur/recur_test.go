package recur

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	start := time.Date(2025, time.January, 30, 9, 0, 0, 0, time.UTC)

	got, err := Rule{Start: start, IntervalDays: 7, Count: 3}.Expand()
	require.NoError(t, err)

	want := []string{"06/02/2025 0900", "13/02/2025 0900", "20/02/2025 0900"}
	var formatted []string
	for _, d := range got {
		formatted = append(formatted, Format(d))
	}
	assert.Equal(t, want, formatted)
}

func TestExpand_ZeroCount(t *testing.T) {
	got, err := Rule{Start: time.Now(), IntervalDays: 1}.Expand()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExpand_InvalidRule(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
	}{
		{name: "zero interval", rule: Rule{IntervalDays: 0, Count: 1}},
		{name: "negative interval", rule: Rule{IntervalDays: -2, Count: 1}},
		{name: "negative count", rule: Rule{IntervalDays: 1, Count: -1}},
		{name: "count over limit", rule: Rule{IntervalDays: 1, Count: MaxCount + 1}},
		{name: "huge count", rule: Rule{IntervalDays: 1, Count: math.MaxInt}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.rule.Expand()
			assert.ErrorIs(t, err, ErrInvalidRule)
		})
	}
}

func TestExpand_MaxCount(t *testing.T) {
	got, err := Rule{Start: time.Now(), IntervalDays: 1, Count: MaxCount}.Expand()
	require.NoError(t, err)
	assert.Len(t, got, MaxCount)
}

func TestParseStart(t *testing.T) {
	got, err := ParseStart("25/12/2025 1830")
	require.NoError(t, err)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.December, got.Month())
	assert.Equal(t, 25, got.Day())
	assert.Equal(t, 18, got.Hour())
	assert.Equal(t, 30, got.Minute())

	_, err = ParseStart("2025-12-25")
	assert.Error(t, err)
}
