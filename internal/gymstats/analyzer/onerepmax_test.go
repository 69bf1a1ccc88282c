package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/warmachine/internal/gymstats"
	"github.com/2beens/warmachine/internal/gymstats/analyzer"
)

func TestEstimateOneRepMax(t *testing.T) {
	testCases := []struct {
		weight   float64
		reps     int
		expected float64
	}{
		{weight: 100, reps: 0, expected: 0},
		{weight: 100, reps: -3, expected: 0},
		{weight: 100, reps: 1, expected: 100},
		{weight: 82.5, reps: 1, expected: 82.5},
		{weight: 100, reps: 5, expected: 117},
		{weight: 80, reps: 10, expected: 107},
		{weight: 60, reps: 30, expected: 120},
		{weight: 0, reps: 10, expected: 0},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, analyzer.EstimateOneRepMax(tc.weight, tc.reps), "%v x %d", tc.weight, tc.reps)
	}
}

func TestComputeOneRepMaxTable(t *testing.T) {
	table, err := analyzer.ComputeOneRepMaxTable(100, 5)
	require.NoError(t, err)
	assert.Equal(t, 117.0, table.OneRepMax)
	require.Len(t, table.Rows, 9)

	assert.Equal(t, analyzer.LoadRow{Percent: 100, Weight: 117, Reps: 1}, table.Rows[0])
	assert.Equal(t, analyzer.LoadRow{Percent: 95, Weight: 111, Reps: 2}, table.Rows[1])
	assert.Equal(t, analyzer.LoadRow{Percent: 60, Weight: 70, Reps: 20}, table.Rows[8])

	for i := 1; i < len(table.Rows); i++ {
		assert.Less(t, table.Rows[i].Percent, table.Rows[i-1].Percent)
		assert.Greater(t, table.Rows[i].Reps, table.Rows[i-1].Reps)
	}
}

func TestComputeOneRepMaxTable_Invalid(t *testing.T) {
	_, err := analyzer.ComputeOneRepMaxTable(0, 5)
	assert.True(t, gymstats.IsValidationError(err))

	_, err = analyzer.ComputeOneRepMaxTable(100, 0)
	assert.True(t, gymstats.IsValidationError(err))
}
