package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHistogram(t *testing.T) {
	// Act
	hist, err := BuildHistogram([]int{17, 6, 6, 7, 17, 17}, 2)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []int{6, 7, 17}, hist.Hours)
	assert.Equal(t, []int{2, 1, 3}, hist.Counts)
	assert.Equal(t, []float64{1, 0.5, 1.5}, hist.Averages)
}

func TestBuildHistogram_NormalizedSumMatchesCheckIns(t *testing.T) {
	tests := []struct {
		name      string
		hours     []int
		instances int
	}{
		{"single", []int{9}, 1},
		{"spread", []int{5, 6, 7, 8, 9, 10, 11, 23, 0}, 3},
		{"thirds", []int{8, 8, 8, 9, 9, 10, 10, 10, 10, 10}, 3},
		{"sevenths", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hist, err := BuildHistogram(tt.hours, tt.instances)
			require.NoError(t, err)

			sum := 0.0
			for _, avg := range hist.Averages {
				sum += avg
			}
			assert.InDelta(t, float64(len(tt.hours)), sum*float64(tt.instances), 1e-9)
		})
	}
}

func TestBuildHistogram_Empty(t *testing.T) {
	hist, err := BuildHistogram(nil, 0)

	require.NoError(t, err)
	assert.True(t, hist.Empty())
}

func TestBuildHistogram_ZeroInstances(t *testing.T) {
	_, err := BuildHistogram([]int{8}, 0)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInstanceCount))
}
