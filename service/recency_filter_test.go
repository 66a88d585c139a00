package services

import (
	"testing"
	"time"

	"checkin-forecast/models/checkin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterByWindow_Unbounded(t *testing.T) {
	ts := []checkin.Timestamp{day(20, 9), day(1, 6), day(17, 7)}
	now := time.Date(2023, 4, 30, 12, 0, 0, 0, time.UTC)

	out := FilterByWindow(ts, now, checkin.Unbounded())

	assert.Equal(t, ts, out)
}

func TestFilterByWindow_Trailing(t *testing.T) {
	// Arrange
	now := time.Date(2023, 4, 30, 12, 0, 0, 0, time.UTC)
	window, err := checkin.NewTrailingWindow(7)
	require.NoError(t, err)

	ts := []checkin.Timestamp{
		{Year: 2023, Month: 4, Day: 23, Hour: 11, Minute: 59, Second: 59}, // just outside
		{Year: 2023, Month: 4, Day: 23, Hour: 12},                         // boundary, kept
		day(25, 8),
		day(1, 8),
		day(29, 20),
	}
	before := append([]checkin.Timestamp(nil), ts...)

	// Act
	out := FilterByWindow(ts, now, window)

	// Assert
	assert.Equal(t, []checkin.Timestamp{ts[1], ts[2], ts[4]}, out)
	assert.Equal(t, before, ts, "input must not be mutated")
}

func TestFilterByWindow_UsesNowLocation(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	now := time.Date(2023, 4, 30, 0, 0, 0, 0, est)
	window, err := checkin.NewTrailingWindow(1)
	require.NoError(t, err)

	out := FilterByWindow([]checkin.Timestamp{{Year: 2023, Month: 4, Day: 29, Hour: 1}}, now, window)

	assert.Len(t, out, 1)
}

func TestFilterByWindow_Empty(t *testing.T) {
	window, err := checkin.NewTrailingWindow(3)
	require.NoError(t, err)

	out := FilterByWindow(nil, time.Now(), window)

	assert.NotNil(t, out)
	assert.Empty(t, out)
}
