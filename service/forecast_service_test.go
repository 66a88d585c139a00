package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"checkin-forecast/models/checkin"
	"checkin-forecast/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2023, 4, 30, 12, 0, 0, 0, time.UTC)

func newTestForecastService(t *testing.T, source CheckInSource, windowDays int, desired ...checkin.Weekday) *ForecastService {
	t.Helper()
	window := checkin.Unbounded()
	if windowDays > 0 {
		var err error
		window, err = checkin.NewTrailingWindow(windowDays)
		require.NoError(t, err)
	}
	return NewForecastService(source, ForecastOptions{
		Facility:        "Marino",
		Window:          window,
		DesiredWeekdays: desired,
		Chart:           util.DefaultChartOptions(),
		Now:             func() time.Time { return fixedNow },
	})
}

func sampleSource() *stubSource {
	return &stubSource{records: rawRecords(
		"3/7/2023 7:00:00 AM", // Tuesday, outside a 50 day window
		"4/17/2023 6:01:12 AM",
		"4/17/2023 6:45:00 AM",
		"4/17/2023 5:30:00 PM",
		"4/18/2023 12:15:00 PM",
		"4/24/2023 6:10:00 AM",
		"4/24/2023 12:05:00 AM",
	)}
}

func TestForecastService_BuildWeeklyForecast(t *testing.T) {
	// Arrange
	fs := newTestForecastService(t, sampleSource(), 50, checkin.Monday)

	// Act
	forecast, err := fs.BuildWeeklyForecast(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Marino", forecast.Facility)
	assert.Equal(t, 50, forecast.WindowDays)
	assert.False(t, forecast.Unbounded)
	require.Len(t, forecast.Days, checkin.DaysInWeek)

	monday := forecast.Day(checkin.Monday)
	require.NotNil(t, monday)
	assert.Equal(t, "Monday", monday.WeekdayName)
	assert.Equal(t, 5, monday.CheckIns)
	assert.Equal(t, 2, monday.InstanceCount)
	assert.Equal(t, []int{0, 6, 17}, monday.Histogram.Hours)
	assert.Equal(t, []int{1, 3, 1}, monday.Histogram.Counts)
	assert.Equal(t, []float64{0.5, 1.5, 0.5}, monday.Histogram.Averages)
	assert.Equal(t, "Forecasted Marino usage for Monday (based on 50 past days)", monday.Title)

	tuesday := forecast.Day(checkin.Tuesday)
	require.NotNil(t, tuesday)
	assert.Equal(t, []int{12}, tuesday.Histogram.Hours)

	sunday := forecast.Day(checkin.Sunday)
	require.NotNil(t, sunday)
	assert.True(t, sunday.Histogram.Empty())
	assert.Equal(t, 0, sunday.InstanceCount)
}

func TestForecastService_Unbounded(t *testing.T) {
	fs := newTestForecastService(t, sampleSource(), 0)

	forecast, err := fs.BuildWeeklyForecast(context.Background())

	require.NoError(t, err)
	assert.True(t, forecast.Unbounded)
	monday := forecast.Day(checkin.Monday)
	assert.Equal(t, 5, monday.CheckIns)
	assert.Equal(t, 2, monday.InstanceCount)
	assert.Equal(t, "Forecasted Marino usage for Monday", monday.Title)

	tuesday := forecast.Day(checkin.Tuesday)
	assert.Equal(t, 2, tuesday.CheckIns)
	assert.Equal(t, 2, tuesday.InstanceCount)
}

func TestForecastService_MalformedRecordFailsFast(t *testing.T) {
	source := &stubSource{records: rawRecords("4/17/2023 6:01:12 AM", "13/40/2023 99:99:99 XM")}
	fs := newTestForecastService(t, source, 0)

	_, err := fs.BuildWeeklyForecast(context.Background())

	require.Error(t, err)
	var fe *util.FormatError
	assert.True(t, errors.As(err, &fe))
}

func TestForecastService_LoadError(t *testing.T) {
	source := &stubSource{err: &util.InputError{Source: "x.csv", Reason: "failed to open file", Err: os.ErrNotExist}}
	fs := newTestForecastService(t, source, 0)

	_, err := fs.BuildWeeklyForecast(context.Background())

	var ie *util.InputError
	require.True(t, errors.As(err, &ie))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestForecastService_RenderDesiredCharts(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	fs := newTestForecastService(t, sampleSource(), 50, checkin.Monday, checkin.Sunday)

	// Act
	forecast, paths, err := fs.RenderDesiredCharts(context.Background(), dir)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, forecast)
	assert.Equal(t, []string{
		filepath.Join(dir, "forecast_monday.html"),
		filepath.Join(dir, "forecast_sunday.html"),
	}, paths)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "only desired weekdays are rendered")
}

func TestForecastService_RenderNoDesiredWeekdays(t *testing.T) {
	dir := t.TempDir()
	fs := newTestForecastService(t, sampleSource(), 50)

	_, paths, err := fs.RenderDesiredCharts(context.Background(), dir)

	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestForecastTitle(t *testing.T) {
	window, err := checkin.NewTrailingWindow(14)
	require.NoError(t, err)

	assert.Equal(t, "Forecasted Marino usage for Friday (based on 14 past days)",
		ForecastTitle("Marino", checkin.Friday, window))
	assert.Equal(t, "Forecasted Marino usage for Friday",
		ForecastTitle("Marino", checkin.Friday, checkin.Unbounded()))
}
