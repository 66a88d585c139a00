package services

import (
	"context"
	"fmt"
	"time"

	"checkin-forecast/logger"
	"checkin-forecast/metrics"
	"checkin-forecast/models"
	"checkin-forecast/models/checkin"
	"checkin-forecast/util"
)

// ForecastOptions configures a ForecastService.
type ForecastOptions struct {
	Facility        string
	Window          checkin.HistoryWindow
	DesiredWeekdays []checkin.Weekday
	Chart           util.ChartOptions
	// Now defaults to time.Now.
	Now func() time.Time
}

// ForecastService turns a check-in table into per-weekday hourly forecasts.
type ForecastService struct {
	source CheckInSource
	opts   ForecastOptions
}

// NewForecastService constructs a new ForecastService reading from source.
func NewForecastService(source CheckInSource, opts ForecastOptions) *ForecastService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &ForecastService{
		source: source,
		opts:   opts,
	}
}

func (fs *ForecastService) ChartOptions() util.ChartOptions {
	return fs.opts.Chart
}

func (fs *ForecastService) DesiredWeekdays() []checkin.Weekday {
	return fs.opts.DesiredWeekdays
}

// ForecastTitle names the weekday and, for a bounded window, its length.
func ForecastTitle(facility string, d checkin.Weekday, window checkin.HistoryWindow) string {
	title := fmt.Sprintf("Forecasted %s usage for %s", facility, d)
	if !window.IsUnbounded() {
		title += fmt.Sprintf(" (based on %d past days)", window.Days())
	}
	return title
}

// BuildWeeklyForecast runs load, parse, filter, aggregate and histogram for
// all seven weekdays. The first malformed record aborts the build.
func (fs *ForecastService) BuildWeeklyForecast(ctx context.Context) (forecast *models.WeeklyForecast, err error) {
	log := logger.Component("ForecastService")
	started := time.Now()
	defer func() { metrics.RecordForecastBuild(err, time.Since(started)) }()

	records, err := fs.source.LoadCheckIns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load check-ins: %w", err)
	}
	log.Info().Str("source", fs.source.Name()).Int("records", len(records)).Msg("Loaded check-ins")

	timestamps, err := util.ParseCheckInTimestamps(records)
	if err != nil {
		metrics.RecordCheckInRejected()
		return nil, fmt.Errorf("failed to parse check-ins: %w", err)
	}

	now := fs.opts.Now()
	filtered := FilterByWindow(timestamps, now, fs.opts.Window)
	log.Info().
		Str("window", fs.opts.Window.String()).
		Int("kept", len(filtered)).
		Int("dropped", len(timestamps)-len(filtered)).
		Msg("Applied history window")

	buckets := AggregateByWeekday(filtered)

	forecast = &models.WeeklyForecast{
		Facility:    fs.opts.Facility,
		GeneratedAt: now,
		WindowDays:  fs.opts.Window.Days(),
		Unbounded:   fs.opts.Window.IsUnbounded(),
		Days:        make([]models.WeekdayForecast, 0, checkin.DaysInWeek),
	}
	for _, bucket := range buckets {
		hist, err := BuildHistogram(bucket.Hours, bucket.InstanceCount)
		if err != nil {
			return nil, fmt.Errorf("failed to build histogram for %s: %w", bucket.Weekday, err)
		}
		forecast.Days = append(forecast.Days, models.WeekdayForecast{
			Weekday:       bucket.Weekday,
			WeekdayName:   bucket.Weekday.String(),
			InstanceCount: bucket.InstanceCount,
			CheckIns:      len(bucket.Hours),
			Histogram:     hist,
			Title:         ForecastTitle(fs.opts.Facility, bucket.Weekday, fs.opts.Window),
		})
		metrics.SetForecastCheckIns(bucket.Weekday.String(), len(bucket.Hours))
	}

	log.Info().Int("check_ins", buckets.TotalCheckIns()).Dur("took", time.Since(started)).Msg("Built weekly forecast")
	return forecast, nil
}

// RenderCharts writes one chart per desired weekday into outputDir and
// returns the written paths. Other weekdays are skipped silently.
func (fs *ForecastService) RenderCharts(forecast *models.WeeklyForecast, outputDir string) ([]string, error) {
	log := logger.Component("ForecastService")

	var paths []string
	for _, d := range fs.opts.DesiredWeekdays {
		day := forecast.Day(d)
		if day == nil {
			continue
		}
		if day.Histogram.Empty() {
			log.Warn().Str("weekday", day.WeekdayName).Msg("No check-ins in window, rendering empty chart")
		}
		path, err := util.RenderWeekdayHistogramToFile(outputDir, *day, fs.opts.Chart)
		if err != nil {
			return paths, err
		}
		metrics.RecordChartRendered(day.WeekdayName)
		log.Info().Str("weekday", day.WeekdayName).Str("path", path).Msg("Rendered chart")
		paths = append(paths, path)
	}
	return paths, nil
}

// RenderDesiredCharts builds the forecast and renders the desired weekdays.
func (fs *ForecastService) RenderDesiredCharts(ctx context.Context, outputDir string) (*models.WeeklyForecast, []string, error) {
	forecast, err := fs.BuildWeeklyForecast(ctx)
	if err != nil {
		return nil, nil, err
	}
	paths, err := fs.RenderCharts(forecast, outputDir)
	if err != nil {
		return forecast, paths, err
	}
	return forecast, paths, nil
}
