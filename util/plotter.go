package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"checkin-forecast/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	xAxisLabel = "check-in hour (24 hour time)"
	yAxisLabel = "# check-ins per hour"
	seriesName = "avg check-ins"
)

// ChartOptions controls the rendered page. YAxisMax fixes the upper bound of
// the y axis so charts of different weekdays stay comparable.
type ChartOptions struct {
	YAxisMax float64
	Width    string
	Height   string
}

// DefaultChartOptions mirrors the original 0-350 y range.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		YAxisMax: 350,
		Width:    "900px",
		Height:   "500px",
	}
}

// NewWeekdayBarChart builds the bar chart for one weekday forecast.
func NewWeekdayBarChart(forecast models.WeekdayForecast, chartOpts ChartOptions) *charts.Bar {
	hist := forecast.Histogram

	labels := make([]string, len(hist.Hours))
	items := make([]opts.BarData, len(hist.Hours))
	for i, h := range hist.Hours {
		labels[i] = strconv.Itoa(h)
		items[i] = opts.BarData{Value: hist.Averages[i]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: forecast.Title,
			Width:     chartOpts.Width,
			Height:    chartOpts.Height,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    forecast.Title,
			Subtitle: fmt.Sprintf("%d check-ins over %d %s(s)", forecast.CheckIns, forecast.InstanceCount, forecast.WeekdayName),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: xAxisLabel,
			Type: "category",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: yAxisLabel,
			Type: "value",
			Min:  0,
			Max:  chartOpts.YAxisMax,
		}),
	)
	bar.SetXAxis(labels).AddSeries(seriesName, items)
	return bar
}

// RenderWeekdayHistogram writes the weekday chart as an HTML page to w.
func RenderWeekdayHistogram(w io.Writer, forecast models.WeekdayForecast, chartOpts ChartOptions) error {
	if err := NewWeekdayBarChart(forecast, chartOpts).Render(w); err != nil {
		return fmt.Errorf("failed to render chart for %s: %w", forecast.WeekdayName, err)
	}
	return nil
}

// ChartFileName is the file a weekday chart is written to, e.g. forecast_monday.html.
func ChartFileName(forecast models.WeekdayForecast) string {
	return "forecast_" + strings.ToLower(forecast.WeekdayName) + ".html"
}

// RenderWeekdayHistogramToFile renders the chart into dir and returns the file path.
func RenderWeekdayHistogramToFile(dir string, forecast models.WeekdayForecast, chartOpts ChartOptions) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir %q: %w", dir, err)
	}

	path := filepath.Join(dir, ChartFileName(forecast))
	f, err := createFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to create HTML file %q: %w", path, err)
	}

	if err := RenderWeekdayHistogram(f, forecast, chartOpts); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write HTML file %q: %w", path, err)
	}
	return path, nil
}

var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}
