package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	checkInsLoadedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkin_records_loaded_total",
			Help: "Total number of raw check-in records read from a source",
		},
		[]string{"source"},
	)

	checkInsRejectedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "checkin_records_rejected_total",
			Help: "Total number of check-in records that failed timestamp parsing",
		},
	)

	checkInsImportedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "checkin_records_imported_total",
			Help: "Total number of check-in records appended to the Redis store",
		},
	)

	forecastBuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkin_forecast_builds_total",
			Help: "Total number of weekly forecast builds",
		},
		[]string{"status"},
	)

	forecastBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "checkin_forecast_build_duration_seconds",
			Help:    "Weekly forecast build duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
	)

	chartsRenderedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkin_charts_rendered_total",
			Help: "Total number of weekday charts rendered",
		},
		[]string{"weekday"},
	)

	forecastCheckIns = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "checkin_forecast_checkins",
			Help: "Check-ins per weekday in the latest forecast",
		},
		[]string{"weekday"},
	)
)

func RecordCheckInsLoaded(source string, n int) {
	checkInsLoadedTotal.WithLabelValues(source).Add(float64(n))
}

func RecordCheckInRejected() {
	checkInsRejectedTotal.Inc()
}

func RecordCheckInsImported(n int) {
	checkInsImportedTotal.Add(float64(n))
}

// RecordForecastBuild tracks a build outcome and its duration.
func RecordForecastBuild(err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	forecastBuildsTotal.WithLabelValues(status).Inc()
	forecastBuildDuration.Observe(duration.Seconds())
}

func RecordChartRendered(weekday string) {
	chartsRenderedTotal.WithLabelValues(weekday).Inc()
}

func SetForecastCheckIns(weekday string, n int) {
	forecastCheckIns.WithLabelValues(weekday).Set(float64(n))
}

// MetricsHandler returns the Prometheus scrape handler.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
