package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"checkin-forecast/logger"
	"checkin-forecast/metrics"
	"checkin-forecast/models"
	"checkin-forecast/models/checkin"
	"checkin-forecast/util"

	"github.com/gorilla/mux"
)

const WEEKDAY_PATH_VAR = "weekday"

// ForecastProvider returns the most recently built weekly forecast.
type ForecastProvider interface {
	Latest() (*models.WeeklyForecast, error)
}

type chartRenderer func(w io.Writer, forecast models.WeekdayForecast, chartOpts util.ChartOptions) error

type ForecastHandler struct {
	provider  ForecastProvider
	chartOpts util.ChartOptions
	render    chartRenderer
}

func NewForecastHandler(provider ForecastProvider, chartOpts util.ChartOptions) *ForecastHandler {
	return &ForecastHandler{
		provider:  provider,
		chartOpts: chartOpts,
		render:    util.RenderWeekdayHistogram,
	}
}

// GetWeeklyForecast handles GET /v1/forecasts
func (h *ForecastHandler) GetWeeklyForecast(w http.ResponseWriter, r *http.Request) {
	forecast, ok := h.latest(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, forecast)
}

// GetWeekdayForecast handles GET /v1/forecasts/{weekday}
func (h *ForecastHandler) GetWeekdayForecast(w http.ResponseWriter, r *http.Request) {
	day, ok := h.weekday(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, day)
}

// GetWeekdayChart handles GET /v1/forecasts/{weekday}/chart
func (h *ForecastHandler) GetWeekdayChart(w http.ResponseWriter, r *http.Request) {
	day, ok := h.weekday(w, r)
	if !ok {
		return
	}
	// Render fully before writing so a failure can still become a 500.
	var page bytes.Buffer
	if err := h.render(&page, *day, h.chartOpts); err != nil {
		logger.Component("ForecastHandler").Error().Err(err).Msg("Error rendering chart")
		http.Error(w, "Failed to render chart", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := page.WriteTo(w); err != nil {
		logger.Component("ForecastHandler").Error().Err(err).Msg("Error writing chart")
		return
	}
	metrics.RecordChartRendered(day.WeekdayName)
}

// Ping handles GET /ping
func (h *ForecastHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func (h *ForecastHandler) latest(w http.ResponseWriter) (*models.WeeklyForecast, bool) {
	forecast, err := h.provider.Latest()
	if err != nil {
		logger.Component("ForecastHandler").Warn().Err(err).Msg("No forecast available")
		http.Error(w, "Forecast not available", http.StatusServiceUnavailable)
		return nil, false
	}
	return forecast, true
}

func (h *ForecastHandler) weekday(w http.ResponseWriter, r *http.Request) (*models.WeekdayForecast, bool) {
	d, err := checkin.ParseWeekday(mux.Vars(r)[WEEKDAY_PATH_VAR])
	if err != nil {
		http.Error(w, "Invalid argument "+WEEKDAY_PATH_VAR, http.StatusBadRequest)
		return nil, false
	}
	forecast, ok := h.latest(w)
	if !ok {
		return nil, false
	}
	day := forecast.Day(d)
	if day == nil {
		http.Error(w, "Weekday not found", http.StatusNotFound)
		return nil, false
	}
	return day, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Component("ForecastHandler").Error().Err(err).Msg("Error encoding response")
	}
}
