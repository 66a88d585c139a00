package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"checkin-forecast/logger"
	"checkin-forecast/models"
)

var ErrForecastNotReady = errors.New("forecast has not been built yet")

// ForecastRefresherService keeps the latest weekly forecast in memory and
// rebuilds it periodically. Nothing is persisted.
type ForecastRefresherService struct {
	forecasts *ForecastService

	mu      sync.RWMutex
	latest  *models.WeeklyForecast
	lastErr error
}

// NewForecastRefresherService constructs a new refresher over forecasts.
func NewForecastRefresherService(forecasts *ForecastService) *ForecastRefresherService {
	return &ForecastRefresherService{forecasts: forecasts}
}

// Refresh rebuilds the forecast. On failure the previous snapshot is kept.
func (fr *ForecastRefresherService) Refresh(ctx context.Context) error {
	forecast, err := fr.forecasts.BuildWeeklyForecast(ctx)

	fr.mu.Lock()
	defer fr.mu.Unlock()
	fr.lastErr = err
	if err != nil {
		return err
	}
	fr.latest = forecast
	return nil
}

// Latest returns the last successfully built forecast.
func (fr *ForecastRefresherService) Latest() (*models.WeeklyForecast, error) {
	fr.mu.RLock()
	defer fr.mu.RUnlock()
	if fr.latest == nil {
		if fr.lastErr != nil {
			return nil, fr.lastErr
		}
		return nil, ErrForecastNotReady
	}
	return fr.latest, nil
}

// Forecasts exposes the underlying service, e.g. for chart options.
func (fr *ForecastRefresherService) Forecasts() *ForecastService {
	return fr.forecasts
}

// StartPeriodicJob launches the background loop at the given interval.
// It stops when ctx is cancelled.
func (fr *ForecastRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go fr.startPeriodicJob(ctx, interval)
}

func (fr *ForecastRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	log := logger.Component("ForecastRefresherService")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Stopping periodic forecast refresher job.")
			return
		case <-ticker.C:
			log.Info().Msg("Running periodic forecast refresher job.")
			if err := fr.Refresh(ctx); err != nil {
				log.Error().Err(err).Msg("Refresh returned error, keeping previous forecast")
			} else {
				log.Info().Msg("Refresh completed successfully.")
			}
		}
	}
}
