package di

import (
	"context"
	"fmt"
	"time"

	"checkin-forecast/config"
	"checkin-forecast/dao/redis"
	"checkin-forecast/db"
	"checkin-forecast/logger"
	"checkin-forecast/metrics"
	"checkin-forecast/server"
	"checkin-forecast/server/handlers"
	services "checkin-forecast/service"
	"checkin-forecast/util"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	Config                   *config.Config
	RedisClient              db.RedisClient
	RedisCheckInDao          *redis.RedisCheckInDAO
	FileCheckInSource        *services.FileCheckInSource
	ForecastService          *services.ForecastService
	ForecastRefresherService *services.ForecastRefresherService
	CheckInImportService     *services.CheckInImportService
	ForecastHandler          *handlers.ForecastHandler
	MuxRouter                *mux.Router
	Router                   *server.Router
	ForecastHttpServer       *server.ForecastHttpServer
}

// NewContainer initializes and wires up all dependencies. Redis is only
// dialed when the run needs it (source=redis or mode=import).
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log := logger.Component("Container")
	log.Info().Str("mode", cfg.Mode).Str("source", cfg.Source).Msg("Initializing container")

	window, err := cfg.Window()
	if err != nil {
		return nil, err
	}
	weekdays, err := cfg.Weekdays()
	if err != nil {
		return nil, err
	}

	container := &Container{Config: cfg}

	if cfg.Source == config.SOURCE_REDIS || cfg.Mode == config.MODE_IMPORT {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		redisClient := db.NewCheckInRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
		}
		container.RedisClient = redisClient
		container.RedisCheckInDao = redis.NewRedisCheckInDAO(redisClient)
	}

	// Initialize the file source; import mode always reads the CSV
	dataPath := config.ResolvePath(cfg.DataPath)
	container.FileCheckInSource = services.NewFileCheckInSource(dataPath, cfg.DateTimeColumn)

	var source services.CheckInSource = container.FileCheckInSource
	if cfg.Source == config.SOURCE_REDIS {
		source = services.NewRedisCheckInSource(container.RedisCheckInDao, cfg.FacilityName)
	}
	log.Info().Str("source", source.Name()).Str("facility", cfg.FacilityName).Msg("Using check-in source")

	chartOpts := util.DefaultChartOptions()
	chartOpts.YAxisMax = cfg.YAxisMax

	container.ForecastService = services.NewForecastService(source, services.ForecastOptions{
		Facility:        cfg.FacilityName,
		Window:          window,
		DesiredWeekdays: weekdays,
		Chart:           chartOpts,
	})
	container.ForecastRefresherService = services.NewForecastRefresherService(container.ForecastService)

	if container.RedisCheckInDao != nil {
		container.CheckInImportService = services.NewCheckInImportService(
			container.FileCheckInSource, container.RedisCheckInDao, cfg.FacilityName)
	}

	container.ForecastHandler = handlers.NewForecastHandler(container.ForecastRefresherService, chartOpts)
	container.MuxRouter = mux.NewRouter()
	container.Router = server.NewRouter(container.ForecastHandler, metrics.MetricsHandler(), container.MuxRouter)
	container.ForecastHttpServer = server.NewForecastHttpServer(cfg.HTTPAddr, container.Router, container.MuxRouter)

	return container, nil
}

// RefreshInterval is the serve-mode rebuild period.
func (c *Container) RefreshInterval() time.Duration {
	return time.Duration(c.Config.RefreshIntervalMinutes) * time.Minute
}
