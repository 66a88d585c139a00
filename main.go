package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"checkin-forecast/config"
	"checkin-forecast/di"
	"checkin-forecast/logger"
	"checkin-forecast/util"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Logger.Error().Err(err).Str("mode", cfg.Mode).Msg("Run failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.Component("Main")

	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		return err
	}

	switch cfg.Mode {
	case config.MODE_IMPORT:
		n, err := container.CheckInImportService.Import(ctx, cfg.ImportReplace)
		if err != nil {
			return err
		}
		log.Info().Int("records", n).Str("facility", cfg.FacilityName).Msg("Import finished")
		return nil

	case config.MODE_SERVE:
		refresher := container.ForecastRefresherService
		log.Info().Msg("Building initial forecast")
		if err := refresher.Refresh(ctx); err != nil {
			return err
		}
		log.Info().Dur("interval", container.RefreshInterval()).Msg("Starting periodic job")
		refresher.StartPeriodicJob(ctx, container.RefreshInterval())

		log.Info().Str("addr", cfg.HTTPAddr).Msg("Starting server")
		return container.ForecastHttpServer.Start(ctx)

	default:
		outputDir := config.ResolvePath(cfg.OutputDir)
		forecast, paths, err := container.ForecastService.RenderDesiredCharts(ctx, outputDir)
		if err != nil {
			return err
		}
		util.PrintWeeklyForecastPartially(os.Stdout, forecast)
		log.Info().Strs("charts", paths).Msg("Render finished")
		return nil
	}
}
