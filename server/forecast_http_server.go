package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"checkin-forecast/logger"

	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

type ForecastHttpServer struct {
	addr      string
	router    *Router
	muxRouter *mux.Router
}

func NewForecastHttpServer(addr string, router *Router, muxRouter *mux.Router) *ForecastHttpServer {
	return &ForecastHttpServer{
		addr:      addr,
		router:    router,
		muxRouter: muxRouter,
	}
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *ForecastHttpServer) Start(ctx context.Context) error {
	log := logger.Component("ForecastHttpServer")
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.muxRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.addr).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down the server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("Server exiting")
	return nil
}
