package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ForecastRoutes is the handler set served by the router.
type ForecastRoutes interface {
	GetWeeklyForecast(w http.ResponseWriter, r *http.Request)
	GetWeekdayForecast(w http.ResponseWriter, r *http.Request)
	GetWeekdayChart(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	forecastHandler ForecastRoutes
	metricsHandler  http.Handler
	router          *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	forecastHandler ForecastRoutes,
	metricsHandler http.Handler,
	router *mux.Router) *Router {
	return &Router{
		forecastHandler: forecastHandler,
		metricsHandler:  metricsHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/forecasts", r.forecastHandler.GetWeeklyForecast).Methods("GET")
	// {weekday} accepts full or short names, case-insensitive
	r.router.HandleFunc("/v1/forecasts/{weekday}", r.forecastHandler.GetWeekdayForecast).Methods("GET")
	r.router.HandleFunc("/v1/forecasts/{weekday}/chart", r.forecastHandler.GetWeekdayChart).Methods("GET")

	r.router.HandleFunc("/ping", r.forecastHandler.Ping).Methods("GET")
	if r.metricsHandler != nil {
		r.router.Handle("/metrics", r.metricsHandler).Methods("GET")
	}
}
