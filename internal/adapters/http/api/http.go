// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	service "github.com/okian/fifastats/internal/app"
	"github.com/okian/fifastats/internal/domain/stats"
	"github.com/okian/fifastats/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	Country(ctx context.Context, name string) (types.CountrySummary, error)
	Countries(ctx context.Context) ([]types.CountrySummary, error)
	Top(ctx context.Context, m stats.Metric) (types.CountrySummary, error)
	Reload(ctx context.Context) error
}

// Server wires HTTP routes for the statistics API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	countriesHandler *CountriesHandler
	topHandler       *TopHandler
	reloadHandler    *ReloadHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		countriesHandler: NewCountriesHandler(deps),
		topHandler:       NewTopHandler(deps),
		reloadHandler:    NewReloadHandler(deps),
	}
}

// Register attaches all HTTP routes to r.
func (s *Server) Register(_ context.Context, r *mux.Router) {
	r.Use(RequestIDMiddleware)

	r.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz")).Methods(http.MethodGet)
	r.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats")).Methods(http.MethodGet)
	r.HandleFunc("/countries", MetricsMiddleware(s.countriesHandler.HandleList, "countries")).Methods(http.MethodGet)
	r.HandleFunc("/countries/{name}", MetricsMiddleware(s.countriesHandler.HandleGet, "country")).Methods(http.MethodGet)
	r.HandleFunc("/top/{metric}", MetricsMiddleware(s.topHandler.HandleTop, "top")).Methods(http.MethodGet)
	r.HandleFunc("/reload", MetricsMiddleware(s.reloadHandler.HandleReload, "reload")).Methods(http.MethodPost)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError maps service sentinels onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, service.ErrEmpty):
		writeError(w, http.StatusNotFound, "empty", err)
	case errors.Is(err, stats.ErrUnknownMetric):
		writeError(w, http.StatusBadRequest, "unknown_metric", err)
	case errors.Is(err, service.ErrNotStarted):
		writeError(w, http.StatusServiceUnavailable, "not_started", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
