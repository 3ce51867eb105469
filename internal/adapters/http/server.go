package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aretw0/steer"
	"github.com/aretw0/steer/pkg/config"
	"github.com/aretw0/steer/pkg/domain"
	"github.com/aretw0/steer/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Engine is the read-only view of the engine exposed over HTTP.
type Engine interface {
	Branches() []string
	Tuning() config.Tuning
}

// Server serves engine status and the latest published command.
type Server struct {
	Engine   Engine
	Source   ports.CommandSource
	Gatherer prometheus.Gatherer
}

// CommandResponse is the body of GET /command.
type CommandResponse struct {
	Tick    domain.Tick    `json:"tick"`
	Command domain.Command `json:"command"`
}

// NewHandler creates a new HTTP handler. A nil gatherer disables /metrics.
func NewHandler(engine Engine, source ports.CommandSource, gatherer prometheus.Gatherer) http.Handler {
	s := &Server{Engine: engine, Source: source, Gatherer: gatherer}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.Health)
	r.Get("/info", s.Info)
	r.Get("/command", s.Command)
	r.Get("/branches", s.Branches)
	r.Get("/tuning", s.Tuning)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Info handles GET /info.
func (s *Server) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":     "steer-http",
		"version": steer.Version,
	})
}

// Command handles GET /command.
func (s *Server) Command(w http.ResponseWriter, r *http.Request) {
	tick, cmd, err := s.Source.Last(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoCommand) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		http.Error(w, fmt.Sprintf("Command error: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, CommandResponse{Tick: tick, Command: cmd})
}

// Branches handles GET /branches.
func (s *Server) Branches(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Engine.Branches())
}

// Tuning handles GET /tuning.
func (s *Server) Tuning(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Engine.Tuning())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Printf("encode error: %v\n", err)
	}
}
