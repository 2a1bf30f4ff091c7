// Package server exposes the pipeline over HTTP: one synchronous analysis
// endpoint plus a health probe.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/merchkit/trendagent/internal/models"
)

// AnalysisRunner is the slice of the agent the HTTP surface needs.
type AnalysisRunner interface {
	RunAnalysis(ctx context.Context) ([]models.SearchResult, []string, error)
}

type Server struct {
	runner AnalysisRunner
	log    *zap.Logger
}

type analysisResponse struct {
	Trends  []models.SearchResult `json:"trends"`
	Prompts []string              `json:"prompts"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func New(runner AnalysisRunner, log *zap.Logger) *Server {
	return &Server{runner: runner, log: log}
}

func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// research alone can take a minute with paced queries
	r.Use(middleware.Timeout(3 * time.Minute))

	r.Get("/health", s.handleHealth)
	r.Post("/api/run-trend-analysis", s.handleRunTrendAnalysis)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleRunTrendAnalysis(w http.ResponseWriter, r *http.Request) {
	trends, prompts, err := s.runner.RunAnalysis(r.Context())
	if err != nil {
		s.log.Error("trend analysis request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, analysisResponse{Trends: trends, Prompts: prompts})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
