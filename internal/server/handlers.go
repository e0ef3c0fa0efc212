// Package server exposes the salary pipeline as a JSON API
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/myusername/nba-salary-predictor/pkg/models"
	"github.com/myusername/nba-salary-predictor/pkg/salary"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	pipeline *salary.Pipeline
}

// NewHandler creates a new handler
func NewHandler(pipeline *salary.Pipeline) *Handler {
	return &Handler{pipeline: pipeline}
}

// Router wires the API routes
func (h *Handler) Router(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.HealthCheck)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/search", h.Search)
		r.Get("/seasons", h.Seasons)
		r.Get("/record", h.Record)
		r.Get("/predict", h.Predict)
	})
	return r
}

type recordResponse struct {
	Season   string             `json:"season"`
	Features []string           `json:"features"`
	Values   []float64          `json:"values"`
	Stats    map[string]float64 `json:"stats"`
}

type predictResponse struct {
	Player string         `json:"player"`
	Image  string         `json:"image,omitempty"`
	Record recordResponse `json:"record"`
	Salary int64          `json:"salary"`
	Text   string         `json:"salary_text"`
}

func newRecordResponse(r models.SeasonRecord) recordResponse {
	return recordResponse{
		Season:   r.Season,
		Features: models.FeatureSchema[:],
		Values:   r.Features(),
		Stats:    r.Map(),
	}
}

// HealthCheck returns service health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "nba-salary",
	})
}

// Search resolves ?name= into candidates
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	results, err := h.pipeline.Search(r.Context(), name)
	if err != nil {
		respondPipelineError(w, err)
		return
	}
	if len(results) == 0 {
		respondError(w, http.StatusNotFound, salary.UserMessage(models.ErrNoMatch))
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}

// Seasons lists the seasons of ?link=
func (h *Handler) Seasons(w http.ResponseWriter, r *http.Request) {
	link := r.URL.Query().Get("link")
	if link == "" {
		respondError(w, http.StatusBadRequest, "link is required")
		return
	}

	seasons, err := h.pipeline.Seasons(r.Context(), link)
	if err != nil {
		respondPipelineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"seasons": seasons})
}

// Record extracts the feature record for ?link=&season=
func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	link, season, ok := linkAndSeason(w, r)
	if !ok {
		return
	}

	record, err := h.pipeline.Record(r.Context(), link, season)
	if err != nil {
		respondPipelineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newRecordResponse(record))
}

// Predict predicts the salary for ?link=&season=, with an optional &name= for display
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	link, season, ok := linkAndSeason(w, r)
	if !ok {
		return
	}
	candidate := models.SearchResult{Name: r.URL.Query().Get("name"), Link: link}

	res, err := h.pipeline.Predict(r.Context(), candidate, season)
	if err != nil {
		respondPipelineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, predictResponse{
		Player: res.Prediction.Player,
		Image:  res.Image,
		Record: newRecordResponse(res.Prediction.Record),
		Salary: res.Prediction.Dollars(),
		Text:   res.Prediction.String(),
	})
}

func linkAndSeason(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	q := r.URL.Query()
	link, season := q.Get("link"), q.Get("season")
	if link == "" || season == "" {
		respondError(w, http.StatusBadRequest, "link and season are required")
		return "", "", false
	}
	return link, season, true
}

// StatusFor maps a pipeline error to an HTTP status
func StatusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidLink):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrSeasonNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrNoMatch):
		return http.StatusNotFound
	case errors.Is(err, models.ErrResolution), errors.Is(err, models.ErrFetch), errors.Is(err, models.ErrParse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondPipelineError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	log.Printf("Request failed (%d): %v", status, err)
	respondError(w, status, salary.UserMessage(err))
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
