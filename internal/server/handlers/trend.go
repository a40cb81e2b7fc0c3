// internal/server/handlers/trend.go

package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"trendsite/internal/domain/trend"
)

// TrendHandler handles trend-related HTTP requests
type TrendHandler struct {
	querier trend.Querier
}

// NewTrendHandler creates a new trend handler
func NewTrendHandler(querier trend.Querier) *TrendHandler {
	return &TrendHandler{
		querier: querier,
	}
}

// ListTrends returns trends matching the query parameters
func (h *TrendHandler) ListTrends(w http.ResponseWriter, r *http.Request) {
	filter := parseFilter(r)

	views, err := h.querier.List(r.Context(), filter)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list trends", err)
		return
	}

	if views == nil {
		views = []trend.View{}
	}

	respondWithJSON(w, http.StatusOK, views)
}

// GetTrend returns a specific trend by slug
func (h *TrendHandler) GetTrend(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		respondWithError(w, http.StatusBadRequest, "Missing trend slug", nil)
		return
	}

	view, err := h.querier.GetBySlug(r.Context(), slug)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to get trend", err)
		return
	}
	if view == nil {
		respondWithError(w, http.StatusNotFound, "Trend not found", nil)
		return
	}

	respondWithJSON(w, http.StatusOK, view)
}

// statsResponse is the payload for GetStats
type statsResponse struct {
	Sources map[string]int `json:"sources"`
	Total   int            `json:"total"`
}

// GetStats returns persisted row counts per source
func (h *TrendHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	counts, total, err := h.querier.SourceStats(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to get stats", err)
		return
	}

	respondWithJSON(w, http.StatusOK, statsResponse{Sources: counts, Total: total})
}

// parseFilter reads the recognized query parameters. Absent or
// malformed values mean "no filter"; an unknown sort key falls back
// to the default score ordering.
func parseFilter(r *http.Request) trend.Filter {
	q := r.URL.Query()

	filter := trend.Filter{
		Region: q.Get("region"),
		Query:  q.Get("q"),
	}

	if v, err := strconv.Atoi(q.Get("since_hours")); err == nil && v > 0 {
		filter.SinceHours = v
	}
	if v, err := strconv.Atoi(q.Get("min_score")); err == nil && v > 0 {
		filter.MinScore = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
		filter.Limit = v
	}
	if v, err := strconv.Atoi(q.Get("offset")); err == nil && v > 0 {
		filter.Offset = v
	}

	switch sort := q.Get("sort"); sort {
	case trend.SortScore, trend.SortFirstSeen, trend.SortLastSeen, trend.SortAlpha:
		filter.Sort = sort
	}

	return filter
}

// Helper for JSON responses
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Failed to marshal response"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Helper for error responses
func respondWithError(w http.ResponseWriter, code int, message string, err error) {
	response := map[string]string{"error": message}

	if err != nil && code >= 500 {
		log.Printf("ERROR: HTTP %d %s: %v", code, message, err)
	}

	jsonResponse, _ := json.Marshal(response)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(jsonResponse)
}
