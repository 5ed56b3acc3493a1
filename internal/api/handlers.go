// Package api implements the HTTP facade of one communication service
// using chi. The route paths come from the service's schema, so the
// same three handlers serve calls, email, and SMS.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/haldor/keepintouch/internal/apperr"
	"github.com/haldor/keepintouch/internal/logservice"
	"github.com/haldor/keepintouch/internal/models"
)

// Handler holds the route handlers for one service.
type Handler struct {
	svc *logservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *logservice.Service) *Handler {
	return &Handler{svc: svc}
}

// Collect handles the POST collect endpoint. The body must be a JSON
// object satisfying the service schema; extra fields are stored as-is.
func (h *Handler) Collect(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var rec models.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := h.svc.Collect(r.Context(), rec); err != nil {
		if errors.Is(err, apperr.ErrInvalidRecord) {
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}
		slog.Error("collect failed",
			slog.String("service", string(h.svc.Schema().Kind)),
			slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, successMessage(h.svc.Schema().CollectedMessage))
}

// List handles the GET list endpoint: the entire store, insertion
// order, no pagination.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.List(r.Context())
	if err != nil {
		slog.Error("list failed",
			slog.String("service", string(h.svc.Schema().Kind)),
			slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, successData(recs))
}

// Analyze handles the GET analyze endpoint.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	insights, err := h.svc.Analyze(r.Context())
	if err != nil {
		slog.Error("analyze failed",
			slog.String("service", string(h.svc.Schema().Kind)),
			slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, successInsights(insights))
}
