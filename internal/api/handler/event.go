// internal/api/handler/event.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"networth-tracker/internal/api/types"
	"networth-tracker/internal/domain"
	"networth-tracker/internal/service"
	"networth-tracker/internal/util"
)

// EventHandler handles HTTP requests for the net worth event log.
type EventHandler struct {
	service service.EventService
	logger  *slog.Logger
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(svc service.EventService, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		service: svc,
		logger:  logger,
	}
}

// RecordEventRequest represents the request body for recording a net
// worth snapshot. Both fields are optional.
type RecordEventRequest struct {
	EventType string     `json:"event_type"`
	EventDate *time.Time `json:"event_date"`
}

// Record handles POST /api/v1/net-worth-events
func (h *EventHandler) Record(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(h.logger, w, r)
	if !ok {
		return
	}

	var req RecordEventRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(h.logger, w, util.ErrInvalidInput)
			return
		}
	}

	var eventDate time.Time
	if req.EventDate != nil {
		eventDate = *req.EventDate
	}

	event, err := h.service.Record(r.Context(), userID, domain.EventType(req.EventType), eventDate)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, types.Success(map[string]interface{}{
		"netWorthEvent": event,
	}))
}

// List handles GET /api/v1/net-worth-events?period=&limit=
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(h.logger, w, r)
	if !ok {
		return
	}

	period := r.URL.Query().Get("period")
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		limit = 0 // service applies the default
	}

	events, err := h.service.List(r.Context(), userID, period, limit)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.SuccessList(len(events), map[string]interface{}{
		"netWorthEvents": events,
	}))
}

// Latest handles GET /api/v1/net-worth-events/latest
func (h *EventHandler) Latest(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(h.logger, w, r)
	if !ok {
		return
	}

	netWorth, err := h.service.Latest(r.Context(), userID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.Success(map[string]interface{}{
		"netWorth": netWorth,
	}))
}

// Get handles GET /api/v1/net-worth-events/{eventID}
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	eventID, err := uuid.Parse(chi.URLParam(r, "eventID"))
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	event, err := h.service.Get(r.Context(), userID, eventID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.Success(map[string]interface{}{
		"netWorthEvent": event,
	}))
}

// Delete handles DELETE /api/v1/net-worth-events/{eventID}
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	eventID, err := uuid.Parse(chi.URLParam(r, "eventID"))
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	if err := h.service.Delete(r.Context(), userID, eventID); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
