// internal/api/handler/update.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"networth-tracker/internal/api/types"
	"networth-tracker/internal/service"
	"networth-tracker/internal/util"
)

// UpdateHandler handles HTTP requests for balance updates.
type UpdateHandler struct {
	service service.UpdateService
	logger  *slog.Logger
}

// NewUpdateHandler creates a new UpdateHandler.
func NewUpdateHandler(svc service.UpdateService, logger *slog.Logger) *UpdateHandler {
	return &UpdateHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateUpdateRequest represents the request body for recording a
// balance observation. An empty date defaults to today.
type CreateUpdateRequest struct {
	Balance decimal.Decimal `json:"balance"`
	Notes   *string         `json:"notes"`
	Date    string          `json:"date"`
}

// PatchUpdateRequest represents a partial edit of an observation.
type PatchUpdateRequest struct {
	Balance *decimal.Decimal `json:"balance"`
	Notes   *string          `json:"notes"`
	Date    *string          `json:"date"`
}

func (h *UpdateHandler) pathIDs(r *http.Request, withUpdate bool) (sourceID, updateID uuid.UUID, err error) {
	sourceID, err = uuid.Parse(chi.URLParam(r, "sourceID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, util.ErrInvalidInput
	}
	if withUpdate {
		updateID, err = uuid.Parse(chi.URLParam(r, "updateID"))
		if err != nil {
			return uuid.Nil, uuid.Nil, util.ErrInvalidInput
		}
	}
	return sourceID, updateID, nil
}

// List handles GET /api/v1/financial-sources/{sourceID}/updates
func (h *UpdateHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	sourceID, _, err := h.pathIDs(r, false)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	updates, err := h.service.List(r.Context(), userID, sourceID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.SuccessList(len(updates), map[string]interface{}{
		"updates": updates,
	}))
}

// Get handles GET /api/v1/financial-sources/{sourceID}/updates/{updateID}
func (h *UpdateHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	sourceID, updateID, err := h.pathIDs(r, true)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	update, err := h.service.Get(r.Context(), userID, sourceID, updateID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.Success(map[string]interface{}{
		"update": update,
	}))
}

// Create handles POST /api/v1/financial-sources/{sourceID}/updates
func (h *UpdateHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	sourceID, _, err := h.pathIDs(r, false)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	var req CreateUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	if req.Balance.IsNegative() {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	update, err := h.service.Create(r.Context(), userID, sourceID, service.CreateUpdateInput{
		Balance: req.Balance,
		Notes:   req.Notes,
		Date:    req.Date,
	})
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, types.Success(map[string]interface{}{
		"update": update,
	}))
}

// Update handles PATCH /api/v1/financial-sources/{sourceID}/updates/{updateID}
func (h *UpdateHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	sourceID, updateID, err := h.pathIDs(r, true)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	var req PatchUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	update, err := h.service.Update(r.Context(), userID, sourceID, updateID, service.PatchUpdateInput{
		Balance: req.Balance,
		Notes:   req.Notes,
		Date:    req.Date,
	})
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.Success(map[string]interface{}{
		"update": update,
	}))
}

// Delete handles DELETE /api/v1/financial-sources/{sourceID}/updates/{updateID}
func (h *UpdateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	sourceID, updateID, err := h.pathIDs(r, true)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	if err := h.service.Delete(r.Context(), userID, sourceID, updateID); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
