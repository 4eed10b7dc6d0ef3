// internal/api/handler/source.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"networth-tracker/internal/api/types"
	"networth-tracker/internal/domain"
	"networth-tracker/internal/service"
	"networth-tracker/internal/util"
)

// SourceHandler handles HTTP requests for financial sources.
type SourceHandler struct {
	service service.SourceService
	logger  *slog.Logger
}

// NewSourceHandler creates a new SourceHandler.
func NewSourceHandler(svc service.SourceService, logger *slog.Logger) *SourceHandler {
	return &SourceHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateSourceRequest represents the request body for creating a source.
type CreateSourceRequest struct {
	Name           string           `json:"name"`
	Type           string           `json:"type"`
	Institution    *string          `json:"institution"`
	Description    *string          `json:"description"`
	ColorCode      *string          `json:"color_code"`
	InitialBalance *decimal.Decimal `json:"initial_balance"`
	Notes          *string          `json:"notes"`
}

// UpdateSourceRequest represents a partial update; absent fields keep
// their previous values.
type UpdateSourceRequest struct {
	Name        *string `json:"name"`
	Type        *string `json:"type"`
	Institution *string `json:"institution"`
	Description *string `json:"description"`
	ColorCode   *string `json:"color_code"`
	IsActive    *bool   `json:"is_active"`
}

// List handles GET /api/v1/financial-sources
func (h *SourceHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(h.logger, w, r)
	if !ok {
		return
	}

	sources, err := h.service.List(r.Context(), userID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.SuccessList(len(sources), map[string]interface{}{
		"financialSources": sources,
	}))
}

// Get handles GET /api/v1/financial-sources/{sourceID}
func (h *SourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	sourceID, err := uuid.Parse(chi.URLParam(r, "sourceID"))
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	source, err := h.service.Get(r.Context(), userID, sourceID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.Success(map[string]interface{}{
		"financialSource": source,
	}))
}

// Create handles POST /api/v1/financial-sources
func (h *SourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(h.logger, w, r)
	if !ok {
		return
	}

	var req CreateSourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	if req.Name == "" || req.Type == "" {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	source, err := h.service.Create(r.Context(), userID, service.CreateSourceInput{
		Name:           req.Name,
		Type:           domain.SourceType(req.Type),
		Institution:    req.Institution,
		Description:    req.Description,
		ColorCode:      req.ColorCode,
		InitialBalance: req.InitialBalance,
		Notes:          req.Notes,
	})
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, types.Success(map[string]interface{}{
		"financialSource": source,
	}))
}

// Update handles PATCH /api/v1/financial-sources/{sourceID}
func (h *SourceHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	sourceID, err := uuid.Parse(chi.URLParam(r, "sourceID"))
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	var req UpdateSourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	var sourceType *domain.SourceType
	if req.Type != nil {
		t := domain.SourceType(*req.Type)
		sourceType = &t
	}

	source, err := h.service.Update(r.Context(), userID, sourceID, service.UpdateSourceInput{
		Name:        req.Name,
		Type:        sourceType,
		Institution: req.Institution,
		Description: req.Description,
		ColorCode:   req.ColorCode,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.Success(map[string]interface{}{
		"financialSource": source,
	}))
}

// Delete handles DELETE /api/v1/financial-sources/{sourceID}
func (h *SourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	sourceID, err := uuid.Parse(chi.URLParam(r, "sourceID"))
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	if err := h.service.Delete(r.Context(), userID, sourceID); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Types handles GET /api/v1/financial-sources/types
func (h *SourceHandler) Types(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(h.logger, w, http.StatusOK, types.Success(map[string]interface{}{
		"types": h.service.Types(),
	}))
}
