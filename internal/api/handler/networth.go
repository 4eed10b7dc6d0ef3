// internal/api/handler/networth.go
package handler

import (
	"log/slog"
	"net/http"

	"networth-tracker/internal/api/types"
	"networth-tracker/internal/service"
)

// NetWorthHandler handles HTTP requests for the net worth aggregator.
type NetWorthHandler struct {
	service service.NetWorthService
	logger  *slog.Logger
}

// NewNetWorthHandler creates a new NetWorthHandler.
func NewNetWorthHandler(svc service.NetWorthService, logger *slog.Logger) *NetWorthHandler {
	return &NetWorthHandler{
		service: svc,
		logger:  logger,
	}
}

// Current handles GET /api/v1/financial-sources/net-worth
func (h *NetWorthHandler) Current(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(h.logger, w, r)
	if !ok {
		return
	}

	netWorth, err := h.service.Current(r.Context(), userID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.Success(map[string]interface{}{
		"netWorth": netWorth,
	}))
}

// Historical handles GET /api/v1/financial-sources/historical-net-worth
// Query parameters: period (week|month|quarter|year, default month) and
// startDate (YYYY-MM-DD, overrides period).
func (h *NetWorthHandler) Historical(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(h.logger, w, r)
	if !ok {
		return
	}

	period := r.URL.Query().Get("period")
	startDate := r.URL.Query().Get("startDate")

	points, err := h.service.Historical(r.Context(), userID, period, startDate)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.Success(map[string]interface{}{
		"historicalData": points,
	}))
}
