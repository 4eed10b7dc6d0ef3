// internal/api/handler/respond.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"networth-tracker/internal/api/types"
	"networth-tracker/internal/auth"
	"networth-tracker/internal/util"
)

// DefaultTimeout bounds request handling at the router level.
const DefaultTimeout = 60 * time.Second

// respondWithJSON writes payload as a JSON response.
func respondWithJSON(logger *slog.Logger, w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// principal extracts the authenticated user id placed in the context by
// the auth middleware, answering 401 itself when it is absent.
func principal(logger *slog.Logger, w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respondWithJSON(logger, w, http.StatusUnauthorized,
			types.Envelope{Status: types.StatusFail, Message: "You must be logged in"})
	}
	return userID, ok
}

// respondWithError maps a service error to an HTTP status and envelope.
// Ownership failures surface as plain not-found so existence is never
// revealed to non-owners.
func respondWithError(logger *slog.Logger, w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	status := types.StatusError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		status = types.StatusFail
		message = err.Error()
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		status = types.StatusFail
		message = "Resource not found"
	case util.IsError(err, util.ErrConflict):
		statusCode = http.StatusConflict
		status = types.StatusFail
		message = "Duplicate entry"
	default:
		logger.Error("Unhandled service error", "error", err)
	}

	respondWithJSON(logger, w, statusCode, types.Envelope{Status: status, Message: message})
}
