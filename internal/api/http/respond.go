package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"library-of-things-backend/internal/domain"
	"library-of-things-backend/internal/logger"
	"library-of-things-backend/internal/service"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError maps the service error taxonomy to HTTP once, for every
// handler. Anything unrecognized is an internal failure and is not
// detailed to the client.
func writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	var te *domain.InvalidTransitionError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Validation failed", Message: ve.Message})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Authentication failed", Message: "Invalid email or password"})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Not found", Message: "Resource not found"})
	case errors.Is(err, domain.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "Forbidden", Message: err.Error()})
	case errors.As(err, &te):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "Invalid state transition", Message: te.Error()})
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "Conflict", Message: err.Error()})
	default:
		logger.Error("Unhandled error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error", Message: "An unexpected error occurred"})
	}
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Validation failed", Message: message})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return false
	}
	return true
}
