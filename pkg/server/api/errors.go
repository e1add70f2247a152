package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
)

// ErrorResponse represents a standard JSON error response.
// Used consistently across all API endpoints for error responses.
//
// Example:
//
//	{
//	  "error": "Internal Server Error",
//	  "message": "failed to encode response"
//	}
type ErrorResponse struct {
	Error   string `json:"error"`             // Short error type (e.g., "Internal Server Error")
	Message string `json:"message,omitempty"` // Detailed error message (optional)
}

// WriteError writes a standard JSON error response to the client.
// The HTTP status code is derived from the error:
//   - context.DeadlineExceeded → 504 Gateway Timeout
//   - All other errors → 500 Internal Server Error
//
// It also logs the error with structured logging.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := http.StatusInternalServerError
	errorType := "Internal Server Error"

	if errors.Is(err, context.DeadlineExceeded) {
		statusCode = http.StatusGatewayTimeout
		errorType = "Gateway Timeout"
	}

	log.Error().
		Str("component", "api").
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", statusCode).
		Err(err).
		Msg("Request failed")

	WriteJSONError(w, statusCode, errorType, err.Error())
}

// WriteJSONError writes a custom JSON error response with a specific status code.
//
// Example:
//
//	WriteJSONError(w, http.StatusInternalServerError, "Internal Server Error", "scan failed")
func WriteJSONError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error:   errorType,
		Message: message,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().
			Str("component", "api").
			Err(err).
			Msg("Failed to encode error response")
	}
}

// WriteJSON serializes data and writes it with the given status code.
//
// The body is fully encoded before any header is written, so an encoding
// failure still yields a clean 500 JSON error instead of a truncated 200.
// The body is compact and has no trailing newline.
func WriteJSON(w http.ResponseWriter, r *http.Request, statusCode int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		log.Error().
			Str("component", "api").
			Str("path", r.URL.Path).
			Err(err).
			Msg("Failed to encode JSON response")
		WriteJSONError(w, http.StatusInternalServerError, "Internal Server Error", "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		log.Debug().
			Str("component", "api").
			Err(err).
			Msg("Failed to write response body")
	}
}
