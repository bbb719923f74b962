package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/momnetk/giftbattle/internal/domain"
)

// Standard response types for consistent API responses

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse represents a failed request validation with per-field details
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgAuthFailedError     = "Authentication failed. Please reopen the app."
	ErrMsgUserNotFoundError   = "User not found"
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgCaseNotFoundError   = "Case not found"
	ErrMsgEntryNotFoundError  = "Inventory item not found"
	ErrMsgCaseEmptyError      = "Case has no items right now. Try again later."
	ErrMsgNotEnoughStarsError = "Not enough stars"
	ErrMsgAlreadySoldError    = "Item has already been sold"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Internal error detail stays in the logs; clients get a stable status and message.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInitData):
		return http.StatusUnauthorized, ErrMsgAuthFailedError
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrCaseNotFound), errors.Is(err, domain.ErrCaseInactive):
		// Deactivated cases look absent rather than leaking their state
		return http.StatusNotFound, ErrMsgCaseNotFoundError
	case errors.Is(err, domain.ErrEntryNotFound):
		return http.StatusNotFound, ErrMsgEntryNotFoundError
	case errors.Is(err, domain.ErrEmptyPool):
		return http.StatusConflict, ErrMsgCaseEmptyError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughStarsError
	case errors.Is(err, domain.ErrAlreadySold):
		return http.StatusBadRequest, ErrMsgAlreadySoldError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
