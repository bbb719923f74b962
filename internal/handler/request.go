package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/momnetk/giftbattle/internal/auth"
	"github.com/momnetk/giftbattle/internal/domain"
	"github.com/momnetk/giftbattle/internal/logger"
	"github.com/momnetk/giftbattle/internal/metrics"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it against
// the struct's tags and writes the error response on failure. A non-nil
// return means the response has already been written and the handler should
// stop.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// authenticateInitData verifies the signed init data and extracts the caller
// identity. On failure it records the auth metric, writes the 401 response
// and returns nil; identity is trusted only when the signature checks out.
func authenticateInitData(w http.ResponseWriter, r *http.Request, verifier *auth.Verifier, initData string) *domain.TelegramUser {
	log := logger.FromContext(r.Context())

	if !verifier.Verify(initData) {
		log.Warn("Init data signature verification failed")
		metrics.AuthFailures.Inc()
		respondError(w, http.StatusUnauthorized, ErrMsgAuthFailedError)
		return nil
	}

	tgUser, err := auth.ParseUser(initData)
	if err != nil {
		log.Warn("Failed to parse user from init data", "error", err)
		metrics.AuthFailures.Inc()
		respondError(w, http.StatusUnauthorized, ErrMsgAuthFailedError)
		return nil
	}

	return tgUser
}
