package handler

import (
	"net/http"

	"github.com/momnetk/giftbattle/internal/auth"
	"github.com/momnetk/giftbattle/internal/ledger"
	"github.com/momnetk/giftbattle/internal/logger"
)

type AuthUserRequest struct {
	InitData string `json:"init_data" validate:"required"`
}

// HandleAuthUser verifies the caller's init data and returns their
// profile, creating the account on first contact.
func HandleAuthUser(verifier *auth.Verifier, svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AuthUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "auth user"); err != nil {
			return
		}

		tgUser := authenticateInitData(w, r, verifier, req.InitData)
		if tgUser == nil {
			return
		}

		u, err := svc.GetOrCreateUser(r.Context(), tgUser)
		if err != nil {
			log.Error("Failed to resolve user", "error", err, "telegram_id", tgUser.ID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, u)
	}
}
