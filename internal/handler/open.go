package handler

import (
	"net/http"

	"github.com/momnetk/giftbattle/internal/auth"
	"github.com/momnetk/giftbattle/internal/ledger"
	"github.com/momnetk/giftbattle/internal/logger"
)

type OpenCaseRequest struct {
	InitData string `json:"init_data" validate:"required"`
	CaseID   int64  `json:"case_id" validate:"required,min=1"`
}

// HandleOpenCase debits the case price, draws an item and returns it
// with the caller's new balance.
func HandleOpenCase(verifier *auth.Verifier, svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req OpenCaseRequest
		if err := DecodeAndValidateRequest(r, w, &req, "open case"); err != nil {
			return
		}

		tgUser := authenticateInitData(w, r, verifier, req.InitData)
		if tgUser == nil {
			return
		}

		result, err := svc.OpenCase(r.Context(), tgUser.ID, req.CaseID)
		if err != nil {
			log.Error("Failed to open case", "error", err, "telegram_id", tgUser.ID, "case_id", req.CaseID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
