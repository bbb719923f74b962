package handler

import (
	"fmt"
	"net/http"

	"github.com/momnetk/giftbattle/internal/auth"
	"github.com/momnetk/giftbattle/internal/domain"
	"github.com/momnetk/giftbattle/internal/ledger"
	"github.com/momnetk/giftbattle/internal/logger"
)

// HistoryResponse wraps the caller's most recent openings
type HistoryResponse struct {
	History []domain.HistoryEntry `json:"history"`
}

// HandleGetHistory returns the caller's most recent case openings.
// Identity comes from the init_data query parameter.
func HandleGetHistory(verifier *auth.Verifier, svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		initData := r.URL.Query().Get("init_data")
		if initData == "" {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, "init_data"))
			return
		}

		tgUser := authenticateInitData(w, r, verifier, initData)
		if tgUser == nil {
			return
		}

		history, err := svc.ListHistory(r.Context(), tgUser.ID)
		if err != nil {
			log.Error("Failed to get opening history", "error", err, "telegram_id", tgUser.ID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, HistoryResponse{History: history})
	}
}
