package handler

import (
	"net/http"

	"github.com/momnetk/giftbattle/internal/auth"
	"github.com/momnetk/giftbattle/internal/ledger"
	"github.com/momnetk/giftbattle/internal/logger"
)

type SellItemRequest struct {
	InitData string `json:"init_data" validate:"required"`
	EntryID  int64  `json:"entry_id" validate:"required,min=1"`
}

// HandleSellItem marks an owned inventory entry sold and credits the
// buy-back proceeds.
func HandleSellItem(verifier *auth.Verifier, svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SellItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "sell item"); err != nil {
			return
		}

		tgUser := authenticateInitData(w, r, verifier, req.InitData)
		if tgUser == nil {
			return
		}

		result, err := svc.SellItem(r.Context(), tgUser.ID, req.EntryID)
		if err != nil {
			log.Error("Failed to sell item", "error", err, "telegram_id", tgUser.ID, "entry_id", req.EntryID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
