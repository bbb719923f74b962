package handler

import (
	"fmt"
	"net/http"

	"github.com/momnetk/giftbattle/internal/auth"
	"github.com/momnetk/giftbattle/internal/domain"
	"github.com/momnetk/giftbattle/internal/ledger"
	"github.com/momnetk/giftbattle/internal/logger"
)

// InventoryResponse wraps the caller's unsold items
type InventoryResponse struct {
	Items []domain.InventoryItem `json:"items"`
}

// HandleGetInventory returns the caller's unsold inventory, newest first.
// Identity comes from the init_data query parameter.
func HandleGetInventory(verifier *auth.Verifier, svc ledger.Service) http.HandlerFunc {
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

		items, err := svc.ListInventory(r.Context(), tgUser.ID)
		if err != nil {
			log.Error("Failed to get inventory", "error", err, "telegram_id", tgUser.ID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, InventoryResponse{Items: items})
	}
}
