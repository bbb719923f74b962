package handler

import (
	"net/http"

	"github.com/momnetk/giftbattle/internal/catalog"
	"github.com/momnetk/giftbattle/internal/domain"
	"github.com/momnetk/giftbattle/internal/logger"
)

// CasesResponse wraps the active catalog listing
type CasesResponse struct {
	Cases []domain.CaseWithContents `json:"cases"`
}

// HandleListCases returns the active case catalog with contents.
// The listing is public; no init data is required.
func HandleListCases(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		cases, err := svc.ListCases(r.Context())
		if err != nil {
			log.Error("Failed to list cases", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
			return
		}

		respondJSON(w, http.StatusOK, CasesResponse{Cases: cases})
	}
}
