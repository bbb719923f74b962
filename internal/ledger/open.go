package ledger

import (
	"context"
	"fmt"

	"github.com/momnetk/giftbattle/internal/domain"
	"github.com/momnetk/giftbattle/internal/logger"
	"github.com/momnetk/giftbattle/internal/metrics"
	"github.com/momnetk/giftbattle/internal/repository"
)

// OpenCase opens a case for the user identified by telegramID.
// Checks run against a plain read first so callers get precise errors;
// the debit inside the transaction re-checks funds against the locked
// user row, so two concurrent opens can never both pass on a stale
// balance. Either all four writes commit or none do.
func (s *service) OpenCase(ctx context.Context, telegramID, caseID int64) (*OpenResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgOpenCaseCalled, "telegram_id", telegramID, "case_id", caseID)

	user, err := s.repo.GetUserByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	c, err := s.catalog.GetCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if !c.IsActive {
		return nil, fmt.Errorf("%w: case %d", domain.ErrCaseInactive, caseID)
	}

	contents, err := s.catalog.ActiveContents(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if len(contents) == 0 {
		return nil, fmt.Errorf("%w: case %d", domain.ErrEmptyPool, caseID)
	}

	if user.StarsBalance < c.PriceStars {
		return nil, fmt.Errorf("%w: balance %d, price %d", domain.ErrInsufficientFunds, user.StarsBalance, c.PriceStars)
	}

	weights := make([]float64, len(contents))
	for i, content := range contents {
		weights[i] = content.Weight
	}
	idx, err := s.selector.Select(weights)
	if err != nil {
		return nil, fmt.Errorf("failed to draw item: %w", err)
	}
	drawn := contents[idx].Item

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	newBalance, err := tx.DebitForOpening(ctx, user.ID, c.PriceStars)
	if err != nil {
		return nil, err
	}

	entryID, err := tx.InsertInventoryEntry(ctx, user.ID, drawn.ID, c.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.InsertOpeningRecord(ctx, user.ID, c.ID, drawn.ID, c.PriceStars); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Info(LogMsgCaseOpened,
		"telegram_id", telegramID,
		"case_id", caseID,
		"item_id", drawn.ID,
		"rarity", drawn.Rarity,
		"stars_spent", c.PriceStars,
		"new_balance", newBalance)

	metrics.CasesOpened.WithLabelValues(c.Name, string(drawn.Rarity)).Inc()
	metrics.StarsSpent.Add(float64(c.PriceStars))

	return &OpenResult{
		Item:       drawn,
		EntryID:    entryID,
		NewBalance: newBalance,
	}, nil
}
