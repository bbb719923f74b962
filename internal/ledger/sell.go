package ledger

import (
	"context"
	"fmt"

	"github.com/momnetk/giftbattle/internal/domain"
	"github.com/momnetk/giftbattle/internal/logger"
	"github.com/momnetk/giftbattle/internal/metrics"
	"github.com/momnetk/giftbattle/internal/repository"
)

// SellItem liquidates an owned inventory entry at the buy-back ratio.
// The entry row is locked for the duration of the read-check-write
// sequence, so of two concurrent sells on the same entry exactly one
// succeeds and the other observes the sold flag.
func (s *service) SellItem(ctx context.Context, telegramID, entryID int64) (*SellResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellItemCalled, "telegram_id", telegramID, "entry_id", entryID)

	user, err := s.repo.GetUserByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	entry, err := tx.GetEntryForUpdate(ctx, entryID)
	if err != nil {
		return nil, err
	}
	// Entries owned by someone else look absent, not forbidden
	if entry.UserID != user.ID {
		return nil, fmt.Errorf("%w: entry %d", domain.ErrEntryNotFound, entryID)
	}
	if entry.IsSold {
		return nil, fmt.Errorf("%w: entry %d", domain.ErrAlreadySold, entryID)
	}

	item, err := tx.GetItem(ctx, entry.ItemID)
	if err != nil {
		return nil, err
	}

	// Proceeds are floored; the spread below face value is the house edge
	proceeds := int64(float64(item.Price) * s.sellRatio)

	if err := tx.MarkEntrySold(ctx, entry.ID, proceeds); err != nil {
		return nil, err
	}

	newBalance, err := tx.CreditUser(ctx, user.ID, proceeds)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Info(LogMsgItemSold,
		"telegram_id", telegramID,
		"entry_id", entryID,
		"item_id", item.ID,
		"sold_price", proceeds,
		"new_balance", newBalance)

	metrics.ItemsSold.WithLabelValues(string(item.Rarity)).Inc()
	metrics.StarsEarned.Add(float64(proceeds))

	return &SellResult{
		SoldPrice:  proceeds,
		NewBalance: newBalance,
	}, nil
}
