package repository

import (
	"context"

	"github.com/momnetk/giftbattle/internal/domain"
)

// Ledger defines persistence for users, inventory and opening history.
// The ledger service is the sole writer of balances and inventory;
// all mutations happen inside a LedgerTx.
type Ledger interface {
	// GetUserByTelegramID returns a user, or domain.ErrUserNotFound.
	GetUserByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)

	// UpsertUser creates the user with the given starting balance on
	// first contact, or refreshes display names on an existing row.
	// Idempotent under concurrent first contacts.
	UpsertUser(ctx context.Context, tg *domain.TelegramUser, startingBalance int64) (*domain.User, error)

	// ListInventory returns unsold entries joined with their items,
	// newest first.
	ListInventory(ctx context.Context, userID int64) ([]domain.InventoryItem, error)

	// ListHistory returns opening records joined with case and item
	// names, newest first, capped at limit.
	ListHistory(ctx context.Context, userID int64, limit int) ([]domain.HistoryEntry, error)

	BeginTx(ctx context.Context) (LedgerTx, error)
}

// LedgerTx is the transactional scope for ledger mutations.
// Row locks acquired here serialize concurrent opens and sells per user.
type LedgerTx interface {
	Tx

	// DebitForOpening atomically debits the case price, bumps the spend
	// and open counters, and returns the new balance. Returns
	// domain.ErrInsufficientFunds when the locked balance cannot cover
	// the price, leaving the row untouched.
	DebitForOpening(ctx context.Context, userID, price int64) (int64, error)

	// InsertInventoryEntry records ownership of a drawn item.
	InsertInventoryEntry(ctx context.Context, userID, itemID, caseID int64) (int64, error)

	// InsertOpeningRecord appends the audit row for a successful open.
	InsertOpeningRecord(ctx context.Context, userID, caseID, itemID, starsSpent int64) error

	// GetEntryForUpdate locks an inventory entry row, or returns
	// domain.ErrEntryNotFound.
	GetEntryForUpdate(ctx context.Context, entryID int64) (*domain.InventoryEntry, error)

	// GetItem reads an item inside the transaction.
	GetItem(ctx context.Context, itemID int64) (*domain.Item, error)

	// MarkEntrySold transitions the entry to its terminal sold state
	// with the realized price.
	MarkEntrySold(ctx context.Context, entryID, soldPrice int64) error

	// CreditUser adds proceeds to the user's balance and returns the
	// new balance.
	CreditUser(ctx context.Context, userID, amount int64) (int64, error)
}
