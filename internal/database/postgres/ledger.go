package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/momnetk/giftbattle/internal/domain"
	"github.com/momnetk/giftbattle/internal/repository"
)

// LedgerRepository implements the ledger repository for PostgreSQL
type LedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// LedgerTx implements repository.LedgerTx
type LedgerTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *LedgerRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &LedgerTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *LedgerTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *LedgerTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetUserByTelegramID finds a user by their Telegram ID
func (r *LedgerRepository) GetUserByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	row := r.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE telegram_id = $1", telegramID)
	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

const upsertUserQuery = `
INSERT INTO users (telegram_id, username, first_name, last_name, stars_balance)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (telegram_id) DO UPDATE SET
    username = EXCLUDED.username,
    first_name = EXCLUDED.first_name,
    last_name = EXCLUDED.last_name,
    updated_at = NOW()
RETURNING ` + userColumns

// UpsertUser creates a user with the starting balance on first contact,
// or refreshes display names on an existing row. The unique constraint
// on telegram_id makes concurrent first contacts create exactly one row.
func (r *LedgerRepository) UpsertUser(ctx context.Context, tg *domain.TelegramUser, startingBalance int64) (*domain.User, error) {
	row := r.db.QueryRow(ctx, upsertUserQuery, tg.ID, tg.Username, tg.FirstName, tg.LastName, startingBalance)
	user, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	return user, nil
}

const listInventoryQuery = `
SELECT un.id, un.user_id, un.nft_id, un.is_sold, un.sold_price, un.opened_from_case_id, un.created_at,
       n.id, n.name, n.description, n.rarity, n.price, n.image_url, n.is_active, n.created_at
FROM user_nfts un
JOIN nfts n ON n.id = un.nft_id
WHERE un.user_id = $1 AND NOT un.is_sold
ORDER BY un.created_at DESC, un.id DESC`

// ListInventory retrieves unsold entries joined with their items, newest first
func (r *LedgerRepository) ListInventory(ctx context.Context, userID int64) ([]domain.InventoryItem, error) {
	rows, err := r.db.Query(ctx, listInventoryQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	items := []domain.InventoryItem{}
	for rows.Next() {
		var it domain.InventoryItem
		err := rows.Scan(
			&it.Entry.ID,
			&it.Entry.UserID,
			&it.Entry.ItemID,
			&it.Entry.IsSold,
			&it.Entry.SoldPrice,
			&it.Entry.OpenedFromCaseID,
			&it.Entry.CreatedAt,
			&it.Item.ID,
			&it.Item.Name,
			&it.Item.Description,
			&it.Item.Rarity,
			&it.Item.Price,
			&it.Item.ImageURL,
			&it.Item.IsActive,
			&it.Item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory entry: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}
	return items, nil
}

const listHistoryQuery = `
SELECT oh.id, oh.user_id, oh.case_id, oh.nft_id, oh.stars_spent, oh.created_at,
       c.name, n.name, n.rarity
FROM opening_history oh
JOIN cases c ON c.id = oh.case_id
JOIN nfts n ON n.id = oh.nft_id
WHERE oh.user_id = $1
ORDER BY oh.created_at DESC, oh.id DESC
LIMIT $2`

// ListHistory retrieves opening records joined with case and item names
func (r *LedgerRepository) ListHistory(ctx context.Context, userID int64, limit int) ([]domain.HistoryEntry, error) {
	rows, err := r.db.Query(ctx, listHistoryQuery, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	entries := []domain.HistoryEntry{}
	for rows.Next() {
		var e domain.HistoryEntry
		err := rows.Scan(
			&e.Record.ID,
			&e.Record.UserID,
			&e.Record.CaseID,
			&e.Record.ItemID,
			&e.Record.StarsSpent,
			&e.Record.CreatedAt,
			&e.CaseName,
			&e.ItemName,
			&e.Rarity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return entries, nil
}

const debitForOpeningQuery = `
UPDATE users SET
    stars_balance = stars_balance - $2,
    total_spent_stars = total_spent_stars + $2,
    total_cases_opened = total_cases_opened + 1,
    updated_at = NOW()
WHERE id = $1 AND stars_balance >= $2
RETURNING stars_balance`

// DebitForOpening debits the case price and bumps the counters. The
// conditional update takes the row lock and re-checks funds against the
// locked balance, so concurrent opens serialize here: the loser of the
// race sees the post-debit balance and fails the condition.
func (t *LedgerTx) DebitForOpening(ctx context.Context, userID, price int64) (int64, error) {
	var balance int64
	err := t.tx.QueryRow(ctx, debitForOpeningQuery, userID, price).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrInsufficientFunds
	}
	if err != nil {
		return 0, fmt.Errorf("failed to debit balance: %w", err)
	}
	return balance, nil
}

// InsertInventoryEntry records ownership of a drawn item
func (t *LedgerTx) InsertInventoryEntry(ctx context.Context, userID, itemID, caseID int64) (int64, error) {
	var id int64
	err := t.tx.QueryRow(ctx,
		"INSERT INTO user_nfts (user_id, nft_id, opened_from_case_id) VALUES ($1, $2, $3) RETURNING id",
		userID, itemID, caseID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert inventory entry: %w", err)
	}
	return id, nil
}

// InsertOpeningRecord appends the audit row for a successful open
func (t *LedgerTx) InsertOpeningRecord(ctx context.Context, userID, caseID, itemID, starsSpent int64) error {
	_, err := t.tx.Exec(ctx,
		"INSERT INTO opening_history (user_id, case_id, nft_id, stars_spent) VALUES ($1, $2, $3, $4)",
		userID, caseID, itemID, starsSpent,
	)
	if err != nil {
		return fmt.Errorf("failed to insert opening record: %w", err)
	}
	return nil
}

const entryForUpdateQuery = `
SELECT id, user_id, nft_id, is_sold, sold_price, opened_from_case_id, created_at
FROM user_nfts WHERE id = $1 FOR UPDATE`

// GetEntryForUpdate locks an inventory entry row for this transaction
func (t *LedgerTx) GetEntryForUpdate(ctx context.Context, entryID int64) (*domain.InventoryEntry, error) {
	var e domain.InventoryEntry
	err := t.tx.QueryRow(ctx, entryForUpdateQuery, entryID).Scan(
		&e.ID,
		&e.UserID,
		&e.ItemID,
		&e.IsSold,
		&e.SoldPrice,
		&e.OpenedFromCaseID,
		&e.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory entry: %w", err)
	}
	return &e, nil
}

// GetItem reads an item inside the transaction
func (t *LedgerTx) GetItem(ctx context.Context, itemID int64) (*domain.Item, error) {
	return getItemByID(ctx, t.tx, itemID)
}

// MarkEntrySold transitions the entry to its terminal sold state
func (t *LedgerTx) MarkEntrySold(ctx context.Context, entryID, soldPrice int64) error {
	tag, err := t.tx.Exec(ctx,
		"UPDATE user_nfts SET is_sold = TRUE, sold_price = $2 WHERE id = $1 AND NOT is_sold",
		entryID, soldPrice,
	)
	if err != nil {
		return fmt.Errorf("failed to mark entry sold: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadySold
	}
	return nil
}

// CreditUser adds proceeds to the user's balance
func (t *LedgerTx) CreditUser(ctx context.Context, userID, amount int64) (int64, error) {
	var balance int64
	err := t.tx.QueryRow(ctx,
		"UPDATE users SET stars_balance = stars_balance + $2, updated_at = NOW() WHERE id = $1 RETURNING stars_balance",
		userID, amount,
	).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrUserNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to credit balance: %w", err)
	}
	return balance, nil
}
