package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/momnetk/giftbattle/internal/domain"
)

// dbtx is the query surface shared by *pgxpool.Pool and pgx.Tx, so scan
// helpers work both inside and outside a transaction.
type dbtx interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const userColumns = "id, telegram_id, username, first_name, last_name, stars_balance, total_spent_stars, total_cases_opened, created_at, updated_at"

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.TelegramID,
		&u.Username,
		&u.FirstName,
		&u.LastName,
		&u.StarsBalance,
		&u.TotalSpentStars,
		&u.TotalCasesOpened,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

const itemColumns = "id, name, description, rarity, price, image_url, is_active, created_at"

func scanItem(row pgx.Row) (*domain.Item, error) {
	var it domain.Item
	err := row.Scan(
		&it.ID,
		&it.Name,
		&it.Description,
		&it.Rarity,
		&it.Price,
		&it.ImageURL,
		&it.IsActive,
		&it.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func getItemByID(ctx context.Context, q dbtx, itemID int64) (*domain.Item, error) {
	row := q.QueryRow(ctx, "SELECT "+itemColumns+" FROM nfts WHERE id = $1", itemID)
	item, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrItemNotFound
	}
	return item, err
}
