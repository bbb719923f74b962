package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/momnetk/giftbattle/internal/domain"
)

// CatalogRepository implements the read-only catalog repository for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const caseColumns = "id, name, description, price_stars, image_url, is_active, created_at"

func scanCase(row pgx.Row) (*domain.Case, error) {
	var c domain.Case
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.PriceStars,
		&c.ImageURL,
		&c.IsActive,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCase retrieves a case by ID
func (r *CatalogRepository) GetCase(ctx context.Context, caseID int64) (*domain.Case, error) {
	row := r.db.QueryRow(ctx, "SELECT "+caseColumns+" FROM cases WHERE id = $1", caseID)
	c, err := scanCase(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCaseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get case: %w", err)
	}
	return c, nil
}

// GetItem retrieves an item by ID
func (r *CatalogRepository) GetItem(ctx context.Context, itemID int64) (*domain.Item, error) {
	item, err := getItemByID(ctx, r.db, itemID)
	if err != nil && !errors.Is(err, domain.ErrItemNotFound) {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, err
}

const activeContentsQuery = `
SELECT n.id, n.name, n.description, n.rarity, n.price, n.image_url, n.is_active, n.created_at, cn.chance
FROM case_nfts cn
JOIN nfts n ON n.id = cn.nft_id
WHERE cn.case_id = $1 AND cn.is_active AND n.is_active
ORDER BY cn.id`

// ActiveContents retrieves the draw pool for a case: rows where both the
// association and the item are active. Empty result is not an error.
func (r *CatalogRepository) ActiveContents(ctx context.Context, caseID int64) ([]domain.CaseContent, error) {
	rows, err := r.db.Query(ctx, activeContentsQuery, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query case contents: %w", err)
	}
	defer rows.Close()

	contents := []domain.CaseContent{}
	for rows.Next() {
		var c domain.CaseContent
		err := rows.Scan(
			&c.Item.ID,
			&c.Item.Name,
			&c.Item.Description,
			&c.Item.Rarity,
			&c.Item.Price,
			&c.Item.ImageURL,
			&c.Item.IsActive,
			&c.Item.CreatedAt,
			&c.Weight,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan case content: %w", err)
		}
		contents = append(contents, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read case contents: %w", err)
	}
	return contents, nil
}

const listActiveContentsQuery = `
SELECT cn.case_id, n.id, n.name, n.description, n.rarity, n.price, n.image_url, n.is_active, n.created_at, cn.chance
FROM case_nfts cn
JOIN nfts n ON n.id = cn.nft_id
JOIN cases c ON c.id = cn.case_id
WHERE c.is_active AND cn.is_active AND n.is_active
ORDER BY cn.case_id, cn.id`

// ListActiveCases retrieves all active cases joined with their active contents
func (r *CatalogRepository) ListActiveCases(ctx context.Context) ([]domain.CaseWithContents, error) {
	rows, err := r.db.Query(ctx, "SELECT "+caseColumns+" FROM cases WHERE is_active ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query cases: %w", err)
	}
	defer rows.Close()

	var result []domain.CaseWithContents
	index := map[int64]int{}
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan case: %w", err)
		}
		index[c.ID] = len(result)
		result = append(result, domain.CaseWithContents{Case: *c, Contents: []domain.CaseContent{}})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cases: %w", err)
	}

	contentRows, err := r.db.Query(ctx, listActiveContentsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query case contents: %w", err)
	}
	defer contentRows.Close()

	for contentRows.Next() {
		var caseID int64
		var c domain.CaseContent
		err := contentRows.Scan(
			&caseID,
			&c.Item.ID,
			&c.Item.Name,
			&c.Item.Description,
			&c.Item.Rarity,
			&c.Item.Price,
			&c.Item.ImageURL,
			&c.Item.IsActive,
			&c.Item.CreatedAt,
			&c.Weight,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan case content: %w", err)
		}
		if i, ok := index[caseID]; ok {
			result[i].Contents = append(result[i].Contents, c)
		}
	}
	if err := contentRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read case contents: %w", err)
	}

	if result == nil {
		result = []domain.CaseWithContents{}
	}
	return result, nil
}
