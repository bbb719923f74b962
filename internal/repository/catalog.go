package repository

import (
	"context"

	"github.com/momnetk/giftbattle/internal/domain"
)

// Catalog defines read-only access to cases, items and case contents.
// The catalog is populated by an external content-management path;
// nothing in this interface mutates it.
type Catalog interface {
	// GetCase returns a case by ID, or domain.ErrCaseNotFound.
	GetCase(ctx context.Context, caseID int64) (*domain.Case, error)

	// ActiveContents returns the draw pool where both the association
	// and the referenced item are active. Empty slice, not an error,
	// when the case has no eligible contents.
	ActiveContents(ctx context.Context, caseID int64) ([]domain.CaseContent, error)

	// ListActiveCases returns all active cases with their active contents.
	ListActiveCases(ctx context.Context) ([]domain.CaseWithContents, error)

	// GetItem returns an item by ID, or domain.ErrItemNotFound.
	GetItem(ctx context.Context, itemID int64) (*domain.Item, error)
}
