package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/momnetk/giftbattle/internal/domain"
	"github.com/momnetk/giftbattle/internal/logger"
	"github.com/momnetk/giftbattle/internal/repository"
)

// DefaultListingTTL is how long the public case listing may be served from cache
const DefaultListingTTL = 30 * time.Second

// Service defines read-only access to the case catalog
type Service interface {
	// ListCases returns all active cases with their active contents.
	ListCases(ctx context.Context) ([]domain.CaseWithContents, error)

	// GetCase returns a case by ID, or domain.ErrCaseNotFound.
	GetCase(ctx context.Context, caseID int64) (*domain.Case, error)

	// ActiveContents returns the eligible draw pool for a case. Empty
	// means the case cannot be opened; callers must not treat that as
	// a retryable error.
	ActiveContents(ctx context.Context, caseID int64) ([]domain.CaseContent, error)
}

type service struct {
	repo  repository.Catalog
	cache *listingCache
}

// NewService creates a new catalog service
func NewService(repo repository.Catalog) Service {
	return &service{
		repo:  repo,
		cache: newListingCache(DefaultListingTTL),
	}
}

func (s *service) ListCases(ctx context.Context) ([]domain.CaseWithContents, error) {
	if cases, ok := s.cache.Get(); ok {
		return cases, nil
	}

	cases, err := s.repo.ListActiveCases(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}

	s.cache.Set(cases)
	return cases, nil
}

func (s *service) GetCase(ctx context.Context, caseID int64) (*domain.Case, error) {
	return s.repo.GetCase(ctx, caseID)
}

func (s *service) ActiveContents(ctx context.Context, caseID int64) ([]domain.CaseContent, error) {
	contents, err := s.repo.ActiveContents(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load case contents: %w", err)
	}

	// Non-positive weights are a content-data defect; drop them here so
	// the selector never sees them.
	eligible := contents[:0]
	for _, c := range contents {
		if c.Weight <= 0 {
			logger.FromContext(ctx).Warn("Dropping case content with non-positive weight",
				"case_id", caseID, "item_id", c.Item.ID, "weight", c.Weight)
			continue
		}
		eligible = append(eligible, c)
	}
	return eligible, nil
}
