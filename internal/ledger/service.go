package ledger

import (
	"context"
	"fmt"

	"github.com/momnetk/giftbattle/internal/catalog"
	"github.com/momnetk/giftbattle/internal/domain"
	"github.com/momnetk/giftbattle/internal/draw"
	"github.com/momnetk/giftbattle/internal/logger"
	"github.com/momnetk/giftbattle/internal/repository"
)

// OpenResult is the outcome of a successful case opening
type OpenResult struct {
	Item       domain.Item `json:"item"`
	EntryID    int64       `json:"entry_id"`
	NewBalance int64       `json:"new_balance"`
}

// SellResult is the outcome of a successful item sale
type SellResult struct {
	SoldPrice  int64 `json:"sold_price"`
	NewBalance int64 `json:"new_balance"`
}

// Service is the transactional ledger: the sole writer of balances,
// inventory entries and opening history.
type Service interface {
	// GetOrCreateUser resolves a verified Telegram identity to a user
	// row, creating it with the starting balance on first contact.
	GetOrCreateUser(ctx context.Context, tg *domain.TelegramUser) (*domain.User, error)

	// OpenCase atomically debits the case price, draws an item and
	// records ownership plus the audit row.
	OpenCase(ctx context.Context, telegramID, caseID int64) (*OpenResult, error)

	// SellItem atomically marks an owned entry sold and credits the
	// buy-back proceeds.
	SellItem(ctx context.Context, telegramID, entryID int64) (*SellResult, error)

	// ListInventory returns the caller's unsold items.
	ListInventory(ctx context.Context, telegramID int64) ([]domain.InventoryItem, error)

	// ListHistory returns the caller's most recent case openings.
	ListHistory(ctx context.Context, telegramID int64) ([]domain.HistoryEntry, error)
}

type service struct {
	repo            repository.Ledger
	catalog         catalog.Service
	selector        *draw.Selector
	sellRatio       float64
	startingBalance int64
}

// NewService creates a new ledger service
func NewService(repo repository.Ledger, catalogSvc catalog.Service, selector *draw.Selector, sellRatio float64, startingBalance int64) Service {
	return &service{
		repo:            repo,
		catalog:         catalogSvc,
		selector:        selector,
		sellRatio:       sellRatio,
		startingBalance: startingBalance,
	}
}

func (s *service) GetOrCreateUser(ctx context.Context, tg *domain.TelegramUser) (*domain.User, error) {
	user, err := s.repo.UpsertUser(ctx, tg, s.startingBalance)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create user: %w", err)
	}

	if user.CreatedAt.Equal(user.UpdatedAt) {
		logger.FromContext(ctx).Info(LogMsgUserCreated,
			"telegram_id", user.TelegramID, "starting_balance", user.StarsBalance)
	}
	return user, nil
}

func (s *service) ListInventory(ctx context.Context, telegramID int64) ([]domain.InventoryItem, error) {
	user, err := s.repo.GetUserByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListInventory(ctx, user.ID)
}

func (s *service) ListHistory(ctx context.Context, telegramID int64) ([]domain.HistoryEntry, error) {
	user, err := s.repo.GetUserByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListHistory(ctx, user.ID, HistoryLimit)
}
