package ledger

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/momnetk/giftbattle/internal/domain"
	"github.com/momnetk/giftbattle/internal/repository"
)

// MockLedger implements repository.Ledger for testing
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) GetUserByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockLedger) UpsertUser(ctx context.Context, tg *domain.TelegramUser, startingBalance int64) (*domain.User, error) {
	args := m.Called(ctx, tg, startingBalance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockLedger) ListInventory(ctx context.Context, userID int64) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockLedger) ListHistory(ctx context.Context, userID int64, limit int) ([]domain.HistoryEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryEntry), args.Error(1)
}

func (m *MockLedger) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.LedgerTx), args.Error(1)
}

// MockLedgerTx implements repository.LedgerTx for testing
type MockLedgerTx struct {
	mock.Mock
}

func (m *MockLedgerTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedgerTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedgerTx) DebitForOpening(ctx context.Context, userID, price int64) (int64, error) {
	args := m.Called(ctx, userID, price)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerTx) InsertInventoryEntry(ctx context.Context, userID, itemID, caseID int64) (int64, error) {
	args := m.Called(ctx, userID, itemID, caseID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerTx) InsertOpeningRecord(ctx context.Context, userID, caseID, itemID, starsSpent int64) error {
	args := m.Called(ctx, userID, caseID, itemID, starsSpent)
	return args.Error(0)
}

func (m *MockLedgerTx) GetEntryForUpdate(ctx context.Context, entryID int64) (*domain.InventoryEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryEntry), args.Error(1)
}

func (m *MockLedgerTx) GetItem(ctx context.Context, itemID int64) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockLedgerTx) MarkEntrySold(ctx context.Context, entryID, soldPrice int64) error {
	args := m.Called(ctx, entryID, soldPrice)
	return args.Error(0)
}

func (m *MockLedgerTx) CreditUser(ctx context.Context, userID, amount int64) (int64, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(int64), args.Error(1)
}

// MockCatalog implements catalog.Service for testing
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) ListCases(ctx context.Context) ([]domain.CaseWithContents, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CaseWithContents), args.Error(1)
}

func (m *MockCatalog) GetCase(ctx context.Context, caseID int64) (*domain.Case, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Case), args.Error(1)
}

func (m *MockCatalog) ActiveContents(ctx context.Context, caseID int64) ([]domain.CaseContent, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CaseContent), args.Error(1)
}
