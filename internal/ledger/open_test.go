package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/momnetk/giftbattle/internal/domain"
	"github.com/momnetk/giftbattle/internal/draw"
)

const (
	testTelegramID = int64(99281932)
	testUserID     = int64(1)
	testCaseID     = int64(5)
)

func testOpenUser(balance int64) *domain.User {
	now := time.Now()
	return &domain.User{
		ID:           testUserID,
		TelegramID:   testTelegramID,
		Username:     "rogue",
		StarsBalance: balance,
		CreatedAt:    now.Add(-time.Hour),
		UpdatedAt:    now,
	}
}

func testCase(active bool) *domain.Case {
	return &domain.Case{ID: testCaseID, Name: "Starter Case", PriceStars: 100, IsActive: active}
}

func testContents() []domain.CaseContent {
	return []domain.CaseContent{
		{Item: domain.Item{ID: 10, Name: "Teddy Bear", Rarity: domain.RarityCommon, Price: 50}, Weight: 60},
		{Item: domain.Item{ID: 11, Name: "Gold Star", Rarity: domain.RarityRare, Price: 200}, Weight: 10},
	}
}

// firstItemSelector always draws index 0
func firstItemSelector() *draw.Selector {
	return draw.NewSelectorWithSource(func() float64 { return 0 })
}

func newOpenService(repo *MockLedger, cat *MockCatalog) Service {
	return NewService(repo, cat, firstItemSelector(), 0.7, 1000)
}

func TestOpenCase_Success(t *testing.T) {
	repo := new(MockLedger)
	cat := new(MockCatalog)
	tx := new(MockLedgerTx)

	repo.On("GetUserByTelegramID", mock.Anything, testTelegramID).Return(testOpenUser(500), nil)
	cat.On("GetCase", mock.Anything, testCaseID).Return(testCase(true), nil)
	cat.On("ActiveContents", mock.Anything, testCaseID).Return(testContents(), nil)
	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("DebitForOpening", mock.Anything, testUserID, int64(100)).Return(int64(400), nil)
	tx.On("InsertInventoryEntry", mock.Anything, testUserID, int64(10), testCaseID).Return(int64(77), nil)
	tx.On("InsertOpeningRecord", mock.Anything, testUserID, testCaseID, int64(10), int64(100)).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(errors.New("tx is closed"))

	svc := newOpenService(repo, cat)

	result, err := svc.OpenCase(context.Background(), testTelegramID, testCaseID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), result.Item.ID)
	assert.Equal(t, int64(77), result.EntryID)
	assert.Equal(t, int64(400), result.NewBalance)

	repo.AssertExpectations(t)
	cat.AssertExpectations(t)
	tx.AssertExpectations(t)
}

func TestOpenCase_UserNotFound(t *testing.T) {
	repo := new(MockLedger)
	cat := new(MockCatalog)
	repo.On("GetUserByTelegramID", mock.Anything, testTelegramID).Return(nil, domain.ErrUserNotFound)

	svc := newOpenService(repo, cat)

	_, err := svc.OpenCase(context.Background(), testTelegramID, testCaseID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestOpenCase_CaseNotFound(t *testing.T) {
	repo := new(MockLedger)
	cat := new(MockCatalog)
	repo.On("GetUserByTelegramID", mock.Anything, testTelegramID).Return(testOpenUser(500), nil)
	cat.On("GetCase", mock.Anything, testCaseID).Return(nil, domain.ErrCaseNotFound)

	svc := newOpenService(repo, cat)

	_, err := svc.OpenCase(context.Background(), testTelegramID, testCaseID)
	assert.ErrorIs(t, err, domain.ErrCaseNotFound)
}

func TestOpenCase_InactiveCase(t *testing.T) {
	repo := new(MockLedger)
	cat := new(MockCatalog)
	repo.On("GetUserByTelegramID", mock.Anything, testTelegramID).Return(testOpenUser(500), nil)
	cat.On("GetCase", mock.Anything, testCaseID).Return(testCase(false), nil)

	svc := newOpenService(repo, cat)

	_, err := svc.OpenCase(context.Background(), testTelegramID, testCaseID)
	assert.ErrorIs(t, err, domain.ErrCaseInactive)
}

func TestOpenCase_EmptyPool(t *testing.T) {
	repo := new(MockLedger)
	cat := new(MockCatalog)
	repo.On("GetUserByTelegramID", mock.Anything, testTelegramID).Return(testOpenUser(500), nil)
	cat.On("GetCase", mock.Anything, testCaseID).Return(testCase(true), nil)
	cat.On("ActiveContents", mock.Anything, testCaseID).Return([]domain.CaseContent{}, nil)

	svc := newOpenService(repo, cat)

	_, err := svc.OpenCase(context.Background(), testTelegramID, testCaseID)
	assert.ErrorIs(t, err, domain.ErrEmptyPool)
}

func TestOpenCase_InsufficientFunds(t *testing.T) {
	repo := new(MockLedger)
	cat := new(MockCatalog)
	repo.On("GetUserByTelegramID", mock.Anything, testTelegramID).Return(testOpenUser(99), nil)
	cat.On("GetCase", mock.Anything, testCaseID).Return(testCase(true), nil)
	cat.On("ActiveContents", mock.Anything, testCaseID).Return(testContents(), nil)

	svc := newOpenService(repo, cat)

	_, err := svc.OpenCase(context.Background(), testTelegramID, testCaseID)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	repo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestOpenCase_DebitLosesRace(t *testing.T) {
	// The precheck passed on a stale balance; the conditional debit
	// inside the transaction must still reject the open.
	repo := new(MockLedger)
	cat := new(MockCatalog)
	tx := new(MockLedgerTx)

	repo.On("GetUserByTelegramID", mock.Anything, testTelegramID).Return(testOpenUser(500), nil)
	cat.On("GetCase", mock.Anything, testCaseID).Return(testCase(true), nil)
	cat.On("ActiveContents", mock.Anything, testCaseID).Return(testContents(), nil)
	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("DebitForOpening", mock.Anything, testUserID, int64(100)).Return(int64(0), domain.ErrInsufficientFunds)
	tx.On("Rollback", mock.Anything).Return(nil)

	svc := newOpenService(repo, cat)

	_, err := svc.OpenCase(context.Background(), testTelegramID, testCaseID)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
	tx.AssertCalled(t, "Rollback", mock.Anything)
}

func TestOpenCase_RollbackOnInsertFailure(t *testing.T) {
	repo := new(MockLedger)
	cat := new(MockCatalog)
	tx := new(MockLedgerTx)

	repo.On("GetUserByTelegramID", mock.Anything, testTelegramID).Return(testOpenUser(500), nil)
	cat.On("GetCase", mock.Anything, testCaseID).Return(testCase(true), nil)
	cat.On("ActiveContents", mock.Anything, testCaseID).Return(testContents(), nil)
	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("DebitForOpening", mock.Anything, testUserID, int64(100)).Return(int64(400), nil)
	tx.On("InsertInventoryEntry", mock.Anything, testUserID, int64(10), testCaseID).Return(int64(0), errors.New("insert failed"))
	tx.On("Rollback", mock.Anything).Return(nil)

	svc := newOpenService(repo, cat)

	_, err := svc.OpenCase(context.Background(), testTelegramID, testCaseID)
	require.Error(t, err)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
	tx.AssertCalled(t, "Rollback", mock.Anything)
}

func TestOpenCase_WeightedDrawPicksSecondItem(t *testing.T) {
	repo := new(MockLedger)
	cat := new(MockCatalog)
	tx := new(MockLedgerTx)

	repo.On("GetUserByTelegramID", mock.Anything, testTelegramID).Return(testOpenUser(500), nil)
	cat.On("GetCase", mock.Anything, testCaseID).Return(testCase(true), nil)
	cat.On("ActiveContents", mock.Anything, testCaseID).Return(testContents(), nil)
	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("DebitForOpening", mock.Anything, testUserID, int64(100)).Return(int64(400), nil)
	tx.On("InsertInventoryEntry", mock.Anything, testUserID, int64(11), testCaseID).Return(int64(78), nil)
	tx.On("InsertOpeningRecord", mock.Anything, testUserID, testCaseID, int64(11), int64(100)).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(errors.New("tx is closed"))

	// Weights are 60:10, so a point past 6/7 of the range lands on the rare item.
	selector := draw.NewSelectorWithSource(func() float64 { return 0.99 })
	svc := NewService(repo, cat, selector, 0.7, 1000)

	result, err := svc.OpenCase(context.Background(), testTelegramID, testCaseID)
	require.NoError(t, err)
	assert.Equal(t, int64(11), result.Item.ID)
}
