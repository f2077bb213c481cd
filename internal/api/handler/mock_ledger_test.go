package handler

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/wishfund-ledger/internal/domain/money"
	"github.com/wishfund-ledger/internal/domain/wishlist"
	"github.com/wishfund-ledger/internal/ledger"
)

// MockLedgerService mocks ledger.Service for handler tests
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) ListWishlists(ctx context.Context) []ledger.ItemProgress {
	args := m.Called(ctx)
	return args.Get(0).([]ledger.ItemProgress)
}

func (m *MockLedgerService) AddWishlistItem(ctx context.Context, name string, price float64, image, description string) (*wishlist.Item, error) {
	args := m.Called(ctx, name, price, image, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wishlist.Item), args.Error(1)
}

func (m *MockLedgerService) UpdateWishlistItem(ctx context.Context, id uuid.UUID, name string, price float64, image, description string) (*wishlist.Item, error) {
	args := m.Called(ctx, id, name, price, image, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wishlist.Item), args.Error(1)
}

func (m *MockLedgerService) DeleteWishlistItem(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLedgerService) ListSavings(ctx context.Context, wishlistID uuid.UUID) []*wishlist.Saving {
	args := m.Called(ctx, wishlistID)
	return args.Get(0).([]*wishlist.Saving)
}

func (m *MockLedgerService) AddSaving(ctx context.Context, wishlistID uuid.UUID, amount float64, note string) (*wishlist.Saving, error) {
	args := m.Called(ctx, wishlistID, amount, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wishlist.Saving), args.Error(1)
}

func (m *MockLedgerService) DeleteSaving(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLedgerService) ListMoneyEntries(ctx context.Context, q ledger.HistoryQuery) []*money.Entry {
	args := m.Called(ctx, q)
	return args.Get(0).([]*money.Entry)
}

func (m *MockLedgerService) AddMoneyEntry(ctx context.Context, entryType money.EntryType, amount float64, category, note string, date time.Time) (*money.Entry, error) {
	args := m.Called(ctx, entryType, amount, category, note, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*money.Entry), args.Error(1)
}

func (m *MockLedgerService) UpdateMoneyEntry(ctx context.Context, id uuid.UUID, entryType money.EntryType, amount float64, category, note string) (*money.Entry, error) {
	args := m.Called(ctx, id, entryType, amount, category, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*money.Entry), args.Error(1)
}

func (m *MockLedgerService) DeleteMoneyEntry(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLedgerService) AvailableBalance(ctx context.Context) float64 {
	args := m.Called(ctx)
	return args.Get(0).(float64)
}

func (m *MockLedgerService) Dashboard(ctx context.Context) ledger.Summary {
	args := m.Called(ctx)
	return args.Get(0).(ledger.Summary)
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
