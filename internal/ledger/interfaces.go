package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wishfund-ledger/internal/domain/money"
	"github.com/wishfund-ledger/internal/domain/wishlist"
)

// Service defines the mutation and aggregation operations over the ledger.
// Mutations validate against current state before writing and leave the store
// untouched on failure.
type Service interface {
	// ListWishlists returns every wishlist item with derived progress
	ListWishlists(ctx context.Context) []ItemProgress

	// AddWishlistItem creates a wishlist item
	// Returns wishlist.ErrEmptyName or wishlist.ErrInvalidPrice on bad input
	AddWishlistItem(ctx context.Context, name string, price float64, image, description string) (*wishlist.Item, error)

	// UpdateWishlistItem replaces the mutable fields of an item
	// Returns wishlist.ErrItemNotFound if the item doesn't exist
	UpdateWishlistItem(ctx context.Context, id uuid.UUID, name string, price float64, image, description string) (*wishlist.Item, error)

	// DeleteWishlistItem removes an item and, atomically, all its savings
	// along with their paired money entries
	DeleteWishlistItem(ctx context.Context, id uuid.UUID) error

	// ListSavings returns the savings allocated to one wishlist item
	ListSavings(ctx context.Context, wishlistID uuid.UUID) []*wishlist.Saving

	// AddSaving allocates money toward a wishlist item and records the
	// matching saving-type money entry in the same operation
	// Returns wishlist.ErrItemNotFound, wishlist.ErrInvalidSavingAmount, or
	// money.ErrInsufficientFunds
	AddSaving(ctx context.Context, wishlistID uuid.UUID, amount float64, note string) (*wishlist.Saving, error)

	// DeleteSaving removes a saving and its paired money entry, returning
	// the allocated amount to the available pool
	DeleteSaving(ctx context.Context, id uuid.UUID) error

	// ListMoneyEntries returns the money history filtered and ordered by q
	ListMoneyEntries(ctx context.Context, q HistoryQuery) []*money.Entry

	// AddMoneyEntry records a transaction. Outgoing types (expense, saving)
	// are rejected with money.ErrInsufficientFunds when the amount exceeds
	// the balance computed before this entry.
	AddMoneyEntry(ctx context.Context, entryType money.EntryType, amount float64, category, note string, date time.Time) (*money.Entry, error)

	// UpdateMoneyEntry replaces the mutable fields of an entry
	// Returns money.ErrEntryNotFound if the entry doesn't exist
	UpdateMoneyEntry(ctx context.Context, id uuid.UUID, entryType money.EntryType, amount float64, category, note string) (*money.Entry, error)

	// DeleteMoneyEntry removes an entry; no cascade
	DeleteMoneyEntry(ctx context.Context, id uuid.UUID) error

	// AvailableBalance returns income minus expenses minus savings
	AvailableBalance(ctx context.Context) float64

	// Dashboard returns the aggregated dashboard summary
	Dashboard(ctx context.Context) Summary
}
