package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wishfund-ledger/internal/domain/money"
	"github.com/wishfund-ledger/internal/domain/wishlist"
)

// ServiceImpl implements the Service interface. A single RWMutex covers each
// operation end-to-end: the insufficient-funds check and the write it guards
// are only atomic because no other mutation can interleave.
type ServiceImpl struct {
	mu        sync.RWMutex
	store     *Store
	persister Persister
	logger    *slog.Logger
	recentN   int
}

// NewService builds a ledger service seeded from the persister's snapshot.
// recentN bounds the dashboard's recent-entries view.
func NewService(ctx context.Context, log *slog.Logger, persister Persister, recentN int) (*ServiceImpl, error) {
	snap, err := persister.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger snapshot: %w", err)
	}

	store := NewStore()
	store.seed(snap)

	return &ServiceImpl{
		store:     store,
		persister: persister,
		logger:    log,
		recentN:   recentN,
	}, nil
}

// persist writes the current state through to the persister. Called with the
// write lock held, after the in-memory mutation has been applied. Durability
// is best-effort: failures are logged, never surfaced to the caller.
func (s *ServiceImpl) persist(ctx context.Context) {
	if err := s.persister.Save(ctx, s.store.snapshot()); err != nil {
		s.logger.Warn("failed to persist ledger snapshot", "error", err)
	}
}

// ListWishlists returns every wishlist item with derived progress
func (s *ServiceImpl) ListWishlists(ctx context.Context) []ItemProgress {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return allProgress(s.store)
}

// AddWishlistItem creates a new wishlist item
func (s *ServiceImpl) AddWishlistItem(ctx context.Context, name string, price float64, image, description string) (*wishlist.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := wishlist.NewItem(name, price, image, description)
	if err != nil {
		return nil, err
	}

	s.store.items.insert(item.ID, item)
	s.persist(ctx)

	s.logger.Info("wishlist item added", "id", item.ID, "name", item.Name, "price", item.Price)
	return item, nil
}

// UpdateWishlistItem performs a full replace of the item's mutable fields
func (s *ServiceImpl) UpdateWishlistItem(ctx context.Context, id uuid.UUID, name string, price float64, image, description string) (*wishlist.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.store.items.find(id)
	if !ok {
		return nil, wishlist.ErrItemNotFound{ID: id}
	}

	// Validate on a copy so a rejected update leaves the store unchanged
	updated := *item
	if err := updated.Update(name, price, image, description); err != nil {
		return nil, err
	}

	s.store.items.replace(id, &updated)
	s.persist(ctx)

	return &updated, nil
}

// DeleteWishlistItem removes the item and cascades to all its savings and
// their paired money entries. Existence is validated first so the cascade
// either happens entirely or not at all.
func (s *ServiceImpl) DeleteWishlistItem(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.items.find(id); !ok {
		return wishlist.ErrItemNotFound{ID: id}
	}

	var removed int
	for _, saving := range s.store.savings.list() {
		if saving.WishlistID != id {
			continue
		}
		s.store.savings.delete(saving.ID)
		s.store.entries.delete(saving.EntryID)
		removed++
	}
	s.store.items.delete(id)
	s.persist(ctx)

	s.logger.Info("wishlist item deleted", "id", id, "cascaded_savings", removed)
	return nil
}

// ListSavings returns the savings allocated to one wishlist item
func (s *ServiceImpl) ListSavings(ctx context.Context, wishlistID uuid.UUID) []*wishlist.Saving {
	s.mu.RLock()
	defer s.mu.RUnlock()

	savings := make([]*wishlist.Saving, 0)
	for _, saving := range s.store.savings.list() {
		if saving.WishlistID == wishlistID {
			savings = append(savings, saving)
		}
	}
	return savings
}

// AddSaving allocates money toward a wishlist item. The allocation is itself
// money leaving the available pool, so it is rejected when it would drive the
// balance negative, and on success a saving-type money entry is written in
// the same critical section.
func (s *ServiceImpl) AddSaving(ctx context.Context, wishlistID uuid.UUID, amount float64, note string) (*wishlist.Saving, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.items.find(wishlistID); !ok {
		return nil, wishlist.ErrItemNotFound{ID: wishlistID}
	}

	entry, err := money.NewEntry(money.TypeSaving, amount, "", note, time.Time{})
	if err != nil {
		return nil, wishlist.ErrInvalidSavingAmount
	}

	available := availableBalance(s.store)
	if amount > available {
		return nil, money.ErrInsufficientFunds{Available: available, Requested: amount}
	}

	saving, err := wishlist.NewSaving(wishlistID, entry.ID, amount, note)
	if err != nil {
		return nil, err
	}

	s.store.savings.insert(saving.ID, saving)
	s.store.entries.insert(entry.ID, entry)
	s.persist(ctx)

	s.logger.Info("saving added", "id", saving.ID, "wishlist_id", wishlistID, "amount", amount)
	return saving, nil
}

// DeleteSaving removes a saving together with its paired money entry, so the
// allocated amount flows back into the available balance.
func (s *ServiceImpl) DeleteSaving(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saving, ok := s.store.savings.find(id)
	if !ok {
		return wishlist.ErrSavingNotFound{ID: id}
	}

	s.store.savings.delete(id)
	s.store.entries.delete(saving.EntryID)
	s.persist(ctx)

	return nil
}

// ListMoneyEntries returns the money history filtered and ordered by q
func (s *ServiceImpl) ListMoneyEntries(ctx context.Context, q HistoryQuery) []*money.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return moneyHistory(s.store, q)
}

// AddMoneyEntry records a transaction, rejecting outgoing amounts that
// exceed the balance computed before this entry is added
func (s *ServiceImpl) AddMoneyEntry(ctx context.Context, entryType money.EntryType, amount float64, category, note string, date time.Time) (*money.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := money.NewEntry(entryType, amount, category, note, date)
	if err != nil {
		return nil, err
	}

	if entryType.Outgoing() {
		available := availableBalance(s.store)
		if amount > available {
			return nil, money.ErrInsufficientFunds{Available: available, Requested: amount}
		}
	}

	s.store.entries.insert(entry.ID, entry)
	s.persist(ctx)

	s.logger.Info("money entry added", "id", entry.ID, "type", entry.Type, "amount", entry.Amount)
	return entry, nil
}

// UpdateMoneyEntry replaces the mutable fields of an entry. The balance is
// not re-checked against the entry's prior value; an edit can take the
// balance negative. Known simplification, kept deliberately.
func (s *ServiceImpl) UpdateMoneyEntry(ctx context.Context, id uuid.UUID, entryType money.EntryType, amount float64, category, note string) (*money.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.store.entries.find(id)
	if !ok {
		return nil, money.ErrEntryNotFound{ID: id}
	}

	updated := *entry
	if err := updated.Update(entryType, amount, category, note); err != nil {
		return nil, err
	}

	s.store.entries.replace(id, &updated)
	s.persist(ctx)

	return &updated, nil
}

// DeleteMoneyEntry removes an entry; no cascade
func (s *ServiceImpl) DeleteMoneyEntry(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.entries.delete(id) {
		return money.ErrEntryNotFound{ID: id}
	}
	s.persist(ctx)

	return nil
}

// AvailableBalance returns income minus expenses minus savings
func (s *ServiceImpl) AvailableBalance(ctx context.Context) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return availableBalance(s.store)
}

// Dashboard returns the aggregated dashboard summary
func (s *ServiceImpl) Dashboard(ctx context.Context) Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return dashboardSummary(s.store, s.recentN)
}
