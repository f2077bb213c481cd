// Package ledger holds the authoritative in-memory state of the finance
// tracker and the rules governing how wishlist items, savings, and money
// entries compose into consistent derived figures.
package ledger

import (
	"github.com/google/uuid"

	"github.com/wishfund-ledger/internal/domain/money"
	"github.com/wishfund-ledger/internal/domain/wishlist"
)

// collection is an ordered set of records addressable by id. Insertion order
// is preserved and is the default iteration order. Not safe for concurrent
// use; the Service serializes access.
type collection[T any] struct {
	order []uuid.UUID
	byID  map[uuid.UUID]T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{byID: make(map[uuid.UUID]T)}
}

func (c *collection[T]) insert(id uuid.UUID, v T) {
	if _, ok := c.byID[id]; !ok {
		c.order = append(c.order, id)
	}
	c.byID[id] = v
}

// replace swaps the record stored under id, reporting whether id was present
func (c *collection[T]) replace(id uuid.UUID, v T) bool {
	if _, ok := c.byID[id]; !ok {
		return false
	}
	c.byID[id] = v
	return true
}

func (c *collection[T]) delete(id uuid.UUID) bool {
	if _, ok := c.byID[id]; !ok {
		return false
	}
	delete(c.byID, id)
	for i, other := range c.order {
		if other == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

func (c *collection[T]) find(id uuid.UUID) (T, bool) {
	v, ok := c.byID[id]
	return v, ok
}

func (c *collection[T]) list() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

func (c *collection[T]) len() int {
	return len(c.order)
}

// Store holds the three entity collections
type Store struct {
	items   *collection[*wishlist.Item]
	savings *collection[*wishlist.Saving]
	entries *collection[*money.Entry]
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		items:   newCollection[*wishlist.Item](),
		savings: newCollection[*wishlist.Saving](),
		entries: newCollection[*money.Entry](),
	}
}

// seed loads a snapshot into the store, preserving the snapshot's order
func (s *Store) seed(snap *Snapshot) {
	for _, item := range snap.Items {
		s.items.insert(item.ID, item)
	}
	for _, saving := range snap.Savings {
		s.savings.insert(saving.ID, saving)
	}
	for _, entry := range snap.Entries {
		s.entries.insert(entry.ID, entry)
	}
}

// snapshot copies the current state into a serializable form
func (s *Store) snapshot() *Snapshot {
	return &Snapshot{
		Items:   s.items.list(),
		Savings: s.savings.list(),
		Entries: s.entries.list(),
	}
}
