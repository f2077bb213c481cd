package ledger

import (
	"context"

	"github.com/wishfund-ledger/internal/domain/money"
	"github.com/wishfund-ledger/internal/domain/wishlist"
)

// Snapshot is the serializable representation of the full ledger state,
// ordered the way the store iterates it.
type Snapshot struct {
	Items   []*wishlist.Item
	Savings []*wishlist.Saving
	Entries []*money.Entry
}

// Persister stores and restores ledger snapshots. The in-memory store stays
// authoritative; Save is called after every committed mutation and Load once
// at startup.
type Persister interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}

// NoopPersister keeps the ledger purely in-memory
type NoopPersister struct{}

// Load returns an empty snapshot
func (NoopPersister) Load(context.Context) (*Snapshot, error) {
	return &Snapshot{}, nil
}

// Save discards the snapshot
func (NoopPersister) Save(context.Context, *Snapshot) error {
	return nil
}
