package wishlist

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidSavingAmount indicates a non-positive or non-finite saving amount
var ErrInvalidSavingAmount = errors.New("saving amount must be a positive finite number")

// Saving represents an amount of money allocated toward a wishlist item.
// EntryID links the saving to the money entry recorded for the same
// allocation, so deleting one can release the other.
type Saving struct {
	ID         uuid.UUID `json:"id"`
	WishlistID uuid.UUID `json:"wishlistId"`
	EntryID    uuid.UUID `json:"-"`
	Amount     float64   `json:"amount"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewSaving creates a saving allocated to the given wishlist item
func NewSaving(wishlistID, entryID uuid.UUID, amount float64, note string) (*Saving, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return nil, ErrInvalidSavingAmount
	}

	return &Saving{
		ID:         uuid.New(),
		WishlistID: wishlistID,
		EntryID:    entryID,
		Amount:     amount,
		Note:       note,
		CreatedAt:  time.Now(),
	}, nil
}

// ErrSavingNotFound indicates a missing saving
type ErrSavingNotFound struct {
	ID uuid.UUID
}

func (e ErrSavingNotFound) Error() string {
	return "saving not found: " + e.ID.String()
}
