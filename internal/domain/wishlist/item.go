package wishlist

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrEmptyName    = errors.New("wishlist item name cannot be empty")
	ErrInvalidPrice = errors.New("price must be a non-negative finite number")
)

// Item represents a wishlist item the user is saving toward
type Item struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Image       string    `json:"image,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewItem creates a new wishlist item with the given parameters
func NewItem(name string, price float64, image, description string) (*Item, error) {
	if err := validateItem(name, price); err != nil {
		return nil, err
	}

	return &Item{
		ID:          uuid.New(),
		Name:        name,
		Price:       price,
		Image:       image,
		Description: description,
		CreatedAt:   time.Now(),
	}, nil
}

// Update replaces the mutable fields of the item, preserving ID and CreatedAt
func (i *Item) Update(name string, price float64, image, description string) error {
	if err := validateItem(name, price); err != nil {
		return err
	}

	i.Name = name
	i.Price = price
	i.Image = image
	i.Description = description
	return nil
}

func validateItem(name string, price float64) error {
	if name == "" {
		return ErrEmptyName
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return ErrInvalidPrice
	}
	return nil
}

// ErrItemNotFound indicates a missing wishlist item
type ErrItemNotFound struct {
	ID uuid.UUID
}

func (e ErrItemNotFound) Error() string {
	return "wishlist item not found: " + e.ID.String()
}
