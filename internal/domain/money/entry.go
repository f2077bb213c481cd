package money

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// EntryType classifies a money entry
type EntryType string

// Valid entry types
const (
	TypeIncome  EntryType = "income"
	TypeExpense EntryType = "expense"
	TypeSaving  EntryType = "saving"
)

// Common errors
var (
	ErrInvalidType   = errors.New("entry type must be one of income, expense, saving")
	ErrInvalidAmount = errors.New("amount must be a positive finite number")
)

// ParseType converts a raw string into an EntryType
func ParseType(s string) (EntryType, error) {
	switch t := EntryType(s); t {
	case TypeIncome, TypeExpense, TypeSaving:
		return t, nil
	default:
		return "", ErrInvalidType
	}
}

// Outgoing reports whether entries of this type reduce the available balance
func (t EntryType) Outgoing() bool {
	return t == TypeExpense || t == TypeSaving
}

// Entry represents a single money transaction in the ledger
type Entry struct {
	ID       uuid.UUID `json:"id"`
	Type     EntryType `json:"type"`
	Amount   float64   `json:"amount"`
	Category string    `json:"category,omitempty"`
	Note     string    `json:"note,omitempty"`
	Date     time.Time `json:"date"`
}

// NewEntry creates a money entry. A zero date means "now".
func NewEntry(entryType EntryType, amount float64, category, note string, date time.Time) (*Entry, error) {
	if err := Validate(entryType, amount); err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = time.Now()
	}

	return &Entry{
		ID:       uuid.New(),
		Type:     entryType,
		Amount:   amount,
		Category: category,
		Note:     note,
		Date:     date,
	}, nil
}

// Update replaces the mutable fields of the entry, preserving ID and Date
func (e *Entry) Update(entryType EntryType, amount float64, category, note string) error {
	if err := Validate(entryType, amount); err != nil {
		return err
	}

	e.Type = entryType
	e.Amount = amount
	e.Category = category
	e.Note = note
	return nil
}

// Validate checks type and amount without constructing an entry
func Validate(entryType EntryType, amount float64) error {
	switch entryType {
	case TypeIncome, TypeExpense, TypeSaving:
	default:
		return ErrInvalidType
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// ErrEntryNotFound indicates a missing money entry
type ErrEntryNotFound struct {
	ID uuid.UUID
}

func (e ErrEntryNotFound) Error() string {
	return "money entry not found: " + e.ID.String()
}

// ErrInsufficientFunds indicates an outgoing amount exceeding the available
// balance. It carries both figures because callers display them.
type ErrInsufficientFunds struct {
	Available float64
	Requested float64
}

func (e ErrInsufficientFunds) Error() string {
	return fmt.Sprintf("insufficient funds: requested %.2f, available %.2f", e.Requested, e.Available)
}
