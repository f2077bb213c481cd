package handler

import (
	"time"

	"github.com/wishfund-ledger/internal/domain/money"
	"github.com/wishfund-ledger/internal/domain/wishlist"
	"github.com/wishfund-ledger/internal/ledger"
)

// WishlistItemRequest represents a request to create or replace a wishlist item
type WishlistItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// WishlistItemResponse represents a wishlist item in API responses
type WishlistItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Description string  `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// WishlistProgressResponse is a wishlist item with its derived saving figures
type WishlistProgressResponse struct {
	WishlistItemResponse
	TotalSaved float64 `json:"totalSaved"`
	Progress   float64 `json:"progress"`
}

// SavingRequest represents a request to allocate money toward a wishlist item
type SavingRequest struct {
	WishlistID string  `json:"wishlistId" binding:"required"`
	Amount     float64 `json:"amount"`
	Note       string  `json:"note"`
}

// SavingResponse represents a saving in API responses
type SavingResponse struct {
	ID         string  `json:"id"`
	WishlistID string  `json:"wishlistId"`
	Amount     float64 `json:"amount"`
	Note       string  `json:"note,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}

// MoneyEntryRequest represents a request to create or replace a money entry.
// Date is optional; when present it must be RFC 3339 or YYYY-MM-DD.
type MoneyEntryRequest struct {
	Type     string  `json:"type" binding:"required"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Note     string  `json:"note"`
	Date     string  `json:"date"`
}

// MoneyEntryResponse represents a money entry in API responses
type MoneyEntryResponse struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category,omitempty"`
	Note     string  `json:"note,omitempty"`
	Date     string  `json:"date"`
}

// DashboardResponse represents the aggregated dashboard summary
type DashboardResponse struct {
	Wishlists          []WishlistProgressResponse `json:"wishlists"`
	TotalWishlistValue float64                    `json:"totalWishlistValue"`
	TotalSaved         float64                    `json:"totalSaved"`
	AvailableMoney     float64                    `json:"availableMoney"`
	TotalIncome        float64                    `json:"totalIncome"`
	TotalExpenses      float64                    `json:"totalExpenses"`
	MoneyEntries       []MoneyEntryResponse       `json:"moneyEntries"`
}

func mapItemToResponse(item *wishlist.Item) WishlistItemResponse {
	return WishlistItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Price:       item.Price,
		Image:       item.Image,
		Description: item.Description,
		CreatedAt:   item.CreatedAt.Format(time.RFC3339),
	}
}

func mapProgressToResponse(p ledger.ItemProgress) WishlistProgressResponse {
	return WishlistProgressResponse{
		WishlistItemResponse: mapItemToResponse(p.Item),
		TotalSaved:           p.TotalSaved,
		Progress:             p.Progress,
	}
}

func mapSavingToResponse(saving *wishlist.Saving) SavingResponse {
	return SavingResponse{
		ID:         saving.ID.String(),
		WishlistID: saving.WishlistID.String(),
		Amount:     saving.Amount,
		Note:       saving.Note,
		CreatedAt:  saving.CreatedAt.Format(time.RFC3339),
	}
}

func mapEntryToResponse(entry *money.Entry) MoneyEntryResponse {
	return MoneyEntryResponse{
		ID:       entry.ID.String(),
		Type:     string(entry.Type),
		Amount:   entry.Amount,
		Category: entry.Category,
		Note:     entry.Note,
		Date:     entry.Date.Format(time.RFC3339),
	}
}

func mapEntriesToResponse(entries []*money.Entry) []MoneyEntryResponse {
	out := make([]MoneyEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, mapEntryToResponse(entry))
	}
	return out
}
