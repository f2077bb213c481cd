package handler

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wishfund-ledger/internal/domain/money"
	"github.com/wishfund-ledger/internal/domain/wishlist"
	"github.com/wishfund-ledger/internal/ledger"
)

const savingNotFoundMsg = "Saving not found"

// SavingHandler handles HTTP requests for saving allocations
type SavingHandler struct {
	ledger ledger.Service
	logger *slog.Logger
}

// NewSavingHandler creates a new saving handler
func NewSavingHandler(logger *slog.Logger, ledger ledger.Service) *SavingHandler {
	return &SavingHandler{
		ledger: ledger,
		logger: logger,
	}
}

// ListByWishlist returns the savings allocated to one wishlist item
func (h *SavingHandler) ListByWishlist(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondNotFound(c, wishlistNotFoundMsg)
		return
	}

	savings := h.ledger.ListSavings(c.Request.Context(), id)

	out := make([]SavingResponse, 0, len(savings))
	for _, saving := range savings {
		out = append(out, mapSavingToResponse(saving))
	}
	RespondOK(c, out)
}

// Create allocates money toward a wishlist item
func (h *SavingHandler) Create(c *gin.Context) {
	var req SavingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	wishlistID, err := uuid.Parse(req.WishlistID)
	if err != nil {
		RespondNotFound(c, wishlistNotFoundMsg)
		return
	}

	saving, err := h.ledger.AddSaving(c.Request.Context(), wishlistID, req.Amount, req.Note)
	if err != nil {
		var notFound wishlist.ErrItemNotFound
		var insufficient money.ErrInsufficientFunds
		switch {
		case errors.As(err, &notFound):
			RespondNotFound(c, wishlistNotFoundMsg)
		case errors.As(err, &insufficient):
			RespondInsufficientFunds(c, "Insufficient funds for saving", insufficient)
		case errors.Is(err, wishlist.ErrInvalidSavingAmount):
			RespondBadRequest(c, err.Error())
		default:
			h.logger.Error("Failed to add saving", "wishlist_id", wishlistID, "error", err)
			RespondInternalError(c)
		}
		return
	}

	RespondCreated(c, mapSavingToResponse(saving))
}

// Delete removes a saving, releasing the allocated amount back to the
// available pool
func (h *SavingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondNotFound(c, savingNotFoundMsg)
		return
	}

	if err := h.ledger.DeleteSaving(c.Request.Context(), id); err != nil {
		var notFound wishlist.ErrSavingNotFound
		if errors.As(err, &notFound) {
			RespondNotFound(c, savingNotFoundMsg)
			return
		}
		h.logger.Error("Failed to delete saving", "id", id, "error", err)
		RespondInternalError(c)
		return
	}

	RespondNoContent(c)
}
