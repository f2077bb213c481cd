package handler

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wishfund-ledger/internal/domain/wishlist"
	"github.com/wishfund-ledger/internal/ledger"
)

const wishlistNotFoundMsg = "Wishlist not found"

// WishlistHandler handles HTTP requests for wishlist item operations
type WishlistHandler struct {
	ledger ledger.Service
	logger *slog.Logger
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(logger *slog.Logger, ledger ledger.Service) *WishlistHandler {
	return &WishlistHandler{
		ledger: ledger,
		logger: logger,
	}
}

// List returns every wishlist item with its saving progress
func (h *WishlistHandler) List(c *gin.Context) {
	items := h.ledger.ListWishlists(c.Request.Context())

	out := make([]WishlistProgressResponse, 0, len(items))
	for _, item := range items {
		out = append(out, mapProgressToResponse(item))
	}
	RespondOK(c, out)
}

// Create handles creation of a new wishlist item
func (h *WishlistHandler) Create(c *gin.Context) {
	var req WishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.ledger.AddWishlistItem(c.Request.Context(), req.Name, req.Price, req.Image, req.Description)
	if err != nil {
		if errors.Is(err, wishlist.ErrEmptyName) || errors.Is(err, wishlist.ErrInvalidPrice) {
			RespondBadRequest(c, err.Error())
			return
		}
		h.logger.Error("Failed to create wishlist item", "error", err)
		RespondInternalError(c)
		return
	}

	RespondCreated(c, mapItemToResponse(item))
}

// Update replaces the mutable fields of a wishlist item
func (h *WishlistHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondNotFound(c, wishlistNotFoundMsg)
		return
	}

	var req WishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.ledger.UpdateWishlistItem(c.Request.Context(), id, req.Name, req.Price, req.Image, req.Description)
	if err != nil {
		var notFound wishlist.ErrItemNotFound
		switch {
		case errors.As(err, &notFound):
			RespondNotFound(c, wishlistNotFoundMsg)
		case errors.Is(err, wishlist.ErrEmptyName) || errors.Is(err, wishlist.ErrInvalidPrice):
			RespondBadRequest(c, err.Error())
		default:
			h.logger.Error("Failed to update wishlist item", "id", id, "error", err)
			RespondInternalError(c)
		}
		return
	}

	RespondOK(c, mapItemToResponse(item))
}

// Delete removes a wishlist item and all savings allocated to it
func (h *WishlistHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondNotFound(c, wishlistNotFoundMsg)
		return
	}

	if err := h.ledger.DeleteWishlistItem(c.Request.Context(), id); err != nil {
		var notFound wishlist.ErrItemNotFound
		if errors.As(err, &notFound) {
			RespondNotFound(c, wishlistNotFoundMsg)
			return
		}
		h.logger.Error("Failed to delete wishlist item", "id", id, "error", err)
		RespondInternalError(c)
		return
	}

	RespondNoContent(c)
}
