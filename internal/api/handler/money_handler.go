package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wishfund-ledger/internal/domain/money"
	"github.com/wishfund-ledger/internal/ledger"
)

const entryNotFoundMsg = "Entry not found"

// MoneyHandler handles HTTP requests for money entry operations
type MoneyHandler struct {
	ledger ledger.Service
	logger *slog.Logger
}

// NewMoneyHandler creates a new money entry handler
func NewMoneyHandler(logger *slog.Logger, ledger ledger.Service) *MoneyHandler {
	return &MoneyHandler{
		ledger: ledger,
		logger: logger,
	}
}

// List returns the money history, optionally filtered by free-text search
// and exact type, and ordered by one of the supported sorts
func (h *MoneyHandler) List(c *gin.Context) {
	query := ledger.HistoryQuery{
		Search: c.Query("search"),
		Type:   money.EntryType(c.Query("type")),
		Sort:   ledger.SortOrder(c.Query("sort")),
	}

	entries := h.ledger.ListMoneyEntries(c.Request.Context(), query)
	RespondOK(c, mapEntriesToResponse(entries))
}

// Create records a new money entry
func (h *MoneyHandler) Create(c *gin.Context) {
	var req MoneyEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		RespondBadRequest(c, "Invalid date format")
		return
	}

	entry, err := h.ledger.AddMoneyEntry(c.Request.Context(), money.EntryType(req.Type), req.Amount, req.Category, req.Note, date)
	if err != nil {
		var insufficient money.ErrInsufficientFunds
		switch {
		case errors.As(err, &insufficient):
			RespondInsufficientFunds(c, "Insufficient funds", insufficient)
		case errors.Is(err, money.ErrInvalidType) || errors.Is(err, money.ErrInvalidAmount):
			RespondBadRequest(c, err.Error())
		default:
			h.logger.Error("Failed to add money entry", "error", err)
			RespondInternalError(c)
		}
		return
	}

	RespondCreated(c, mapEntryToResponse(entry))
}

// Update replaces the mutable fields of a money entry
func (h *MoneyHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondNotFound(c, entryNotFoundMsg)
		return
	}

	var req MoneyEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	entry, err := h.ledger.UpdateMoneyEntry(c.Request.Context(), id, money.EntryType(req.Type), req.Amount, req.Category, req.Note)
	if err != nil {
		var notFound money.ErrEntryNotFound
		switch {
		case errors.As(err, &notFound):
			RespondNotFound(c, entryNotFoundMsg)
		case errors.Is(err, money.ErrInvalidType) || errors.Is(err, money.ErrInvalidAmount):
			RespondBadRequest(c, err.Error())
		default:
			h.logger.Error("Failed to update money entry", "id", id, "error", err)
			RespondInternalError(c)
		}
		return
	}

	RespondOK(c, mapEntryToResponse(entry))
}

// Delete removes a money entry
func (h *MoneyHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondNotFound(c, entryNotFoundMsg)
		return
	}

	if err := h.ledger.DeleteMoneyEntry(c.Request.Context(), id); err != nil {
		var notFound money.ErrEntryNotFound
		if errors.As(err, &notFound) {
			RespondNotFound(c, entryNotFoundMsg)
			return
		}
		h.logger.Error("Failed to delete money entry", "id", id, "error", err)
		RespondInternalError(c)
		return
	}

	RespondNoContent(c)
}

// parseDate accepts RFC 3339 timestamps or bare dates; empty means server time
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
