package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/wishfund-ledger/internal/ledger"
)

// DashboardHandler serves the aggregated dashboard summary
type DashboardHandler struct {
	ledger ledger.Service
	logger *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(logger *slog.Logger, ledger ledger.Service) *DashboardHandler {
	return &DashboardHandler{
		ledger: ledger,
		logger: logger,
	}
}

// Summary returns totals, per-item progress, and the most recent money entries
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary := h.ledger.Dashboard(c.Request.Context())

	wishlists := make([]WishlistProgressResponse, 0, len(summary.Wishlists))
	for _, item := range summary.Wishlists {
		wishlists = append(wishlists, mapProgressToResponse(item))
	}

	RespondOK(c, DashboardResponse{
		Wishlists:          wishlists,
		TotalWishlistValue: summary.TotalWishlistValue,
		TotalSaved:         summary.TotalSaved,
		AvailableMoney:     summary.AvailableMoney,
		TotalIncome:        summary.TotalIncome,
		TotalExpenses:      summary.TotalExpenses,
		MoneyEntries:       mapEntriesToResponse(summary.RecentEntries),
	})
}
