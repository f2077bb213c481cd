package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/wishfund-ledger/internal/api/handler"
	"github.com/wishfund-ledger/internal/api/middleware"
)

// setupRouter configures API routes and middleware for the application
func setupRouter(
	logger *slog.Logger,
	r *gin.Engine,
	wishlistHandler *handler.WishlistHandler,
	savingHandler *handler.SavingHandler,
	moneyHandler *handler.MoneyHandler,
	dashboardHandler *handler.DashboardHandler,
) {
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CorrelationID())
	r.Use(middleware.Logger(logger))
	r.Use(cors.Default())

	api := r.Group("/api")
	{
		wishlists := api.Group("/wishlists")
		{
			wishlists.GET("", wishlistHandler.List)
			wishlists.POST("", wishlistHandler.Create)
			wishlists.PUT("/:id", wishlistHandler.Update)
			wishlists.DELETE("/:id", wishlistHandler.Delete)
		}

		savings := api.Group("/savings")
		{
			savings.POST("", savingHandler.Create)
			savings.DELETE("/:id", savingHandler.Delete)
			savings.GET("/wishlist/:id", savingHandler.ListByWishlist)
		}

		entries := api.Group("/money-entries")
		{
			entries.GET("", moneyHandler.List)
			entries.POST("", moneyHandler.Create)
			entries.PUT("/:id", moneyHandler.Update)
			entries.DELETE("/:id", moneyHandler.Delete)
		}

		api.GET("/dashboard", dashboardHandler.Summary)
	}

	// Health check endpoint for monitoring
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}
