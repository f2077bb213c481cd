package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wishfund-ledger/internal/domain/money"
)

// The wire format is fixed by the UI consuming it: success responses are the
// bare entity or array, failures are {"error": message}, and insufficient
// funds additionally carries the available and requested amounts.

// RespondOK sends a 200 OK response with the payload
func RespondOK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// RespondCreated sends a 201 Created response with the payload
func RespondCreated(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

// RespondNoContent sends a 204 No Content response
func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// RespondBadRequest sends a 400 Bad Request response with an error message
func RespondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// RespondNotFound sends a 404 Not Found response with an error message
func RespondNotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}

// RespondInsufficientFunds sends a 400 response carrying both the available
// and requested amounts so the caller can display them
func RespondInsufficientFunds(c *gin.Context, message string, e money.ErrInsufficientFunds) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":     message,
		"available": e.Available,
		"requested": e.Requested,
	})
}

// RespondInternalError sends a 500 Internal Server Error response
func RespondInternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
