package handlers

import (
	"net/http"

	"drdhobi/models"
	"drdhobi/services/quote"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler serves instant-quote submission and the admin quote pipeline.
type QuoteHandler struct {
	QuoteService quote.QuoteService
}

// CreateQuoteHandler handles POST /api/quotes. Works for both guests and
// signed-in customers.
func (h *QuoteHandler) CreateQuoteHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.QuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	q, err := h.QuoteService.Create(c.Request.Context(), input, c.GetString("userID"))
	if err != nil {
		logger.Warn("Quote submission rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"quoteId":       q.ID,
		"estimatedCost": q.EstimatedCost,
	})
}

// GetAllQuotesHandler handles GET /api/admin/quotes.
func (h *QuoteHandler) GetAllQuotesHandler(c *gin.Context) {
	logger := getLogger(c)

	quotes, err := h.QuoteService.GetAll()
	if err != nil {
		logger.Error("Failed to fetch quotes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch quotes"})
		return
	}
	c.JSON(http.StatusOK, quotes)
}

// UpdateQuoteStatusHandler handles PATCH /api/admin/quotes/:id/status.
func (h *QuoteHandler) UpdateQuoteStatusHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.QuoteService.UpdateStatus(id, req.Status); err != nil {
		logger.Error("Failed to update quote status",
			zap.String("id", id), zap.String("status", req.Status), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteQuoteHandler handles DELETE /api/admin/quotes/:id.
func (h *QuoteHandler) DeleteQuoteHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.QuoteService.Delete(id); err != nil {
		logger.Error("Failed to delete quote", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete quote"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
