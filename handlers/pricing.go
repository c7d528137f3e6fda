package handlers

import (
	"net/http"

	"drdhobi/models"
	"drdhobi/services/pricing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PricingHandler serves the pricing configuration and calculator metadata.
type PricingHandler struct {
	PricingService pricing.PricingService
}

// GetPricingHandler handles GET /api/pricing. Public; never fails the
// caller since defaults always exist.
func (h *PricingHandler) GetPricingHandler(c *gin.Context) {
	cfg := h.PricingService.Get(c.Request.Context())
	c.JSON(http.StatusOK, cfg)
}

// GetRatesHandler handles GET /api/pricing/rates. Exposes the per-service
// calculator rates the quote form renders from.
func (h *PricingHandler) GetRatesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, pricing.ServiceRates)
}

// SetPricingHandler handles POST /api/admin/pricing. Admin only; replaces
// the configuration wholesale.
func (h *PricingHandler) SetPricingHandler(c *gin.Context) {
	logger := getLogger(c)

	var cfg models.PricingConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.PricingService.Set(c.Request.Context(), &cfg); err != nil {
		logger.Error("Failed to save pricing configuration", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save pricing"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
