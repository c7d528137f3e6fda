package handlers

import (
	"net/http"

	"drdhobi/models"
	"drdhobi/services/settings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SettingsHandler serves the singleton site settings document.
type SettingsHandler struct {
	SettingsService settings.SettingsService
}

// GetSettingsHandler handles GET /api/settings. Public; always succeeds
// since defaults back every field.
func (h *SettingsHandler) GetSettingsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.SettingsService.Get())
}

// SetSettingsHandler handles POST /api/admin/settings with merge-write
// semantics.
func (h *SettingsHandler) SetSettingsHandler(c *gin.Context) {
	logger := getLogger(c)

	var update models.SiteSettings
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.SettingsService.Set(update); err != nil {
		logger.Error("Failed to save site settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
