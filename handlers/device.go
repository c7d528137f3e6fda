package handlers

import (
	"net/http"

	"drdhobi/services/device"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DeviceHandler serves admin FCM device token registration for the booking
// push channel.
type DeviceHandler struct {
	DeviceService device.DeviceService
}

// RegisterTokenHandler handles POST /api/admin/device-tokens.
func (h *DeviceHandler) RegisterTokenHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Device token is required"})
		return
	}

	if err := h.DeviceService.Register(req.Token, c.GetString("userID")); err != nil {
		logger.Error("Failed to register device token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register device token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UnregisterTokenHandler handles DELETE /api/admin/device-tokens.
func (h *DeviceHandler) UnregisterTokenHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Device token is required"})
		return
	}

	if err := h.DeviceService.Unregister(req.Token); err != nil {
		logger.Error("Failed to unregister device token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unregister device token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
