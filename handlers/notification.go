package handlers

import (
	"net/http"
	"strconv"

	"drdhobi/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler serves the in-app notification endpoints. The POST
// endpoint carries a discriminated "action" field, one of mark-read,
// mark-all-read or delete.
type NotificationHandler struct {
	NotificationService notification.NotificationService
}

// ListNotificationsHandler handles GET /api/notifications with optional
// ?limit= and ?unreadOnly= query parameters.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	limit := 20
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		limit = l
	}
	unreadOnly := c.Query("unreadOnly") == "true"

	notifs, unreadCount, err := h.NotificationService.List(userID, unreadOnly, limit)
	if err != nil {
		logger.Error("Failed to fetch notifications", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"notifications": notifs,
		"unreadCount":   unreadCount,
	})
}

// NotificationActionHandler handles POST /api/notifications.
func (h *NotificationHandler) NotificationActionHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	var req struct {
		Action          string   `json:"action"`
		NotificationIDs []string `json:"notificationIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}

	var err error
	switch req.Action {
	case "mark-read":
		if len(req.NotificationIDs) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Notification IDs are required"})
			return
		}
		err = h.NotificationService.MarkRead(userID, req.NotificationIDs)
	case "mark-all-read":
		err = h.NotificationService.MarkAllRead(userID)
	case "delete":
		if len(req.NotificationIDs) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Notification IDs are required"})
			return
		}
		err = h.NotificationService.Delete(userID, req.NotificationIDs)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid action"})
		return
	}

	if err != nil {
		logger.Error("Notification action failed",
			zap.String("userID", userID), zap.String("action", req.Action), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Operation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
