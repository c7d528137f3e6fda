package handlers

import (
	"net/http"

	"drdhobi/models"
	"drdhobi/services/inbox"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InboxHandler serves the contact-form inbox, separate from the support
// chat.
type InboxHandler struct {
	InboxService inbox.InboxService
}

// SubmitMessageHandler handles POST /api/messages. Public.
func (h *InboxHandler) SubmitMessageHandler(c *gin.Context) {
	logger := getLogger(c)

	var m models.ContactMessage
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	saved, err := h.InboxService.Submit(m)
	if err != nil {
		logger.Error("Failed to save contact message", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": saved.ID})
}

// GetMessagesHandler handles GET /api/admin/messages.
func (h *InboxHandler) GetMessagesHandler(c *gin.Context) {
	logger := getLogger(c)

	messages, err := h.InboxService.GetAll()
	if err != nil {
		logger.Error("Failed to fetch contact messages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// DeleteMessageHandler handles DELETE /api/admin/messages/:id.
func (h *InboxHandler) DeleteMessageHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.InboxService.Delete(id); err != nil {
		logger.Error("Failed to delete contact message", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
