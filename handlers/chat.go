package handlers

import (
	"errors"
	"net/http"

	"drdhobi/models"
	"drdhobi/services/chat"
	"drdhobi/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler serves the support chat endpoints. The POST endpoint carries
// a discriminated "action" field, one of create-conversation, send-message
// or update-status.
type ChatHandler struct {
	ChatService chat.ChatService
	UserService user.UserService
}

type chatActionRequest struct {
	Action           string `json:"action"`
	ConversationID   string `json:"conversationId"`
	Message          string `json:"message"`
	Subject          string `json:"subject"`
	RelatedBookingID string `json:"relatedBookingId"`
	Status           string `json:"status"`
}

func (h *ChatHandler) currentUser(c *gin.Context) *models.User {
	userID := c.GetString("userID")
	if userID == "" {
		return nil
	}
	usr, err := h.UserService.GetByID(userID)
	if err != nil {
		return nil
	}
	return usr
}

// ChatActionHandler handles POST /api/chat.
func (h *ChatHandler) ChatActionHandler(c *gin.Context) {
	logger := getLogger(c)

	usr := h.currentUser(c)
	if usr == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	var req chatActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}

	switch req.Action {
	case "create-conversation":
		conv, err := h.ChatService.CreateConversation(usr, req.Subject, req.Message, req.RelatedBookingID)
		if err != nil {
			logger.Error("Failed to create conversation", zap.String("userID", usr.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create conversation"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":        true,
			"conversationId": conv.ID,
			"message":        "Conversation created successfully",
		})

	case "send-message":
		if req.ConversationID == "" || req.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Conversation ID and message are required"})
			return
		}
		msg, err := h.ChatService.SendMessage(usr, req.ConversationID, req.Message)
		if err != nil {
			h.writeChatError(c, err, "Failed to send message")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"messageId": msg.ID,
			"message":   "Message sent successfully",
		})

	case "update-status":
		if req.ConversationID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Conversation ID is required"})
			return
		}
		if err := h.ChatService.UpdateStatus(usr, req.ConversationID, req.Status); err != nil {
			h.writeChatError(c, err, "Failed to update status")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Status updated successfully"})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid action"})
	}
}

// GetChatHandler handles GET /api/chat. With ?conversationId= it returns
// that conversation with its messages and marks the viewer's side read;
// without it, the viewer's conversation list.
func (h *ChatHandler) GetChatHandler(c *gin.Context) {
	logger := getLogger(c)

	usr := h.currentUser(c)
	if usr == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	conversationID := c.Query("conversationId")
	if conversationID != "" {
		conv, msgs, err := h.ChatService.GetMessages(usr, conversationID)
		if err != nil {
			h.writeChatError(c, err, "Failed to fetch conversation")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"conversation": conv,
			"messages":     msgs,
		})
		return
	}

	convs, err := h.ChatService.ListConversations(usr, c.Query("status"))
	if err != nil {
		logger.Error("Failed to list conversations", zap.String("userID", usr.ID), zap.Error(err))
		h.writeChatError(c, err, "Failed to fetch conversations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "conversations": convs})
}

func (h *ChatHandler) writeChatError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, chat.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Access denied"})
	case errors.Is(err, chat.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid status"})
	case errors.Is(err, chat.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Conversation not found"})
	default:
		getLogger(c).Error("Chat operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": fallback})
	}
}
