package chatRepo

import (
	"errors"

	"drdhobi/models"
)

// ErrNotFound is returned when no conversation exists with the given ID.
var ErrNotFound = errors.New("conversation not found")

// ChatRepository defines methods for conversation and message data access.
// Conversations live in the "conversations" collection; their messages live
// in a flat "chatMessages" collection keyed by conversation_id.
type ChatRepository interface {
	// CreateConversation inserts a new conversation.
	CreateConversation(conv *models.Conversation) error
	// GetConversation retrieves a conversation by its unique ID.
	GetConversation(id string) (*models.Conversation, error)
	// ListAll retrieves all conversations, optionally filtered by status,
	// ordered by last message time descending.
	ListAll(status string) ([]models.Conversation, error)
	// ListByUser retrieves a customer's own conversations, ordered by last
	// message time descending.
	ListByUser(userID string) ([]models.Conversation, error)
	// SetStatus sets the conversation status and records the acting admin.
	SetStatus(id, status, adminID, adminName string) error
	// AddMessage appends a message to a conversation.
	AddMessage(msg *models.ChatMessage) error
	// GetMessages retrieves a conversation's messages oldest first.
	GetMessages(conversationID string) ([]models.ChatMessage, error)
	// ApplyMessage updates the conversation preview fields for a new message
	// from senderRole and atomically increments the recipient side's unread
	// counter. When reopen is set the status is also forced back to open.
	ApplyMessage(conversationID, preview, senderRole string, reopen bool) error
	// MarkRead flips every unread message addressed to viewerRole to read and
	// zeroes that side's unread counter on the conversation.
	MarkRead(conversationID, viewerRole string) error
}
