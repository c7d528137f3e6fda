package chat

import (
	"fmt"

	chatRepo "drdhobi/database/repository/chat"
	"drdhobi/models"
	"drdhobi/services/notification"

	"github.com/google/uuid"
)

const previewLimit = 100

// ChatService implements the support chat protocol: conversations, the
// two-sided unread counters, and the notification fan-out on each send.
type ChatService interface {
	// CreateConversation starts a new support thread for a customer and
	// broadcasts a notification to every admin.
	CreateConversation(user *models.User, subject, firstMessage, relatedBookingID string) (*models.Conversation, error)
	// SendMessage appends a message, updates the preview fields, increments
	// the recipient side's unread counter and notifies the recipient(s).
	// A customer message into a resolved conversation reopens it to open;
	// admin messages never change status.
	SendMessage(sender *models.User, conversationID, text string) (*models.ChatMessage, error)
	// GetMessages returns a conversation and its messages oldest first. As
	// a side effect every unread message addressed to the viewer is marked
	// read and the viewer's unread counter is reset to zero.
	GetMessages(viewer *models.User, conversationID string) (*models.Conversation, []models.ChatMessage, error)
	// ListConversations returns all conversations for admins (optionally
	// filtered by status) and only the caller's own for customers.
	ListConversations(viewer *models.User, status string) ([]models.Conversation, error)
	// UpdateStatus sets the conversation status (admin only, direct set).
	UpdateStatus(admin *models.User, conversationID, status string) error
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Repo     chatRepo.ChatRepository
	Notifier notification.NotificationService
}

// CreateConversation starts a new support thread. The thread opens with the
// admin side owing one unread (the initial message or the thread itself).
func (s *DefaultChatService) CreateConversation(user *models.User, subject, firstMessage, relatedBookingID string) (*models.Conversation, error) {
	if subject == "" {
		subject = "General Inquiry"
	}
	preview := firstMessage
	if preview == "" {
		preview = "Started a conversation"
	}

	conv := &models.Conversation{
		ID:               uuid.New().String(),
		UserID:           user.ID,
		UserName:         user.Name,
		UserEmail:        user.Email,
		Status:           models.ConversationOpen,
		Subject:          subject,
		LastMessage:      truncate(preview, previewLimit),
		LastMessageBy:    models.RoleUser,
		UnreadByUser:     0,
		UnreadByAdmin:    1,
		RelatedBookingID: relatedBookingID,
	}
	if err := s.Repo.CreateConversation(conv); err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	if firstMessage != "" {
		msg := &models.ChatMessage{
			ID:             uuid.New().String(),
			ConversationID: conv.ID,
			SenderID:       user.ID,
			SenderName:     user.Name,
			SenderRole:     models.RoleUser,
			Message:        firstMessage,
			MessageType:    "text",
			Read:           false,
		}
		if err := s.Repo.AddMessage(msg); err != nil {
			return nil, fmt.Errorf("failed to add initial message: %w", err)
		}
	}

	s.Notifier.NotifyAdmins(models.NotificationMessage,
		"New Support Request",
		fmt.Sprintf("%s started a new conversation: %s", user.Name, subject),
		map[string]string{"conversationId": conv.ID, "senderId": user.ID})

	return conv, nil
}

// SendMessage appends a message and applies the unread-counter protocol.
func (s *DefaultChatService) SendMessage(sender *models.User, conversationID, text string) (*models.ChatMessage, error) {
	if conversationID == "" || text == "" {
		return nil, fmt.Errorf("conversation ID and message are required")
	}

	conv, err := s.Repo.GetConversation(conversationID)
	if err != nil {
		return nil, err
	}
	if sender.Role != models.RoleAdmin && conv.UserID != sender.ID {
		return nil, ErrAccessDenied
	}

	msg := &models.ChatMessage{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		SenderID:       sender.ID,
		SenderName:     sender.Name,
		SenderRole:     sender.Role,
		Message:        text,
		MessageType:    "text",
		Read:           false,
	}
	if err := s.Repo.AddMessage(msg); err != nil {
		return nil, fmt.Errorf("failed to add message: %w", err)
	}

	// Only an inbound customer message reopens a resolved thread.
	reopen := sender.Role == models.RoleUser && conv.Status == models.ConversationResolved
	if err := s.Repo.ApplyMessage(conversationID, truncate(text, previewLimit), sender.Role, reopen); err != nil {
		return nil, err
	}

	data := map[string]string{"conversationId": conversationID, "senderId": sender.ID}
	if sender.Role == models.RoleAdmin {
		s.Notifier.Notify(conv.UserID, models.NotificationMessage,
			"New Message from Support", truncate(text, previewLimit), data)
	} else {
		s.Notifier.NotifyAdmins(models.NotificationMessage,
			fmt.Sprintf("Message from %s", sender.Name), truncate(text, previewLimit), data)
	}

	return msg, nil
}

// GetMessages returns a conversation and its messages, marking the viewer's
// side read on open.
func (s *DefaultChatService) GetMessages(viewer *models.User, conversationID string) (*models.Conversation, []models.ChatMessage, error) {
	conv, err := s.Repo.GetConversation(conversationID)
	if err != nil {
		return nil, nil, err
	}
	if viewer.Role != models.RoleAdmin && conv.UserID != viewer.ID {
		return nil, nil, ErrAccessDenied
	}

	msgs, err := s.Repo.GetMessages(conversationID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.Repo.MarkRead(conversationID, viewer.Role); err != nil {
		return nil, nil, err
	}
	if viewer.Role == models.RoleAdmin {
		conv.UnreadByAdmin = 0
	} else {
		conv.UnreadByUser = 0
	}

	return conv, msgs, nil
}

// ListConversations returns conversations visible to the viewer.
func (s *DefaultChatService) ListConversations(viewer *models.User, status string) ([]models.Conversation, error) {
	if viewer.Role == models.RoleAdmin {
		if status != "" && !models.ValidConversationStatus(status) {
			return nil, ErrInvalidStatus
		}
		return s.Repo.ListAll(status)
	}
	return s.Repo.ListByUser(viewer.ID)
}

// UpdateStatus sets the conversation status by direct set. Any value may
// follow any other; only the enumeration itself is checked.
func (s *DefaultChatService) UpdateStatus(admin *models.User, conversationID, status string) error {
	if admin.Role != models.RoleAdmin {
		return ErrAccessDenied
	}
	if !models.ValidConversationStatus(status) {
		return ErrInvalidStatus
	}
	return s.Repo.SetStatus(conversationID, status, admin.ID, admin.Name)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
