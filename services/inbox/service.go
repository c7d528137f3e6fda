package inbox

import (
	"fmt"
	"time"

	inboxRepo "drdhobi/database/repository/inbox"
	"drdhobi/models"
	"drdhobi/services/notification"

	"github.com/google/uuid"
)

// InboxService manages the flat contact-form inbox.
type InboxService interface {
	// Submit records a contact-form message and alerts the admins.
	Submit(m models.ContactMessage) (*models.ContactMessage, error)
	// GetAll retrieves all contact messages, newest first (admin).
	GetAll() ([]models.ContactMessage, error)
	// Delete removes a contact message by ID (admin).
	Delete(id string) error
}

// DefaultInboxService is the production implementation.
type DefaultInboxService struct {
	Repo     inboxRepo.InboxRepository
	Notifier notification.NotificationService
}

// Submit records a contact-form message.
func (s *DefaultInboxService) Submit(m models.ContactMessage) (*models.ContactMessage, error) {
	if m.Name == "" || m.Message == "" {
		return nil, fmt.Errorf("name and message are required")
	}
	m.ID = uuid.New().String()
	m.Status = "unread"
	m.CreatedAt = time.Now()
	if err := s.Repo.Create(&m); err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}
	if s.Notifier != nil {
		s.Notifier.NotifyAdmins(models.NotificationSystem, "New Contact Message",
			fmt.Sprintf("%s sent a message via the contact form.", m.Name), map[string]string{
				"messageId": m.ID,
			})
	}
	return &m, nil
}

// GetAll retrieves all contact messages.
func (s *DefaultInboxService) GetAll() ([]models.ContactMessage, error) {
	return s.Repo.GetAll()
}

// Delete removes a contact message.
func (s *DefaultInboxService) Delete(id string) error {
	if id == "" {
		return fmt.Errorf("message ID is required")
	}
	return s.Repo.Delete(id)
}
