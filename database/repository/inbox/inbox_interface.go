package inboxRepo

import "drdhobi/models"

// InboxRepository defines methods for the flat contact-form inbox.
type InboxRepository interface {
	// Create inserts a new contact message.
	Create(m *models.ContactMessage) error
	// GetAll retrieves contact messages newest first.
	GetAll() ([]models.ContactMessage, error)
	// Delete removes a contact message by its ID.
	Delete(id string) error
}
