package notificationRepo

import "drdhobi/models"

// NotificationRepository defines methods for notification data access. All
// read/write operations are scoped to a single recipient.
type NotificationRepository interface {
	// Create inserts a new notification record.
	Create(n *models.Notification) error
	// ListByUser retrieves a user's notifications newest first, optionally
	// restricted to unread, capped at limit.
	ListByUser(userID string, unreadOnly bool, limit int) ([]models.Notification, error)
	// CountUnread returns the number of unread notifications for a user.
	CountUnread(userID string) (int, error)
	// MarkRead flips the given notifications to read, skipping any that do
	// not belong to userID.
	MarkRead(userID string, ids []string) error
	// MarkAllRead flips every unread notification for a user.
	MarkAllRead(userID string) error
	// Delete removes the given notifications, skipping any that do not
	// belong to userID.
	Delete(userID string, ids []string) error
}
