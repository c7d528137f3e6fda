package notification

import (
	notificationRepo "drdhobi/database/repository/notification"
	userRepo "drdhobi/database/repository/user"
	"drdhobi/models"
	"drdhobi/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationService creates and manages in-app notification records.
// Creation is best-effort: failures are logged, never surfaced to the actor
// whose action triggered them, so the primary action still succeeds.
type NotificationService interface {
	// Notify creates one notification record for a single recipient.
	Notify(userID, ntype, title, body string, data map[string]string)
	// NotifyAdmins creates one notification record per admin profile. This
	// is a broadcast enumerated by query, one record per match.
	NotifyAdmins(ntype, title, body string, data map[string]string)
	// List returns a user's notifications plus their unread count.
	List(userID string, unreadOnly bool, limit int) ([]models.Notification, int, error)
	// MarkRead flips the given notifications to read.
	MarkRead(userID string, ids []string) error
	// MarkAllRead flips every unread notification for the user.
	MarkAllRead(userID string) error
	// Delete removes the given notifications.
	Delete(userID string, ids []string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo  notificationRepo.NotificationRepository
	Users userRepo.UserRepository
}

// Notify creates one notification record for a single recipient.
func (s *DefaultNotificationService) Notify(userID, ntype, title, body string, data map[string]string) {
	if userID == "" {
		return
	}
	n := &models.Notification{
		ID:     uuid.New().String(),
		UserID: userID,
		Type:   ntype,
		Title:  title,
		Body:   body,
		Data:   data,
	}
	if err := s.Repo.Create(n); err != nil {
		utils.GetLogger().Error("failed to create notification",
			zap.String("userID", userID), zap.String("type", ntype), zap.Error(err))
	}
}

// NotifyAdmins creates one notification record for every admin profile.
func (s *DefaultNotificationService) NotifyAdmins(ntype, title, body string, data map[string]string) {
	admins, err := s.Users.GetAdmins()
	if err != nil {
		utils.GetLogger().Error("failed to enumerate admins for notification", zap.Error(err))
		return
	}
	for _, admin := range admins {
		s.Notify(admin.ID, ntype, title, body, data)
	}
}

// List returns a user's notifications plus their unread count.
func (s *DefaultNotificationService) List(userID string, unreadOnly bool, limit int) ([]models.Notification, int, error) {
	notifs, err := s.Repo.ListByUser(userID, unreadOnly, limit)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.Repo.CountUnread(userID)
	if err != nil {
		return nil, 0, err
	}
	return notifs, unread, nil
}

// MarkRead flips the given notifications to read.
func (s *DefaultNotificationService) MarkRead(userID string, ids []string) error {
	return s.Repo.MarkRead(userID, ids)
}

// MarkAllRead flips every unread notification for the user.
func (s *DefaultNotificationService) MarkAllRead(userID string) error {
	return s.Repo.MarkAllRead(userID)
}

// Delete removes the given notifications.
func (s *DefaultNotificationService) Delete(userID string, ids []string) error {
	return s.Repo.Delete(userID, ids)
}
