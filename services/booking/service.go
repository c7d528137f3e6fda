package booking

import (
	"errors"
	"fmt"

	bookingRepo "drdhobi/database/repository/booking"
	"drdhobi/models"
	"drdhobi/services/notification"
	"drdhobi/services/tasks"
	"drdhobi/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingService manages the booking record lifecycle.
type BookingService interface {
	// Create validates and stores a customer booking submission. userID may
	// be empty for unauthenticated submissions.
	Create(input models.BookingInput, userID string) (*models.Booking, error)
	// GetAll retrieves bookings, optionally filtered by status (admin).
	GetAll(status string) ([]models.Booking, error)
	// GetByUser retrieves a customer's own bookings.
	GetByUser(userID string) ([]models.Booking, error)
	// UpdateStatus sets a booking's status. Any status may follow any other.
	UpdateStatus(id, status string) error
	// Delete hard-deletes a booking. No notification is sent.
	Delete(id string) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Notifier notification.NotificationService
	Queue    tasks.Enqueuer // optional push queue
}

// ErrMissingFields is returned when a submission omits a required field.
var ErrMissingFields = errors.New("missing required fields")

// statusMessages is the fixed per-status notification body table.
var statusMessages = map[string]string{
	models.BookingPending:    "Your booking is pending confirmation.",
	models.BookingConfirmed:  "Your booking is confirmed. We will pick up your laundry soon.",
	models.BookingInProgress: "Your laundry is being processed.",
	models.BookingCompleted:  "Your laundry is ready for delivery!",
	models.BookingCancelled:  "Your booking has been cancelled.",
}

// Create validates and stores a booking, then fires the best-effort side
// effects: an in-app notification for the owning user and the admin push
// task. Side-effect failures are logged, never surfaced.
func (s *DefaultBookingService) Create(input models.BookingInput, userID string) (*models.Booking, error) {
	if input.Name == "" || input.Phone == "" || input.Service == "" ||
		input.Date == "" || input.Slot == "" || input.Address == "" {
		return nil, ErrMissingFields
	}

	b := &models.Booking{
		ID:      uuid.New().String(),
		UserID:  userID,
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Service: input.Service,
		Date:    input.Date,
		Slot:    input.Slot,
		Address: input.Address,
		Notes:   input.Notes,
		Status:  models.BookingPending,
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if userID != "" {
		s.Notifier.Notify(userID, models.NotificationBooking,
			"Booking Confirmed",
			fmt.Sprintf("Your %s booking for %s has been received.", b.Service, b.Date),
			map[string]string{"bookingId": b.ID})
	}

	if s.Queue != nil {
		payload := models.BookingPushPayload{
			BookingID: b.ID,
			Name:      b.Name,
			Service:   b.Service,
			Phone:     b.Phone,
		}
		if err := s.Queue.EnqueueBookingPush(payload); err != nil {
			utils.GetLogger().Error("failed to enqueue booking push",
				zap.String("bookingID", b.ID), zap.Error(err))
		}
	}

	return b, nil
}

// GetAll retrieves bookings, optionally filtered by status.
func (s *DefaultBookingService) GetAll(status string) ([]models.Booking, error) {
	if status != "" && !models.ValidBookingStatus(status) {
		return nil, fmt.Errorf("invalid booking status %q", status)
	}
	return s.Repo.GetAll(status)
}

// GetByUser retrieves a customer's own bookings.
func (s *DefaultBookingService) GetByUser(userID string) ([]models.Booking, error) {
	return s.Repo.GetByUserID(userID)
}

// UpdateStatus sets a booking's status. If the booking has an owning user,
// exactly one notification is created for them with the status-specific
// message.
func (s *DefaultBookingService) UpdateStatus(id, status string) error {
	if !models.ValidBookingStatus(status) {
		return fmt.Errorf("invalid booking status %q", status)
	}

	b, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.SetStatus(id, status); err != nil {
		return err
	}

	if b.UserID != "" {
		s.Notifier.Notify(b.UserID, models.NotificationBookingStatus,
			"Booking Update",
			statusMessages[status],
			map[string]string{"bookingId": id})
	}
	return nil
}

// Delete hard-deletes a booking. No notification is sent on delete.
func (s *DefaultBookingService) Delete(id string) error {
	return s.Repo.Delete(id)
}
