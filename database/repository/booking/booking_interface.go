package bookingRepo

import "drdhobi/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(b *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetAll retrieves bookings newest first, optionally filtered by status.
	GetAll(status string) ([]models.Booking, error)
	// GetByUserID retrieves a user's own bookings newest first.
	GetByUserID(userID string) ([]models.Booking, error)
	// SetStatus writes a new status and stamps updated_at.
	SetStatus(id, status string) error
	// Delete hard-deletes a booking record.
	Delete(id string) error
}
