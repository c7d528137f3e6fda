package models

import "time"

// Booking statuses. This is a flat enumeration: any status may follow any
// other via an admin update.
const (
	BookingPending    = "pending"
	BookingConfirmed  = "confirmed"
	BookingInProgress = "in-progress"
	BookingCompleted  = "completed"
	BookingCancelled  = "cancelled"
)

// Booking represents a scheduled pickup/service request from a customer.
type Booking struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id,omitempty" json:"userId,omitempty"`
	Name      string    `bson:"name" json:"name"`
	Phone     string    `bson:"phone" json:"phone"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Service   string    `bson:"service" json:"service"`
	Date      string    `bson:"date" json:"date"`
	Slot      string    `bson:"slot" json:"slot"`
	Address   string    `bson:"address" json:"address"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// BookingInput is the customer-facing booking submission.
type BookingInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Service string `json:"service"`
	Date    string `json:"date"`
	Slot    string `json:"slot"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// ValidBookingStatus reports whether s is one of the five known statuses.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingInProgress, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}
