package models

import "time"

// Notification types.
const (
	NotificationMessage       = "message"
	NotificationBooking       = "booking"
	NotificationBookingStatus = "booking-status"
	NotificationSystem        = "system"
)

// Notification is created synchronously alongside the event that causes it
// (new booking, status change, new chat message). Delivery to a device is a
// best-effort side channel; the record itself is the source of truth.
type Notification struct {
	ID        string            `bson:"id" json:"id"`
	UserID    string            `bson:"user_id" json:"userId"`
	Type      string            `bson:"type" json:"type"`
	Title     string            `bson:"title" json:"title"`
	Body      string            `bson:"body" json:"body"`
	Data      map[string]string `bson:"data,omitempty" json:"data,omitempty"`
	Read      bool              `bson:"read" json:"read"`
	CreatedAt time.Time         `bson:"created_at" json:"createdAt"`
}
