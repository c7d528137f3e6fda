package models

import "time"

// AdminToken is a registered FCM device token belonging to an admin. The
// booking push worker multicasts to every registered token and prunes the
// ones the push provider rejects.
type AdminToken struct {
	Token     string    `bson:"token" json:"token"`
	UserID    string    `bson:"user_id" json:"userId"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// BookingPushPayload is the task payload carried by the booking push queue.
type BookingPushPayload struct {
	BookingID string `json:"bookingId"`
	Name      string `json:"name"`
	Service   string `json:"service"`
	Phone     string `json:"phone"`
}
