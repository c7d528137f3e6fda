package models

import "time"

// Conversation statuses, transitioned by admin choice. A customer message
// into a resolved conversation reopens it; admin messages never change
// status as a side effect.
const (
	ConversationOpen     = "open"
	ConversationPending  = "pending"
	ConversationResolved = "resolved"
	ConversationClosed   = "closed"
)

// Conversation is a support chat thread between one customer and the admin
// team collectively. The two unread counters are independent: exactly one
// of them increments per new message, keyed by the recipient side.
type Conversation struct {
	ID                string    `bson:"id" json:"id"`
	UserID            string    `bson:"user_id" json:"userId"`
	UserName          string    `bson:"user_name" json:"userName"`
	UserEmail         string    `bson:"user_email" json:"userEmail"`
	AssignedAdminID   string    `bson:"assigned_admin_id,omitempty" json:"assignedAdminId,omitempty"`
	AssignedAdminName string    `bson:"assigned_admin_name,omitempty" json:"assignedAdminName,omitempty"`
	Status            string    `bson:"status" json:"status"`
	Subject           string    `bson:"subject" json:"subject"`
	LastMessage       string    `bson:"last_message" json:"lastMessage"`
	LastMessageAt     time.Time `bson:"last_message_at" json:"lastMessageAt"`
	LastMessageBy     string    `bson:"last_message_by" json:"lastMessageBy"`
	UnreadByUser      int       `bson:"unread_by_user" json:"unreadByUser"`
	UnreadByAdmin     int       `bson:"unread_by_admin" json:"unreadByAdmin"`
	RelatedBookingID  string    `bson:"related_booking_id,omitempty" json:"relatedBookingId,omitempty"`
	CreatedAt         time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updatedAt"`
}

// ChatMessage is an append-only message inside a conversation.
type ChatMessage struct {
	ID             string    `bson:"id" json:"id"`
	ConversationID string    `bson:"conversation_id" json:"conversationId"`
	SenderID       string    `bson:"sender_id" json:"senderId"`
	SenderName     string    `bson:"sender_name" json:"senderName"`
	SenderRole     string    `bson:"sender_role" json:"senderRole"`
	Message        string    `bson:"message" json:"message"`
	MessageType    string    `bson:"message_type" json:"messageType"`
	Read           bool      `bson:"read" json:"read"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}

// ValidConversationStatus reports whether s is a known conversation status.
func ValidConversationStatus(s string) bool {
	switch s {
	case ConversationOpen, ConversationPending, ConversationResolved, ConversationClosed:
		return true
	}
	return false
}
