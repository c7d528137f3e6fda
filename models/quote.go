package models

import "time"

// Quote request statuses, advanced only by admin action.
const (
	QuotePending   = "pending"
	QuoteContacted = "contacted"
	QuoteConverted = "converted"
)

// QuoteRequest is a stored instant-price-estimate submission, distinct
// from a Booking. It never auto-expires.
type QuoteRequest struct {
	ID            string         `bson:"id" json:"id"`
	UserID        string         `bson:"user_id,omitempty" json:"userId,omitempty"`
	Name          string         `bson:"name" json:"name"`
	Phone         string         `bson:"phone" json:"phone"`
	Email         string         `bson:"email,omitempty" json:"email,omitempty"`
	ServiceType   string         `bson:"service_type" json:"serviceType"`
	Weight        float64        `bson:"weight,omitempty" json:"weight,omitempty"`
	Items         map[string]int `bson:"items,omitempty" json:"items,omitempty"`
	SelectiveWash bool           `bson:"selective_wash,omitempty" json:"selectiveWash,omitempty"`
	EstimatedCost int            `bson:"estimated_cost" json:"estimatedCost"`
	Status        string         `bson:"status" json:"status"`
	CreatedAt     time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updated_at" json:"updatedAt"`
}

// QuoteInput is the customer-facing quote submission.
type QuoteInput struct {
	Name          string         `json:"name"`
	Phone         string         `json:"phone"`
	Email         string         `json:"email"`
	ServiceType   string         `json:"serviceType"`
	Weight        float64        `json:"weight"`
	Items         map[string]int `json:"items"`
	SelectiveWash bool           `json:"selectiveWash"`
}

// ValidQuoteStatus reports whether s is a known quote status.
func ValidQuoteStatus(s string) bool {
	switch s {
	case QuotePending, QuoteContacted, QuoteConverted:
		return true
	}
	return false
}
