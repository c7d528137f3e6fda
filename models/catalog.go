package models

import "time"

// ServiceItem is an entry in the public service catalog.
type ServiceItem struct {
	ID          string      `bson:"id" json:"id"`
	Name        string      `bson:"name" json:"name"`
	Icon        string      `bson:"icon" json:"icon"`
	Description string      `bson:"description" json:"description"`
	Features    []string    `bson:"features" json:"features"`
	Pricing     []PriceLine `bson:"pricing" json:"pricing"`
	Turnaround  string      `bson:"turnaround" json:"turnaround"`
	Order       int         `bson:"order" json:"order"`
	IsActive    bool        `bson:"is_active" json:"isActive"`
	CreatedAt   time.Time   `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time   `bson:"updated_at" json:"updatedAt"`
}
