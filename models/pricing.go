package models

import "time"

// PriceLine is a single line item in a service price list.
type PriceLine struct {
	Item  string `bson:"item" json:"item"`
	Price int    `bson:"price" json:"price"`
}

// ServicePricing is the per-service price table shown on the pricing page.
type ServicePricing struct {
	Name       string      `bson:"name" json:"name"`
	Turnaround string      `bson:"turnaround" json:"turnaround"`
	Items      []PriceLine `bson:"items" json:"items"`
}

// PricingConfig is the singleton pricing configuration document. It is
// created lazily with defaults on first read and overwritten wholesale on
// each admin save.
type PricingConfig struct {
	Items               map[string]int            `bson:"items" json:"items"`
	PickupCharge        int                       `bson:"pickup_charge" json:"pickupCharge"`
	FreePickupThreshold int                       `bson:"free_pickup_threshold" json:"freePickupThreshold"`
	Services            map[string]ServicePricing `bson:"services" json:"services"`
	UpdatedAt           time.Time                 `bson:"updated_at" json:"updatedAt"`
}

// Quote input kinds for the instant estimate calculator.
const (
	QuoteInputWeight = "weight"
	QuoteInputItems  = "items"
)

// ServiceRate describes how a service type is priced by the calculator.
type ServiceRate struct {
	InputType     string `json:"inputType"`
	PricePerKg    int    `json:"pricePerKg,omitempty"`
	PricePerPiece int    `json:"pricePerPiece,omitempty"`
}
