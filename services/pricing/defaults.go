package pricing

import "drdhobi/models"

// DefaultConfig returns the hardcoded pricing configuration used when none
// has ever been saved. Prices are in whole rupees.
func DefaultConfig() *models.PricingConfig {
	return &models.PricingConfig{
		Items: map[string]int{
			"shirts":    30,
			"trousers":  40,
			"tshirts":   25,
			"jeans":     50,
			"sarees":    80,
			"kurtas":    45,
			"bedsheets": 60,
			"towels":    15,
		},
		PickupCharge:        50,
		FreePickupThreshold: 300,
		Services: map[string]models.ServicePricing{
			"dry-cleaning": {
				Name:       "Dry Cleaning",
				Turnaround: "48 hours",
				Items: []models.PriceLine{
					{Item: "Shirt / Top", Price: 50},
					{Item: "Trousers / Jeans", Price: 60},
					{Item: "Suit (2-piece)", Price: 250},
					{Item: "Dress / Saree", Price: 100},
					{Item: "Jacket / Blazer", Price: 150},
				},
			},
			"wash-fold": {
				Name:       "Wash & Fold",
				Turnaround: "24 hours",
				Items: []models.PriceLine{
					{Item: "T-Shirt / Top", Price: 30},
					{Item: "Shirt (formal)", Price: 40},
					{Item: "Trousers / Jeans", Price: 40},
					{Item: "Bedsheet (single)", Price: 60},
					{Item: "Per kg (mixed)", Price: 80},
				},
			},
			"express": {
				Name:       "Express Pickup",
				Turnaround: "Same day",
				Items: []models.PriceLine{
					{Item: "Express surcharge", Price: 100},
					{Item: "Same-day delivery", Price: 150},
				},
			},
			"ironing": {
				Name:       "Premium Ironing",
				Turnaround: "24 hours",
				Items: []models.PriceLine{
					{Item: "Shirt / Top", Price: 20},
					{Item: "Trousers", Price: 25},
					{Item: "Dress / Saree", Price: 40},
					{Item: "Suit (2-piece)", Price: 80},
				},
			},
		},
	}
}

// ServiceRates maps a quote service type to how it is priced by the
// instant estimate calculator.
var ServiceRates = map[string]models.ServiceRate{
	"wash-fold":  {InputType: models.QuoteInputWeight, PricePerKg: 40},
	"dry-clean":  {InputType: models.QuoteInputItems, PricePerPiece: 150},
	"steam-iron": {InputType: models.QuoteInputItems, PricePerPiece: 25},
	"premium":    {InputType: models.QuoteInputItems, PricePerPiece: 200},
}
