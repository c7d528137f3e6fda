package catalog

import "drdhobi/models"

// DefaultServices is the catalog seeded into an empty store so the public
// site has content before an admin has touched anything.
func DefaultServices() []models.ServiceItem {
	return []models.ServiceItem{
		{
			ID:   "dry-cleaning",
			Name: "Dry Cleaning",
			Icon: "dry-cleaning",
			Description: "Our premium dry cleaning service uses eco-friendly solvents and " +
				"expert techniques to restore your delicate garments to pristine condition.",
			Features: []string{
				"Eco-friendly solvent cleaning",
				"Hand finishing by experts",
				"Stain pre-treatment included",
				"Quality inspection before delivery",
				"Suitable for silk, wool, and designer wear",
			},
			Pricing: []models.PriceLine{
				{Item: "Shirt / Top", Price: 50},
				{Item: "Trousers / Jeans", Price: 60},
				{Item: "Suit (2-piece)", Price: 250},
				{Item: "Dress / Saree", Price: 100},
				{Item: "Jacket / Blazer", Price: 150},
			},
			Turnaround: "48 hours",
			Order:      1,
			IsActive:   true,
		},
		{
			ID:   "wash-fold",
			Name: "Wash & Fold",
			Icon: "wash-fold",
			Description: "Professional washing with soft water and premium detergents, " +
				"followed by neat folding and packaging. Perfect for everyday wear.",
			Features: []string{
				"Soft water washing technology",
				"Hypoallergenic detergents",
				"Separate wash for colors",
				"Neatly folded and packaged",
				"Weight-based pricing available",
			},
			Pricing: []models.PriceLine{
				{Item: "T-Shirt / Top", Price: 30},
				{Item: "Shirt (formal)", Price: 40},
				{Item: "Trousers / Jeans", Price: 40},
				{Item: "Bedsheet (single)", Price: 60},
				{Item: "Per kg (mixed)", Price: 80},
			},
			Turnaround: "24 hours",
			Order:      2,
			IsActive:   true,
		},
		{
			ID:   "express",
			Name: "Express Pickup",
			Icon: "express",
			Description: "Need it done fast? Our express service guarantees 30-minute " +
				"pickup and same-day delivery within Bangalore city limits.",
			Features: []string{
				"30-minute pickup guarantee",
				"Same-day delivery available",
				"Live rider tracking",
				"Priority processing",
				"Available 7 AM - 9 PM daily",
			},
			Pricing: []models.PriceLine{
				{Item: "Express surcharge", Price: 100},
				{Item: "Same-day delivery", Price: 150},
			},
			Turnaround: "Same day",
			Order:      3,
			IsActive:   true,
		},
		{
			ID:   "ironing",
			Name: "Premium Ironing",
			Icon: "ironing",
			Description: "Professional steam ironing with attention to every crease and " +
				"collar. Your clothes will look brand new.",
			Features: []string{
				"Professional steam ironing",
				"Collar and cuff attention",
				"Hanger delivery available",
				"Starch level customization",
				"Perfect for formal wear",
			},
			Pricing: []models.PriceLine{
				{Item: "Shirt / Top", Price: 20},
				{Item: "Trousers", Price: 25},
				{Item: "Dress / Saree", Price: 40},
				{Item: "Suit (2-piece)", Price: 80},
			},
			Turnaround: "24 hours",
			Order:      4,
			IsActive:   true,
		},
	}
}
