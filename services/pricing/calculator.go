package pricing

import (
	"math"

	"drdhobi/models"
)

// Estimate computes the instant quote total. Weight-based services charge
// per kilogram; item-based services charge per piece. A pickup charge is
// added only when the subtotal is positive but below the free-pickup
// threshold, so an empty order never incurs pickup. Negative quantities and
// weights clamp to zero before summation.
func Estimate(rate models.ServiceRate, weight float64, items map[string]int, pickupCharge, freePickupThreshold int) int {
	subtotal := 0

	switch rate.InputType {
	case models.QuoteInputWeight:
		if weight < 0 {
			weight = 0
		}
		subtotal = int(math.Round(weight * float64(rate.PricePerKg)))
	case models.QuoteInputItems:
		for _, qty := range items {
			if qty > 0 {
				subtotal += qty * rate.PricePerPiece
			}
		}
	}

	total := subtotal
	if subtotal > 0 && subtotal < freePickupThreshold {
		total += pickupCharge
	}
	return total
}
