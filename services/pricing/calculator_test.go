package pricing

import (
	"testing"

	"drdhobi/models"

	"github.com/stretchr/testify/assert"
)

func TestEstimateWeightBased(t *testing.T) {
	rate := ServiceRates["wash-fold"]

	// 5 kg at 40/kg = 200, below the 300 threshold so pickup applies.
	total := Estimate(rate, 5, nil, 50, 300)
	assert.Equal(t, 250, total)

	// 10 kg at 40/kg = 400, above the threshold: no pickup charge.
	total = Estimate(rate, 10, nil, 50, 300)
	assert.Equal(t, 400, total)
}

func TestEstimateItemBased(t *testing.T) {
	rate := ServiceRates["dry-clean"]

	// 10 garments at 150/pc = 1500, well past free pickup.
	total := Estimate(rate, 0, map[string]int{"shirts": 6, "trousers": 4}, 50, 300)
	assert.Equal(t, 1500, total)

	// A single garment stays under the threshold and pays pickup.
	total = Estimate(rate, 0, map[string]int{"shirts": 1}, 50, 300)
	assert.Equal(t, 200, total)
}

func TestEstimateZeroSubtotalNeverPaysPickup(t *testing.T) {
	assert.Equal(t, 0, Estimate(ServiceRates["wash-fold"], 0, nil, 50, 300))
	assert.Equal(t, 0, Estimate(ServiceRates["dry-clean"], 0, map[string]int{}, 50, 300))
	assert.Equal(t, 0, Estimate(ServiceRates["dry-clean"], 0, nil, 50, 300))
}

func TestEstimateClampsNegatives(t *testing.T) {
	assert.Equal(t, 0, Estimate(ServiceRates["wash-fold"], -3, nil, 50, 300))

	// Negative quantities are ignored, not subtracted.
	total := Estimate(ServiceRates["steam-iron"], 0, map[string]int{"shirts": 4, "towels": -2}, 50, 300)
	assert.Equal(t, 150, total) // 4*25 + 50 pickup
}

func TestEstimateRoundsFractionalWeight(t *testing.T) {
	rate := models.ServiceRate{InputType: models.QuoteInputWeight, PricePerKg: 40}

	// 2.6 kg * 40 = 104
	assert.Equal(t, 154, Estimate(rate, 2.6, nil, 50, 300))
	// 2.51 * 40 = 100.4 rounds to 100
	assert.Equal(t, 150, Estimate(rate, 2.51, nil, 50, 300))
}

func TestEstimateExactThresholdIsFree(t *testing.T) {
	rate := models.ServiceRate{InputType: models.QuoteInputItems, PricePerPiece: 150}

	// Exactly at the threshold: pickup is free.
	assert.Equal(t, 300, Estimate(rate, 0, map[string]int{"suits": 2}, 50, 300))
	// One rupee below: pickup applies.
	rate.PricePerPiece = 299
	assert.Equal(t, 349, Estimate(rate, 0, map[string]int{"suits": 1}, 50, 300))
}

func TestEstimateLinearInQuantity(t *testing.T) {
	rate := ServiceRates["premium"]
	base := Estimate(rate, 0, map[string]int{"suits": 2}, 0, 0)
	double := Estimate(rate, 0, map[string]int{"suits": 4}, 0, 0)
	assert.Equal(t, 2*base, double)
}
