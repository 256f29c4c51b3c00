package analytics

import (
	"math"

	"soko/internal/models"
)

// ComputeRates derives the funnel percentage rates from raw totals.
// Every denominator is guarded: sparse or cold-start data must come
// out as 0, never NaN or Inf.
func ComputeRates(t models.FunnelTotals) models.RateSummary {
	return models.RateSummary{
		ConversionRate:      round2(ratio(float64(t.Purchases), float64(t.PageViews)) * 100),
		CartAbandonmentRate: round2(ratio(float64(t.CartAdds-t.Purchases), float64(t.CartAdds)) * 100),
		ReturnRate:          round2(ratio(float64(t.Returns), float64(t.Orders)) * 100),
		RefundRate:          round2(ratio(float64(t.Refunds), float64(t.Orders)) * 100),
	}
}

// ratio divides num by den, returning 0 when the denominator is not
// positive.
func ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

// round2 rounds to two decimal places at the point of output;
// intermediate sums keep full precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
