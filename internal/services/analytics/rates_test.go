package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"soko/internal/models"
)

func TestComputeRates(t *testing.T) {
	t.Run("typical funnel", func(t *testing.T) {
		rates := ComputeRates(models.FunnelTotals{
			PageViews: 1000,
			CartAdds:  120,
			Purchases: 30,
			Orders:    30,
			Returns:   3,
			Refunds:   1,
		})

		assert.Equal(t, 3.0, rates.ConversionRate)
		assert.Equal(t, 75.0, rates.CartAbandonmentRate)
		assert.Equal(t, 10.0, rates.ReturnRate)
		assert.Equal(t, 3.33, rates.RefundRate)
	})

	t.Run("zero page views never yields NaN", func(t *testing.T) {
		rates := ComputeRates(models.FunnelTotals{Purchases: 50})
		assert.Equal(t, 0.0, rates.ConversionRate)
	})

	t.Run("empty totals yield all zeros", func(t *testing.T) {
		rates := ComputeRates(models.FunnelTotals{})
		assert.Equal(t, models.RateSummary{}, rates)
	})

	t.Run("rounded to two decimals", func(t *testing.T) {
		rates := ComputeRates(models.FunnelTotals{PageViews: 3, Purchases: 1})
		assert.Equal(t, 33.33, rates.ConversionRate)
	})

	t.Run("more purchases than cart adds clamps via guard", func(t *testing.T) {
		// Direct purchases without a cart add produce a negative
		// abandonment numerator; the denominator guard still applies
		// and the arithmetic stays finite.
		rates := ComputeRates(models.FunnelTotals{CartAdds: 2, Purchases: 5})
		assert.Equal(t, -150.0, rates.CartAbandonmentRate)
	})
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.0, ratio(10, 0))
	assert.Equal(t, 0.0, ratio(10, -1))
	assert.Equal(t, 0.5, ratio(1, 2))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.33, round2(3.3333))
	assert.Equal(t, 3.34, round2(3.336))
	assert.Equal(t, 0.0, round2(0))
}
