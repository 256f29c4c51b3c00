package badge

import "soko/internal/models"

// Tier revenue thresholds (trailing window, supplied by the caller).
// Boundaries are inclusive: exactly hitting a threshold reaches the
// higher tier, so evaluation goes top down.
const (
	tierSilverMin   = 5000.0
	tierGoldMin     = 20000.0
	tierPlatinumMin = 50000.0
)

// ComputeTier places a seller in a reputation tier from trailing
// revenue. Tier never decreases as revenue grows.
func ComputeTier(totalRevenue float64) (models.SellerTier, int) {
	switch {
	case totalRevenue >= tierPlatinumMin:
		return models.TierPlatinum, 4
	case totalRevenue >= tierGoldMin:
		return models.TierGold, 3
	case totalRevenue >= tierSilverMin:
		return models.TierSilver, 2
	default:
		return models.TierBronze, 1
	}
}
