package badge

import (
	"math"

	"soko/internal/models"
)

// Unlock thresholds.
const (
	topRatedMinRating      = 4.5
	fastShipperMaxDays     = 2.0
	fastShipperScaleDays   = 5.0
	excellentServiceMinPct = 90
	trustedSellerMinOrders = 100
	trustedSellerMaxReturn = 2.0
)

// Definition is one badge rule: a display identity, an unlock
// predicate, and a progress formula. Progress is reported even when
// the badge is unlocked and is capped at 100.
type Definition struct {
	ID          models.BadgeID
	Name        string
	Description string
	Unlocked    func(models.SellerMetrics, models.SellerKPI) bool
	Progress    func(models.SellerMetrics, models.SellerKPI) int
}

// Catalog is the fixed badge set. Order is the display order.
//
// Note: trusted_seller's progress tracks order count only; the return
// rate condition gates the unlock but does not feed progress. A seller
// over 100 orders with a high return rate shows 100% progress while
// staying locked. This mirrors observed product behavior; do not
// "fix" it without a product decision.
var Catalog = []Definition{
	{
		ID:          models.BadgeTopRated,
		Name:        "Top Rated",
		Description: "Maintain an average rating of 4.5 or above",
		Unlocked: func(m models.SellerMetrics, _ models.SellerKPI) bool {
			return m.AverageRating >= topRatedMinRating
		},
		Progress: func(m models.SellerMetrics, _ models.SellerKPI) int {
			return pct(m.AverageRating / 5 * 100)
		},
	},
	{
		ID:          models.BadgeFastShipper,
		Name:        "Fast Shipper",
		Description: "Ship orders within 2 days on average",
		Unlocked: func(m models.SellerMetrics, _ models.SellerKPI) bool {
			return m.ShippingSpeedDays <= fastShipperMaxDays
		},
		Progress: func(m models.SellerMetrics, _ models.SellerKPI) int {
			return pct((1 - math.Min(m.ShippingSpeedDays/fastShipperScaleDays, 1)) * 100)
		},
	},
	{
		ID:          models.BadgeExcellentService,
		Name:        "Excellent Service",
		Description: "Keep 90% or more of reviews positive",
		Unlocked: func(m models.SellerMetrics, _ models.SellerKPI) bool {
			return m.PositiveReviewPercent >= excellentServiceMinPct
		},
		Progress: func(m models.SellerMetrics, _ models.SellerKPI) int {
			return pct(float64(m.PositiveReviewPercent))
		},
	},
	{
		ID:          models.BadgeTrustedSeller,
		Name:        "Trusted Seller",
		Description: "Complete 100 orders with a return rate under 2%",
		Unlocked: func(m models.SellerMetrics, k models.SellerKPI) bool {
			return k.TotalOrders >= trustedSellerMinOrders && m.ReturnRatePercent < trustedSellerMaxReturn
		},
		Progress: func(_ models.SellerMetrics, k models.SellerKPI) int {
			return pct(float64(k.TotalOrders) / trustedSellerMinOrders * 100)
		},
	},
	{
		ID:          models.BadgePowerSeller,
		Name:        "Power Seller",
		Description: "Reach 20,000 in trailing revenue",
		Unlocked: func(_ models.SellerMetrics, k models.SellerKPI) bool {
			return k.TotalRevenue >= tierGoldMin
		},
		Progress: func(_ models.SellerMetrics, k models.SellerKPI) int {
			return pct(k.TotalRevenue / tierGoldMin * 100)
		},
	},
}

// Evaluate runs a badge catalog against the seller's current state.
func Evaluate(defs []Definition, m models.SellerMetrics, kpi models.SellerKPI) []models.BadgeStatus {
	statuses := make([]models.BadgeStatus, 0, len(defs))
	for _, def := range defs {
		statuses = append(statuses, models.BadgeStatus{
			BadgeID:         def.ID,
			Name:            def.Name,
			Description:     def.Description,
			IsUnlocked:      def.Unlocked(m, kpi),
			ProgressPercent: def.Progress(m, kpi),
		})
	}
	return statuses
}

// EvaluateBadges evaluates the standard catalog.
func EvaluateBadges(m models.SellerMetrics, kpi models.SellerKPI) []models.BadgeStatus {
	return Evaluate(Catalog, m, kpi)
}

// pct rounds a percentage and clamps it to 0-100.
func pct(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(math.Round(v))
}
