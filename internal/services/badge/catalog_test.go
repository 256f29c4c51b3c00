package badge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soko/internal/models"
)

func statusByID(t *testing.T, statuses []models.BadgeStatus, id models.BadgeID) models.BadgeStatus {
	t.Helper()
	for _, s := range statuses {
		if s.BadgeID == id {
			return s
		}
	}
	t.Fatalf("badge %s not found", id)
	return models.BadgeStatus{}
}

func TestEvaluateBadges_CatalogIsComplete(t *testing.T) {
	statuses := EvaluateBadges(models.SellerMetrics{}, models.SellerKPI{})
	require.Len(t, statuses, 5)

	ids := make([]models.BadgeID, 0, len(statuses))
	for _, s := range statuses {
		ids = append(ids, s.BadgeID)
	}
	assert.Equal(t, []models.BadgeID{
		models.BadgeTopRated,
		models.BadgeFastShipper,
		models.BadgeExcellentService,
		models.BadgeTrustedSeller,
		models.BadgePowerSeller,
	}, ids)
}

func TestTopRated(t *testing.T) {
	tests := []struct {
		name         string
		rating       float64
		wantUnlocked bool
		wantProgress int
	}{
		{"exactly at threshold", 4.5, true, 90},
		{"perfect rating", 5.0, true, 100},
		{"just below", 4.4, false, 88},
		{"no reviews", 0, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := statusByID(t, EvaluateBadges(models.SellerMetrics{AverageRating: tt.rating}, models.SellerKPI{}), models.BadgeTopRated)
			assert.Equal(t, tt.wantUnlocked, s.IsUnlocked)
			assert.Equal(t, tt.wantProgress, s.ProgressPercent)
		})
	}
}

func TestFastShipper(t *testing.T) {
	tests := []struct {
		name         string
		days         float64
		wantUnlocked bool
		wantProgress int
	}{
		{"two day average", 2, true, 60},
		{"same day shipping", 0, true, 100},
		{"three days", 3, false, 40},
		{"very slow", 10, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := statusByID(t, EvaluateBadges(models.SellerMetrics{ShippingSpeedDays: tt.days}, models.SellerKPI{}), models.BadgeFastShipper)
			assert.Equal(t, tt.wantUnlocked, s.IsUnlocked)
			assert.Equal(t, tt.wantProgress, s.ProgressPercent)
		})
	}
}

func TestExcellentService(t *testing.T) {
	s := statusByID(t, EvaluateBadges(models.SellerMetrics{PositiveReviewPercent: 90}, models.SellerKPI{}), models.BadgeExcellentService)
	assert.True(t, s.IsUnlocked)
	assert.Equal(t, 90, s.ProgressPercent)

	s = statusByID(t, EvaluateBadges(models.SellerMetrics{PositiveReviewPercent: 89}, models.SellerKPI{}), models.BadgeExcellentService)
	assert.False(t, s.IsUnlocked)
	assert.Equal(t, 89, s.ProgressPercent)
}

func TestTrustedSeller(t *testing.T) {
	t.Run("unlocked with low returns", func(t *testing.T) {
		s := statusByID(t, EvaluateBadges(
			models.SellerMetrics{ReturnRatePercent: 1.5},
			models.SellerKPI{TotalOrders: 120},
		), models.BadgeTrustedSeller)
		assert.True(t, s.IsUnlocked)
		assert.Equal(t, 100, s.ProgressPercent)
	})

	t.Run("return rate at threshold stays locked", func(t *testing.T) {
		s := statusByID(t, EvaluateBadges(
			models.SellerMetrics{ReturnRatePercent: 2},
			models.SellerKPI{TotalOrders: 120},
		), models.BadgeTrustedSeller)
		assert.False(t, s.IsUnlocked)
	})

	t.Run("progress tracks orders even when returns block the unlock", func(t *testing.T) {
		// 150 orders at a 5% return rate: full progress, still locked.
		// Known quirk, kept on purpose.
		s := statusByID(t, EvaluateBadges(
			models.SellerMetrics{ReturnRatePercent: 5},
			models.SellerKPI{TotalOrders: 150},
		), models.BadgeTrustedSeller)
		assert.False(t, s.IsUnlocked)
		assert.Equal(t, 100, s.ProgressPercent)
	})

	t.Run("partial progress", func(t *testing.T) {
		s := statusByID(t, EvaluateBadges(
			models.SellerMetrics{},
			models.SellerKPI{TotalOrders: 40},
		), models.BadgeTrustedSeller)
		assert.False(t, s.IsUnlocked)
		assert.Equal(t, 40, s.ProgressPercent)
	})
}

func TestPowerSeller(t *testing.T) {
	tests := []struct {
		name         string
		revenue      float64
		wantUnlocked bool
		wantProgress int
	}{
		{"at threshold", 20000, true, 100},
		{"above threshold", 80000, true, 100},
		{"halfway", 10000, false, 50},
		{"nothing sold", 0, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := statusByID(t, EvaluateBadges(models.SellerMetrics{}, models.SellerKPI{TotalRevenue: tt.revenue}), models.BadgePowerSeller)
			assert.Equal(t, tt.wantUnlocked, s.IsUnlocked)
			assert.Equal(t, tt.wantProgress, s.ProgressPercent)
		})
	}
}

func TestEvaluateBadges_Idempotent(t *testing.T) {
	m := models.SellerMetrics{AverageRating: 4.7, ShippingSpeedDays: 1.2, PositiveReviewPercent: 93, ReturnRatePercent: 0.8}
	kpi := models.SellerKPI{TotalOrders: 250, TotalRevenue: 31000}

	first := EvaluateBadges(m, kpi)
	second := EvaluateBadges(m, kpi)
	assert.Equal(t, first, second)
}
