package models

import (
	"time"

	"github.com/google/uuid"
)

// SellerTier is the reputation/volume bracket of a seller.
type SellerTier string

const (
	TierBronze   SellerTier = "bronze"
	TierSilver   SellerTier = "silver"
	TierGold     SellerTier = "gold"
	TierPlatinum SellerTier = "platinum"
)

// Seller is a marketplace seller account. AvgResponseHours is
// maintained by the messaging system and read here as a fact.
type Seller struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	PublicID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"public_id"`
	StoreName        string    `gorm:"not null" json:"store_name"`
	Status           string    `gorm:"default:'active'" json:"status"`
	AvgResponseHours float64   `gorm:"default:0" json:"avg_response_hours"`
	JoinedAt         time.Time `json:"joined_at"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SellerMetrics is the materialized performance snapshot the badge and
// tier engines score. Revenue and order counts cover the trailing 90-day
// window; the repository layer owns the windowing.
type SellerMetrics struct {
	AverageRating         float64    `json:"average_rating"`
	TotalReviews          int64      `json:"total_reviews"`
	PositiveReviewPercent int        `json:"positive_review_percent"`
	ResponseTimeHours     float64    `json:"response_time_hours"`
	ReturnRatePercent     float64    `json:"return_rate_percent"`
	RefundRatePercent     float64    `json:"refund_rate_percent"`
	ShippingSpeedDays     float64    `json:"shipping_speed_days"`
	TotalRevenue          float64    `json:"total_revenue"`
	TotalOrders           int64      `json:"total_orders"`
	SellerTier            SellerTier `json:"seller_tier"`
	TierLevel             int        `json:"tier_level"`
}

// SellerKPI carries the volume indicators the badge engine reads
// alongside the quality metrics.
type SellerKPI struct {
	TotalOrders  int64   `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
}
