package models

import "time"

// Tracking event kinds.
const (
	EventPageView = "page_view"
	EventCartAdd  = "cart_add"
	EventPurchase = "purchase"
)

// Order is a completed or in-flight marketplace order row.
type Order struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	SellerID    uint       `gorm:"index;not null" json:"seller_id"`
	ListingID   uint       `gorm:"index;not null" json:"listing_id"`
	Amount      float64    `gorm:"not null" json:"amount"`
	Status      string     `gorm:"default:'pending'" json:"status"`
	Returned    bool       `gorm:"default:false" json:"returned"`
	Refunded    bool       `gorm:"default:false" json:"refunded"`
	ShippedAt   *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Review is a buyer review of a listing.
type Review struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	SellerID  uint      `gorm:"index;not null" json:"seller_id"`
	ListingID uint      `gorm:"index;not null" json:"listing_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// TrackingEvent is a raw storefront event (view, cart add, purchase).
type TrackingEvent struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	SellerID   uint      `gorm:"index" json:"seller_id"`
	ListingID  uint      `gorm:"index" json:"listing_id"`
	Kind       string    `gorm:"index;not null" json:"kind"`
	Category   string    `json:"category"`
	Amount     float64   `json:"amount"`
	OccurredAt time.Time `gorm:"index;not null" json:"occurred_at"`
}

// CommerceRecord is the flat, already-fetched row shape the metrics
// reducer consumes. Amount is only meaningful for purchase records.
type CommerceRecord struct {
	Kind       string    `json:"kind"`
	ListingID  uint      `json:"listing_id"`
	Category   string    `json:"category"`
	Amount     float64   `json:"amount"`
	OccurredAt time.Time `json:"occurred_at"`
}

// DailyMetric is one day of reduced storefront activity.
type DailyMetric struct {
	Date       string  `json:"date"`
	Revenue    float64 `json:"revenue"`
	Orders     int64   `json:"orders"`
	Views      int64   `json:"views"`
	Conversion float64 `json:"conversion"`
}

// CategoryMetric is reduced activity for one category.
type CategoryMetric struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
	Orders   int64   `json:"orders"`
	Views    int64   `json:"views"`
}

// FunnelTotals are the raw counts the rate computations divide over.
type FunnelTotals struct {
	PageViews int64 `json:"page_views"`
	CartAdds  int64 `json:"cart_adds"`
	Purchases int64 `json:"purchases"`
	Orders    int64 `json:"orders"`
	Returns   int64 `json:"returns"`
	Refunds   int64 `json:"refunds"`
}

// RateSummary holds the derived percentage rates, rounded to two
// decimal places. A zero denominator always yields a zero rate.
type RateSummary struct {
	ConversionRate      float64 `json:"conversion_rate"`
	CartAbandonmentRate float64 `json:"cart_abandonment_rate"`
	ReturnRate          float64 `json:"return_rate"`
	RefundRate          float64 `json:"refund_rate"`
}
