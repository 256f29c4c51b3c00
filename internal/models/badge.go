package models

import "time"

// BadgeID names one of the fixed seller achievement badges.
type BadgeID string

const (
	BadgeTopRated         BadgeID = "top_rated"
	BadgeFastShipper      BadgeID = "fast_shipper"
	BadgeExcellentService BadgeID = "excellent_service"
	BadgeTrustedSeller    BadgeID = "trusted_seller"
	BadgePowerSeller      BadgeID = "power_seller"
)

// BadgeUnlock records the first time a seller unlocked a badge.
type BadgeUnlock struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	SellerID   uint      `gorm:"uniqueIndex:idx_seller_badge;not null" json:"seller_id"`
	BadgeID    BadgeID   `gorm:"uniqueIndex:idx_seller_badge;not null" json:"badge_id"`
	UnlockedAt time.Time `gorm:"not null" json:"unlocked_at"`
}

// BadgeStatus is the current state of one badge for one seller.
// UnlockedAt is populated from persisted history when available; the
// engine itself only reports the current unlocked state and progress.
type BadgeStatus struct {
	BadgeID         BadgeID    `json:"badge_id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	IsUnlocked      bool       `json:"is_unlocked"`
	ProgressPercent int        `json:"progress_percent"`
	UnlockedAt      *time.Time `json:"unlocked_at,omitempty"`
}
