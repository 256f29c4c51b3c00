package models

import (
	"time"

	"github.com/google/uuid"
)

// Listing is a marketplace product listing as stored by the catalog.
type Listing struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	PublicID      uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"public_id"`
	SellerID      uint       `gorm:"index;not null" json:"seller_id"`
	Title         string     `gorm:"not null" json:"title"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Tags          StringList `gorm:"type:jsonb" json:"tags"`
	Price         float64    `gorm:"not null" json:"price"`
	DiscountPrice *float64   `json:"discount_price,omitempty"`
	StockQuantity int        `gorm:"default:0" json:"stock_quantity"`
	ImageCount    int        `gorm:"default:0" json:"image_count"`
	TargetKeyword *string    `json:"target_keyword,omitempty"`
	Status        string     `gorm:"default:'active'" json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ListingFacts is the immutable snapshot of a listing that the SEO
// evaluators score. Optional inputs are pointers: a nil TargetKeyword
// means "no keyword supplied", which is not the same as an empty string.
type ListingFacts struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discount_price,omitempty"`
	StockQuantity int      `json:"stock_quantity"`
	ImageCount    int      `json:"image_count"`
	TargetKeyword *string  `json:"target_keyword,omitempty"`
}

// Facts extracts the scoring snapshot from a stored listing.
func (l *Listing) Facts() ListingFacts {
	return ListingFacts{
		Title:         l.Title,
		Description:   l.Description,
		Category:      l.Category,
		Tags:          l.Tags,
		Price:         l.Price,
		DiscountPrice: l.DiscountPrice,
		StockQuantity: l.StockQuantity,
		ImageCount:    l.ImageCount,
		TargetKeyword: l.TargetKeyword,
	}
}
