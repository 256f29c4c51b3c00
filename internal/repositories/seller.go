package repositories

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"soko/internal/models"
)

// metricsWindowDays is the trailing window over which revenue, order
// and review aggregates are computed.
const metricsWindowDays = 90

type SellerRepository interface {
	GetByPublicID(ctx context.Context, id uuid.UUID) (*models.Seller, error)
	GetSellerMetrics(ctx context.Context, sellerID uuid.UUID) (*models.SellerMetrics, error)
	Create(ctx context.Context, seller *models.Seller) error
}

type sellerRepository struct {
	db *gorm.DB
}

func NewSellerRepository(db *gorm.DB) SellerRepository {
	return &sellerRepository{db: db}
}

func (r *sellerRepository) GetByPublicID(ctx context.Context, id uuid.UUID) (*models.Seller, error) {
	var seller models.Seller
	err := r.db.WithContext(ctx).Where("public_id = ?", id).First(&seller).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &seller, nil
}

func (r *sellerRepository) Create(ctx context.Context, seller *models.Seller) error {
	if seller.PublicID == uuid.Nil {
		seller.PublicID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(seller).Error
}

// GetSellerMetrics materializes the performance snapshot the badge and
// tier engines score. All aggregates cover the trailing 90-day window
// and use COALESCE so a seller with no activity yields zeros, not NULL
// scan errors.
func (r *sellerRepository) GetSellerMetrics(ctx context.Context, sellerID uuid.UUID) (*models.SellerMetrics, error) {
	seller, err := r.GetByPublicID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, nil
	}

	since := time.Now().UTC().AddDate(0, 0, -metricsWindowDays)
	m := models.SellerMetrics{ResponseTimeHours: seller.AvgResponseHours}

	// Orders: counts, revenue, return/refund tallies, shipping speed.
	var (
		totalOrders  int64
		totalRevenue float64
		returned     int64
		refunded     int64
		avgShipDays  float64
	)
	err = r.db.WithContext(ctx).Model(&models.Order{}).
		Where("seller_id = ? AND status = ? AND created_at >= ?", seller.ID, "completed", since).
		Select(`COUNT(*),
			COALESCE(SUM(amount), 0),
			COALESCE(SUM(CASE WHEN returned THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN refunded THEN 1 ELSE 0 END), 0),
			COALESCE(AVG(EXTRACT(EPOCH FROM (shipped_at - created_at)) / 86400), 0)`).
		Row().Scan(&totalOrders, &totalRevenue, &returned, &refunded, &avgShipDays)
	if err != nil {
		return nil, fmt.Errorf("failed to get order stats: %w", err)
	}

	m.TotalOrders = totalOrders
	m.TotalRevenue = totalRevenue
	m.ShippingSpeedDays = avgShipDays
	if totalOrders > 0 {
		m.ReturnRatePercent = float64(returned) / float64(totalOrders) * 100
		m.RefundRatePercent = float64(refunded) / float64(totalOrders) * 100
	}

	// Reviews: average rating and positive share (rating >= 4).
	var (
		totalReviews int64
		avgRating    float64
		positive     int64
	)
	err = r.db.WithContext(ctx).Model(&models.Review{}).
		Where("seller_id = ? AND created_at >= ?", seller.ID, since).
		Select(`COUNT(*),
			COALESCE(AVG(rating), 0),
			COALESCE(SUM(CASE WHEN rating >= 4 THEN 1 ELSE 0 END), 0)`).
		Row().Scan(&totalReviews, &avgRating, &positive)
	if err != nil {
		return nil, fmt.Errorf("failed to get review stats: %w", err)
	}

	m.TotalReviews = totalReviews
	m.AverageRating = avgRating
	if totalReviews > 0 {
		m.PositiveReviewPercent = int(math.Round(float64(positive) / float64(totalReviews) * 100))
	}

	return &m, nil
}
