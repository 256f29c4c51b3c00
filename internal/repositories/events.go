package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"soko/internal/models"
)

type EventRepository interface {
	GetSellerRecords(ctx context.Context, sellerID uuid.UUID, start, end time.Time) ([]models.CommerceRecord, error)
	GetSellerFunnelTotals(ctx context.Context, sellerID uuid.UUID, start, end time.Time) (*models.FunnelTotals, error)
	Record(ctx context.Context, event *models.TrackingEvent) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Record(ctx context.Context, event *models.TrackingEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) GetSellerRecords(ctx context.Context, sellerID uuid.UUID, start, end time.Time) ([]models.CommerceRecord, error) {
	internalID, err := r.resolveSeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	var events []models.TrackingEvent
	err = r.db.WithContext(ctx).
		Where("seller_id = ? AND occurred_at BETWEEN ? AND ?", internalID, start, end).
		Order("occurred_at").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get tracking events: %w", err)
	}

	records := make([]models.CommerceRecord, 0, len(events))
	for _, e := range events {
		records = append(records, models.CommerceRecord{
			Kind:       e.Kind,
			ListingID:  e.ListingID,
			Category:   e.Category,
			Amount:     e.Amount,
			OccurredAt: e.OccurredAt,
		})
	}
	return records, nil
}

func (r *eventRepository) GetSellerFunnelTotals(ctx context.Context, sellerID uuid.UUID, start, end time.Time) (*models.FunnelTotals, error) {
	internalID, err := r.resolveSeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	var t models.FunnelTotals
	err = r.db.WithContext(ctx).Model(&models.TrackingEvent{}).
		Where("seller_id = ? AND occurred_at BETWEEN ? AND ?", internalID, start, end).
		Select(`COALESCE(SUM(CASE WHEN kind = 'page_view' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN kind = 'cart_add' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN kind = 'purchase' THEN 1 ELSE 0 END), 0)`).
		Row().Scan(&t.PageViews, &t.CartAdds, &t.Purchases)
	if err != nil {
		return nil, fmt.Errorf("failed to get funnel totals: %w", err)
	}

	err = r.db.WithContext(ctx).Model(&models.Order{}).
		Where("seller_id = ? AND created_at BETWEEN ? AND ?", internalID, start, end).
		Select(`COUNT(*),
			COALESCE(SUM(CASE WHEN returned THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN refunded THEN 1 ELSE 0 END), 0)`).
		Row().Scan(&t.Orders, &t.Returns, &t.Refunds)
	if err != nil {
		return nil, fmt.Errorf("failed to get order totals: %w", err)
	}
	return &t, nil
}

func (r *eventRepository) resolveSeller(ctx context.Context, sellerID uuid.UUID) (uint, error) {
	var seller models.Seller
	if err := r.db.WithContext(ctx).Where("public_id = ?", sellerID).First(&seller).Error; err != nil {
		return 0, fmt.Errorf("failed to resolve seller %s: %w", sellerID, err)
	}
	return seller.ID, nil
}
