package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"soko/internal/models"
)

// RecordProvider fetches raw storefront records for a seller within
// a time range, already typed and validated.
type RecordProvider interface {
	GetSellerRecords(ctx context.Context, sellerID uuid.UUID, start, end time.Time) ([]models.CommerceRecord, error)
	GetSellerFunnelTotals(ctx context.Context, sellerID uuid.UUID, start, end time.Time) (*models.FunnelTotals, error)
}

type Service interface {
	GetDailyMetrics(ctx context.Context, sellerID uuid.UUID, start, end time.Time) ([]models.DailyMetric, error)
	GetCategoryMetrics(ctx context.Context, sellerID uuid.UUID, start, end time.Time) ([]models.CategoryMetric, error)
	GetRateSummary(ctx context.Context, sellerID uuid.UUID, start, end time.Time) (*models.RateSummary, error)
}

type service struct {
	records RecordProvider
}

func NewService(records RecordProvider) Service {
	return &service{records: records}
}

func (s *service) GetDailyMetrics(ctx context.Context, sellerID uuid.UUID, start, end time.Time) ([]models.DailyMetric, error) {
	records, err := s.records.GetSellerRecords(ctx, sellerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch records for %s: %w", sellerID, err)
	}
	return AggregateDaily(records), nil
}

func (s *service) GetCategoryMetrics(ctx context.Context, sellerID uuid.UUID, start, end time.Time) ([]models.CategoryMetric, error) {
	records, err := s.records.GetSellerRecords(ctx, sellerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch records for %s: %w", sellerID, err)
	}
	return AggregateByCategory(records), nil
}

func (s *service) GetRateSummary(ctx context.Context, sellerID uuid.UUID, start, end time.Time) (*models.RateSummary, error) {
	totals, err := s.records.GetSellerFunnelTotals(ctx, sellerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch funnel totals for %s: %w", sellerID, err)
	}
	rates := ComputeRates(*totals)
	return &rates, nil
}
