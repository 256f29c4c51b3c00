package badge

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"soko/internal/models"
)

// MetricsProvider materializes the seller performance snapshot.
type MetricsProvider interface {
	GetSellerMetrics(ctx context.Context, sellerID uuid.UUID) (*models.SellerMetrics, error)
}

// UnlockStore persists first-unlock timestamps. The engine itself is
// stateless; the store only enriches results with historical times and
// records unlocks it has not seen before.
type UnlockStore interface {
	GetUnlockTimes(ctx context.Context, sellerID uuid.UUID) (map[models.BadgeID]time.Time, error)
	RecordUnlocks(ctx context.Context, sellerID uuid.UUID, badges []models.BadgeID) error
}

type Service interface {
	// GetSellerBadges evaluates the full badge catalog for a seller.
	GetSellerBadges(ctx context.Context, sellerID uuid.UUID) ([]models.BadgeStatus, error)
	// GetSellerTier returns the tier placement with the metrics that
	// produced it.
	GetSellerTier(ctx context.Context, sellerID uuid.UUID) (*models.SellerMetrics, error)
}

type service struct {
	metrics MetricsProvider
	unlocks UnlockStore
}

// NewService creates a badge evaluation service. The unlock store may
// be nil, in which case UnlockedAt is never populated.
func NewService(metrics MetricsProvider, unlocks UnlockStore) Service {
	return &service{
		metrics: metrics,
		unlocks: unlocks,
	}
}

func (s *service) GetSellerBadges(ctx context.Context, sellerID uuid.UUID) ([]models.BadgeStatus, error) {
	m, err := s.metrics.GetSellerMetrics(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("fetch seller metrics %s: %w", sellerID, err)
	}
	if m == nil {
		return nil, ErrSellerNotFound
	}

	kpi := models.SellerKPI{TotalOrders: m.TotalOrders, TotalRevenue: m.TotalRevenue}
	statuses := EvaluateBadges(*m, kpi)

	if s.unlocks == nil {
		return statuses, nil
	}

	history, err := s.unlocks.GetUnlockTimes(ctx, sellerID)
	if err != nil {
		// History is cosmetic; the evaluation result stands without it.
		log.Printf("badge: unlock history for %s: %v", sellerID, err)
		return statuses, nil
	}

	var fresh []models.BadgeID
	for i := range statuses {
		if at, ok := history[statuses[i].BadgeID]; ok {
			t := at
			statuses[i].UnlockedAt = &t
		} else if statuses[i].IsUnlocked {
			fresh = append(fresh, statuses[i].BadgeID)
		}
	}
	if len(fresh) > 0 {
		if err := s.unlocks.RecordUnlocks(ctx, sellerID, fresh); err != nil {
			log.Printf("badge: record unlocks for %s: %v", sellerID, err)
		}
	}
	return statuses, nil
}

func (s *service) GetSellerTier(ctx context.Context, sellerID uuid.UUID) (*models.SellerMetrics, error) {
	m, err := s.metrics.GetSellerMetrics(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("fetch seller metrics %s: %w", sellerID, err)
	}
	if m == nil {
		return nil, ErrSellerNotFound
	}
	m.SellerTier, m.TierLevel = ComputeTier(m.TotalRevenue)
	return m, nil
}
