package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"soko/internal/models"
)

// BadgeUnlockRepository keeps first-unlock history. Unlock rows are
// written once and never updated; there is no revocation.
type BadgeUnlockRepository interface {
	GetUnlockTimes(ctx context.Context, sellerID uuid.UUID) (map[models.BadgeID]time.Time, error)
	RecordUnlocks(ctx context.Context, sellerID uuid.UUID, badges []models.BadgeID) error
}

type badgeUnlockRepository struct {
	db *gorm.DB
}

func NewBadgeUnlockRepository(db *gorm.DB) BadgeUnlockRepository {
	return &badgeUnlockRepository{db: db}
}

func (r *badgeUnlockRepository) GetUnlockTimes(ctx context.Context, sellerID uuid.UUID) (map[models.BadgeID]time.Time, error) {
	internalID, err := r.resolveSeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	var rows []models.BadgeUnlock
	if err := r.db.WithContext(ctx).Where("seller_id = ?", internalID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get badge unlocks: %w", err)
	}

	times := make(map[models.BadgeID]time.Time, len(rows))
	for _, row := range rows {
		times[row.BadgeID] = row.UnlockedAt
	}
	return times, nil
}

func (r *badgeUnlockRepository) RecordUnlocks(ctx context.Context, sellerID uuid.UUID, badges []models.BadgeID) error {
	if len(badges) == 0 {
		return nil
	}
	internalID, err := r.resolveSeller(ctx, sellerID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	rows := make([]models.BadgeUnlock, 0, len(badges))
	for _, id := range badges {
		rows = append(rows, models.BadgeUnlock{SellerID: internalID, BadgeID: id, UnlockedAt: now})
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

func (r *badgeUnlockRepository) resolveSeller(ctx context.Context, sellerID uuid.UUID) (uint, error) {
	var seller models.Seller
	if err := r.db.WithContext(ctx).Where("public_id = ?", sellerID).First(&seller).Error; err != nil {
		return 0, fmt.Errorf("failed to resolve seller %s: %w", sellerID, err)
	}
	return seller.ID, nil
}
