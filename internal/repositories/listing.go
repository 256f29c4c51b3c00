package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"soko/internal/models"
)

type ListingRepository interface {
	GetByPublicID(ctx context.Context, id uuid.UUID) (*models.Listing, error)
	GetBySeller(ctx context.Context, sellerID uint) ([]models.Listing, error)
	Create(ctx context.Context, listing *models.Listing) error
	Update(ctx context.Context, listing *models.Listing) error
}

type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) GetByPublicID(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	var listing models.Listing
	err := r.db.WithContext(ctx).Where("public_id = ?", id).First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) GetBySeller(ctx context.Context, sellerID uint) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.WithContext(ctx).
		Where("seller_id = ? AND status = ?", sellerID, "active").
		Order("created_at DESC").
		Find(&listings).Error
	return listings, err
}

func (r *listingRepository) Create(ctx context.Context, listing *models.Listing) error {
	if listing.PublicID == uuid.Nil {
		listing.PublicID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *listingRepository) Update(ctx context.Context, listing *models.Listing) error {
	return r.db.WithContext(ctx).Save(listing).Error
}
