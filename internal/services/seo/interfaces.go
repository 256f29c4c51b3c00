package seo

import (
	"context"

	"github.com/google/uuid"

	"soko/internal/models"
)

// ListingProvider supplies listing snapshots for analysis.
type ListingProvider interface {
	GetByPublicID(ctx context.Context, id uuid.UUID) (*models.Listing, error)
}

// AnalysisCache caches computed analyses keyed by listing.
type AnalysisCache interface {
	GetAnalysis(ctx context.Context, listingID uuid.UUID) (*models.SEOAnalysis, error)
	SetAnalysis(ctx context.Context, listingID uuid.UUID, analysis *models.SEOAnalysis) error
	InvalidateAnalysis(ctx context.Context, listingID uuid.UUID) error
}
