package seo

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"soko/internal/models"
)

type Service interface {
	// AnalyzeListing scores a stored listing, serving from cache when
	// the listing has not changed since the last analysis.
	AnalyzeListing(ctx context.Context, listingID uuid.UUID) (*models.SEOAnalysis, error)
	// Preview scores an unsaved snapshot, e.g. a draft being edited.
	Preview(facts models.ListingFacts) models.SEOAnalysis
	// Invalidate drops any cached analysis for the listing.
	Invalidate(ctx context.Context, listingID uuid.UUID) error
}

type service struct {
	listings ListingProvider
	cache    AnalysisCache
}

// NewService creates an SEO scoring service. The cache may be nil, in
// which case every call recomputes the analysis.
func NewService(listings ListingProvider, cache AnalysisCache) Service {
	return &service{
		listings: listings,
		cache:    cache,
	}
}

func (s *service) AnalyzeListing(ctx context.Context, listingID uuid.UUID) (*models.SEOAnalysis, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetAnalysis(ctx, listingID); err == nil && cached != nil {
			return cached, nil
		}
	}

	listing, err := s.listings.GetByPublicID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("fetch listing %s: %w", listingID, err)
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}

	analysis := EvaluateListing(listing.Facts())

	if s.cache != nil {
		if err := s.cache.SetAnalysis(ctx, listingID, &analysis); err != nil {
			// Cache failures degrade to recomputation, never to an error.
			log.Printf("seo: cache analysis for %s: %v", listingID, err)
		}
	}
	return &analysis, nil
}

func (s *service) Preview(facts models.ListingFacts) models.SEOAnalysis {
	return EvaluateListing(facts)
}

func (s *service) Invalidate(ctx context.Context, listingID uuid.UUID) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.InvalidateAnalysis(ctx, listingID)
}
