package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"soko/internal/models"
	"soko/internal/services/seo"
	"soko/internal/utils/response"
)

type SEOHandler struct {
	seoService seo.Service
}

func NewSEOHandler(seoService seo.Service) *SEOHandler {
	return &SEOHandler{
		seoService: seoService,
	}
}

// GetListingAnalysis returns the SEO analysis for a stored listing.
func (h *SEOHandler) GetListingAnalysis(c *fiber.Ctx) error {
	listingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid listing id")
	}

	analysis, err := h.seoService.AnalyzeListing(c.Context(), listingID)
	if err != nil {
		if errors.Is(err, seo.ErrListingNotFound) {
			return response.NotFound(c, "Listing not found")
		}
		return response.ServerError(c, "Failed to analyze listing")
	}

	return response.Success(c, "Listing analysis computed", analysis)
}

// PreviewListing scores an unsaved listing draft. Malformed values
// (zero price, empty title) are scored, not rejected; only unparseable
// JSON is a client error.
func (h *SEOHandler) PreviewListing(c *fiber.Ctx) error {
	var facts models.ListingFacts
	if err := c.BodyParser(&facts); err != nil {
		return response.BadRequest(c, "Invalid listing payload")
	}

	analysis := h.seoService.Preview(facts)
	return response.Success(c, "Draft analysis computed", analysis)
}
