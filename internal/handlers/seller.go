package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"soko/internal/services/analytics"
	"soko/internal/services/badge"
	"soko/internal/utils/response"
)

// performanceWindowDays is the trailing window used when the caller
// does not supply an explicit date range.
const performanceWindowDays = 90

type SellerHandler struct {
	badgeService     badge.Service
	analyticsService analytics.Service
}

func NewSellerHandler(badgeService badge.Service, analyticsService analytics.Service) *SellerHandler {
	return &SellerHandler{
		badgeService:     badgeService,
		analyticsService: analyticsService,
	}
}

// GetSellerBadges returns the badge statuses and tier placement.
func (h *SellerHandler) GetSellerBadges(c *fiber.Ctx) error {
	sellerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid seller id")
	}

	badges, err := h.badgeService.GetSellerBadges(c.Context(), sellerID)
	if err != nil {
		if errors.Is(err, badge.ErrSellerNotFound) {
			return response.NotFound(c, "Seller not found")
		}
		return response.ServerError(c, "Failed to evaluate badges")
	}

	metrics, err := h.badgeService.GetSellerTier(c.Context(), sellerID)
	if err != nil {
		return response.ServerError(c, "Failed to compute tier")
	}

	return response.Success(c, "Seller badges evaluated", fiber.Map{
		"badges":     badges,
		"tier":       metrics.SellerTier,
		"tier_level": metrics.TierLevel,
	})
}

// GetSellerPerformance returns the metrics snapshot with tier and the
// funnel rate summary for the trailing window.
func (h *SellerHandler) GetSellerPerformance(c *fiber.Ctx) error {
	sellerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid seller id")
	}

	metrics, err := h.badgeService.GetSellerTier(c.Context(), sellerID)
	if err != nil {
		if errors.Is(err, badge.ErrSellerNotFound) {
			return response.NotFound(c, "Seller not found")
		}
		return response.ServerError(c, "Failed to get seller metrics")
	}

	end := time.Now().UTC()
	start := analytics.WindowStart(end, performanceWindowDays)
	rates, err := h.analyticsService.GetRateSummary(c.Context(), sellerID, start, end)
	if err != nil {
		return response.ServerError(c, "Failed to compute rates")
	}

	return response.Success(c, "Seller performance retrieved", fiber.Map{
		"metrics": metrics,
		"rates":   rates,
	})
}

// GetDailyAnalytics returns the per-day metric series for a range.
func (h *SellerHandler) GetDailyAnalytics(c *fiber.Ctx) error {
	sellerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid seller id")
	}

	start, end, err := parseRange(c)
	if err != nil {
		return response.BadRequest(c, "Invalid date range")
	}

	series, err := h.analyticsService.GetDailyMetrics(c.Context(), sellerID, start, end)
	if err != nil {
		return response.ServerError(c, "Failed to aggregate daily metrics")
	}
	return response.Success(c, "Daily metrics aggregated", series)
}

// GetCategoryAnalytics returns per-category totals for a range.
func (h *SellerHandler) GetCategoryAnalytics(c *fiber.Ctx) error {
	sellerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid seller id")
	}

	start, end, err := parseRange(c)
	if err != nil {
		return response.BadRequest(c, "Invalid date range")
	}

	breakdown, err := h.analyticsService.GetCategoryMetrics(c.Context(), sellerID, start, end)
	if err != nil {
		return response.ServerError(c, "Failed to aggregate category metrics")
	}
	return response.Success(c, "Category metrics aggregated", breakdown)
}

func parseRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	startStr := c.Query("start", now.AddDate(0, -1, 0).Format("2006-01-02"))
	endStr := c.Query("end", now.Format("2006-01-02"))

	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	// Make the end date inclusive of the whole day.
	return start, end.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
}
