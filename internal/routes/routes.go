// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers.
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"soko/internal/handlers"
	"soko/internal/repositories"
	"soko/internal/services/analytics"
	"soko/internal/services/badge"
	"soko/internal/services/seo"
)

// SetupRoutes configures all application routes.
// It wires repositories into services and services into handlers.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize repositories
	listingRepo := repositories.NewListingRepository(db)
	sellerRepo := repositories.NewSellerRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	unlockRepo := repositories.NewBadgeUnlockRepository(db)

	// Initialize services
	seoService := seo.NewService(listingRepo, repositories.CacheService)
	badgeService := badge.NewService(sellerRepo, unlockRepo)
	analyticsService := analytics.NewService(eventRepo)

	// Initialize handlers
	seoHandler := handlers.NewSEOHandler(seoService)
	sellerHandler := handlers.NewSellerHandler(badgeService, analyticsService)

	app.Get("/health", handlers.HealthCheck)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Soko Seller Performance API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	api := app.Group("/api")

	// Listing SEO scoring
	api.Get("/listings/:id/seo", seoHandler.GetListingAnalysis)
	api.Post("/seo/preview", seoHandler.PreviewListing)

	// Seller performance
	api.Get("/sellers/:id/badges", sellerHandler.GetSellerBadges)
	api.Get("/sellers/:id/performance", sellerHandler.GetSellerPerformance)
	api.Get("/sellers/:id/analytics/daily", sellerHandler.GetDailyAnalytics)
	api.Get("/sellers/:id/analytics/categories", sellerHandler.GetCategoryAnalytics)
}
