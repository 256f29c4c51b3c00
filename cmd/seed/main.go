// Command seed loads a demo seller with listings, orders, reviews and
// storefront events so the scoring endpoints have data to work with.
package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"soko/internal/config"
	"soko/internal/models"
	"soko/internal/repositories"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if sqlDB, err := repositories.DB.DB(); err == nil {
			sqlDB.Close()
		}
		if repositories.CacheService != nil {
			repositories.CacheService.Close()
		}
	}()

	ctx := context.Background()
	db := repositories.DB

	var existing models.Seller
	if err := db.Where("store_name = ?", "Demo Store").First(&existing).Error; err == nil {
		log.Println("Demo seller already exists")
		return
	}

	seller := models.Seller{
		PublicID:         uuid.New(),
		StoreName:        "Demo Store",
		Status:           "active",
		AvgResponseHours: 3.5,
		JoinedAt:         time.Now().AddDate(-1, 0, 0),
	}
	if err := db.Create(&seller).Error; err != nil {
		log.Fatal("Failed to create seller:", err)
	}

	keyword := "leather bag"
	discount := 69.99
	listings := []models.Listing{
		{
			PublicID:      uuid.New(),
			SellerID:      seller.ID,
			Title:         "Handmade Leather Bag with Adjustable Strap",
			Description:   "A durable handmade leather bag with an adjustable strap, brass fittings and a padded laptop sleeve. Every leather bag is cut and stitched by hand.",
			Category:      "Accessories",
			Tags:          models.StringList{"leather", "bag", "handmade"},
			Price:         89.99,
			DiscountPrice: &discount,
			StockQuantity: 14,
			ImageCount:    6,
			TargetKeyword: &keyword,
		},
		{
			PublicID:      uuid.New(),
			SellerID:      seller.ID,
			Title:         "Mug",
			Description:   "A mug.",
			Category:      "",
			Price:         0,
			StockQuantity: 0,
			ImageCount:    0,
		},
	}
	for i := range listings {
		if err := db.Create(&listings[i]).Error; err != nil {
			log.Fatal("Failed to create listing:", err)
		}
	}

	eventRepo := repositories.NewEventRepository(db)
	now := time.Now().UTC()
	for day := 0; day < 30; day++ {
		at := now.AddDate(0, 0, -day)
		views := 20 + rand.Intn(30)
		for i := 0; i < views; i++ {
			event := &models.TrackingEvent{
				SellerID:   seller.ID,
				ListingID:  listings[0].ID,
				Kind:       models.EventPageView,
				Category:   listings[0].Category,
				OccurredAt: at,
			}
			if err := eventRepo.Record(ctx, event); err != nil {
				log.Fatal("Failed to record event:", err)
			}
		}
		purchases := rand.Intn(4)
		for i := 0; i < purchases; i++ {
			order := models.Order{
				SellerID:  seller.ID,
				ListingID: listings[0].ID,
				Amount:    listings[0].Price,
				Status:    "completed",
				CreatedAt: at,
			}
			shipped := at.Add(36 * time.Hour)
			order.ShippedAt = &shipped
			if err := db.Create(&order).Error; err != nil {
				log.Fatal("Failed to create order:", err)
			}
			event := &models.TrackingEvent{
				SellerID:   seller.ID,
				ListingID:  listings[0].ID,
				Kind:       models.EventPurchase,
				Category:   listings[0].Category,
				Amount:     listings[0].Price,
				OccurredAt: at,
			}
			if err := eventRepo.Record(ctx, event); err != nil {
				log.Fatal("Failed to record event:", err)
			}
			review := models.Review{
				SellerID:  seller.ID,
				ListingID: listings[0].ID,
				Rating:    4 + rand.Intn(2),
				Comment:   "Great quality",
				CreatedAt: at,
			}
			if err := db.Create(&review).Error; err != nil {
				log.Fatal("Failed to create review:", err)
			}
		}
	}

	log.Printf("Seeded demo seller %s with %d listings", seller.PublicID, len(listings))
}
