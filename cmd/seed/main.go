// Command seed loads demo products and promotions into the database so the
// storefront pages render meaningfully on a fresh install.
package main

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"eshop/internal/config"
	"eshop/internal/db"
	"eshop/internal/model"
	"eshop/internal/repository"
)

func main() {
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.Product{}, &model.User{}, &model.Promotion{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()
	productRepo := repository.NewProductRepository(gormDB)
	promotionRepo := repository.NewPromotionRepository(gormDB)

	products := []model.Product{
		{ProductID: "SKU-1001", Name: "Espresso Machine", Price: decimal.NewFromFloat(249.99), Description: "15-bar pump espresso machine", Category: "Kitchen"},
		{ProductID: "SKU-1002", Name: "Mechanical Keyboard", Price: decimal.NewFromFloat(89.50), Description: "Hot-swappable tenkeyless board", Category: "Electronics"},
		{ProductID: "SKU-1003", Name: "Trail Running Shoes", Price: decimal.NewFromFloat(129.00), Description: "Lightweight with aggressive grip", Category: "Sports"},
	}
	for i := range products {
		if err := productRepo.Save(ctx, &products[i]); err != nil {
			log.Fatalf("seed product %s: %v", products[i].ProductID, err)
		}
	}

	active := true
	inactive := false
	lastWeek := time.Now().AddDate(0, 0, -7)
	nextMonth := time.Now().AddDate(0, 1, 0)
	lastMonth := time.Now().AddDate(0, -1, 0)

	promotions := []model.Promotion{
		{
			Name:            "Summer Sale",
			Description:     "Site-wide discount for the summer season",
			PromoCode:       "SUMMER20",
			DiscountPercent: 20,
			StartDate:       &lastWeek,
			EndDate:         &nextMonth,
			Active:          &active,
			BannerImageURL:  "https://cdn.example.com/banners/summer.jpg",
			Priority:        5,
		},
		{
			Name:            "Clearance Corner",
			Description:     "Last-chance items while stock lasts",
			DiscountPercent: 50,
			Active:          &active,
			Priority:        2,
		},
		{
			Name:            "Spring Kickoff",
			Description:     "Expired campaign kept for reference",
			PromoCode:       "SPRING10",
			DiscountPercent: 10,
			EndDate:         &lastMonth,
			Active:          &inactive,
			Priority:        1,
		},
	}
	for i := range promotions {
		if err := promotionRepo.Save(ctx, &promotions[i]); err != nil {
			log.Fatalf("seed promotion %q: %v", promotions[i].Name, err)
		}
	}

	log.Printf("seeded %d products and %d promotions", len(products), len(promotions))
}
