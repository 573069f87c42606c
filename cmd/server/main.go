package main

import (
	"log"
	"net/http"
	"time"

	_ "eshop/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"eshop/internal/auth"
	"eshop/internal/cache"
	"eshop/internal/config"
	"eshop/internal/db"
	"eshop/internal/handler"
	"eshop/internal/model"
	"eshop/internal/repository"
	"eshop/internal/router"
	"eshop/internal/service"
	"eshop/internal/session"
)

// @title E-Shopping Store API
// @version 1.0
// @description CRUD backend for products, users and promotional banners with session authentication.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models. The unique indexes on users.username and
	// users.email are the authoritative uniqueness guard; service pre-checks
	// only provide friendlier messages.
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.User{},
		&model.Promotion{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	sessionTTL := time.Duration(cfg.SessionTTLMinutes) * time.Minute
	sessions := session.NewStore(cacheClient, sessionTTL)

	// Static access policy; independent from the user directory below.
	policy := auth.NewPolicy(cfg.AdminUsername, cfg.AdminPassword, cfg.UserUsername, cfg.UserPassword)

	// Initialize repositories
	productRepo := repository.NewProductRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	promotionRepo := repository.NewPromotionRepository(gormDB)

	// Initialize services
	productService := service.NewProductService(productRepo, cacheClient)
	userService := service.NewUserService(userRepo)
	promotionService := service.NewPromotionService(promotionRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(policy, sessions, sessionTTL)
	userHandler := handler.NewUserHandler(userService, sessions, sessionTTL)
	productHandler := handler.NewProductHandler(productService)
	promotionAdminHandler := handler.NewPromotionAdminHandler(promotionService)
	promotionHomeHandler := handler.NewPromotionHomeHandler(promotionService)
	promotionImageHandler := handler.NewPromotionImageHandler(promotionService)

	// Register routes
	router.Register(
		e,
		sessions,
		authHandler,
		userHandler,
		productHandler,
		promotionAdminHandler,
		promotionHomeHandler,
		promotionImageHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
