package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"eshop/internal/cache"
	apperrors "eshop/internal/errors"
	"eshop/internal/model"
	"eshop/internal/repository"
)

const productCacheTTL = 5 * time.Minute

// ProductService exposes catalog operations.
type ProductService interface {
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, productID string) error
	FindByID(ctx context.Context, productID string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
}

type productService struct {
	repo  repository.ProductRepository
	cache *cache.Client
}

// NewProductService builds a ProductService with repository and cache.
func NewProductService(repo repository.ProductRepository, cache *cache.Client) ProductService {
	return &productService{repo: repo, cache: cache}
}

func (s *productService) cacheKey(productID string) string {
	return fmt.Sprintf("product:%s", productID)
}

// Create upserts by product ID. There is no duplicate check: creating an
// existing ID overwrites it, exactly like Update.
func (s *productService) Create(ctx context.Context, product *model.Product) error {
	if err := s.repo.Save(ctx, product); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(product.ProductID))
	return nil
}

// Update shares the upsert write path with Create; no existence check.
func (s *productService) Update(ctx context.Context, product *model.Product) error {
	return s.Create(ctx, product)
}

// Delete removes by ID. Deleting an absent ID is not an error.
func (s *productService) Delete(ctx context.Context, productID string) error {
	if err := s.repo.Delete(ctx, productID); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(productID))
	return nil
}

// FindByID returns ErrProductNotFound for an absent ID instead of failing
// hard; callers surface it as a 404.
func (s *productService) FindByID(ctx context.Context, productID string) (*model.Product, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(productID)); data != nil {
		var cached model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(product); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(productID), payload, productCacheTTL)
	}
	return product, nil
}

func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	return s.repo.List(ctx)
}
