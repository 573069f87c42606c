package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"eshop/internal/cache"
	"eshop/internal/model"
	"eshop/internal/repository"
)

const promotionCacheTTL = 5 * time.Minute

// PromotionService exposes promotion operations.
type PromotionService interface {
	ListAll(ctx context.Context) ([]model.Promotion, error)
	ListActive(ctx context.Context) ([]model.Promotion, error)
	Get(ctx context.Context, id uint) (*model.Promotion, error)
	Save(ctx context.Context, promotion *model.Promotion) error
	Delete(ctx context.Context, id uint) error
	ToggleActive(ctx context.Context, id uint) error
}

type promotionService struct {
	repo  repository.PromotionRepository
	cache *cache.Client
}

// NewPromotionService builds a PromotionService with repository and cache.
func NewPromotionService(repo repository.PromotionRepository, cache *cache.Client) PromotionService {
	return &promotionService{repo: repo, cache: cache}
}

func (s *promotionService) cacheKey(id uint) string {
	return fmt.Sprintf("promotion:%d", id)
}

// promotionCacheEntry carries the banner blob and its content type next to
// the record. The API encoding strips both, so marshaling the Promotion
// alone would hand cache hits back without their image.
type promotionCacheEntry struct {
	Promotion model.Promotion `json:"promotion"`
	Image     []byte          `json:"image,omitempty"`
	ImageType string          `json:"imageType,omitempty"`
}

func encodePromotionCache(p *model.Promotion) ([]byte, error) {
	return json.Marshal(promotionCacheEntry{
		Promotion: *p,
		Image:     p.BannerImage,
		ImageType: p.BannerImageType,
	})
}

func decodePromotionCache(data []byte) (*model.Promotion, error) {
	var entry promotionCacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	entry.Promotion.BannerImage = entry.Image
	entry.Promotion.BannerImageType = entry.ImageType
	return &entry.Promotion, nil
}

// ListAll returns every promotion ordered by priority descending.
func (s *promotionService) ListAll(ctx context.Context) ([]model.Promotion, error) {
	return s.repo.ListByPriorityDesc(ctx)
}

// ListActive filters on the boolean flag only, same ordering. The date window
// is intentionally not consulted: that stricter check lives on
// Promotion.IsCurrentlyActive and is a separate notion of "active".
func (s *promotionService) ListActive(ctx context.Context) ([]model.Promotion, error) {
	return s.repo.ListActiveByPriorityDesc(ctx)
}

// Get returns the promotion, or (nil, nil) when absent.
func (s *promotionService) Get(ctx context.Context, id uint) (*model.Promotion, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		if cached, err := decodePromotionCache(data); err == nil {
			return cached, nil
		}
	}

	promotion, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if payload, err := encodePromotionCache(promotion); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, promotionCacheTTL)
	}
	return promotion, nil
}

// Save upserts the promotion.
func (s *promotionService) Save(ctx context.Context, promotion *model.Promotion) error {
	if err := s.repo.Save(ctx, promotion); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(promotion.ID))
	return nil
}

// Delete removes by ID; deleting an absent promotion is a no-op.
func (s *promotionService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// ToggleActive flips the active flag. An unset flag counts as true, so the
// first toggle on an unset record lands on true. A missing record is a no-op.
func (s *promotionService) ToggleActive(ctx context.Context, id uint) error {
	promotion, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	var flipped bool
	if promotion.Active == nil {
		flipped = true
	} else {
		flipped = !*promotion.Active
	}
	promotion.Active = &flipped

	if err := s.repo.Save(ctx, promotion); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
