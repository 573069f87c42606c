package repository

import (
	"context"

	"gorm.io/gorm"

	"eshop/internal/model"
)

// PromotionRepository defines promotion persistence operations.
type PromotionRepository interface {
	Save(ctx context.Context, promotion *model.Promotion) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Promotion, error)
	ListByPriorityDesc(ctx context.Context) ([]model.Promotion, error)
	ListActiveByPriorityDesc(ctx context.Context) ([]model.Promotion, error)
}

type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository builds a GORM-backed repository.
func NewPromotionRepository(db *gorm.DB) PromotionRepository {
	return &promotionRepository{db: db}
}

func (r *promotionRepository) Save(ctx context.Context, promotion *model.Promotion) error {
	return r.db.WithContext(ctx).Save(promotion).Error
}

func (r *promotionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Promotion{}, id).Error
}

func (r *promotionRepository) FindByID(ctx context.Context, id uint) (*model.Promotion, error) {
	var promotion model.Promotion
	if err := r.db.WithContext(ctx).First(&promotion, id).Error; err != nil {
		return nil, err
	}
	return &promotion, nil
}

func (r *promotionRepository) ListByPriorityDesc(ctx context.Context) ([]model.Promotion, error) {
	var promotions []model.Promotion
	if err := r.db.WithContext(ctx).Order("priority DESC").Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

// ListActiveByPriorityDesc filters on the boolean flag only; the date window
// is deliberately not consulted here (see Promotion.IsCurrentlyActive).
func (r *promotionRepository) ListActiveByPriorityDesc(ctx context.Context) ([]model.Promotion, error) {
	var promotions []model.Promotion
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("priority DESC").
		Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}
