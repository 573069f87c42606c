package repository

import (
	"context"

	"gorm.io/gorm"

	"eshop/internal/model"
)

// ProductRepository defines catalog persistence operations.
type ProductRepository interface {
	Save(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, productID string) error
	FindByID(ctx context.Context, productID string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository builds a GORM-backed repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// Save upserts by primary key; create and update share the same write path.
func (r *productRepository) Save(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, productID string) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, "product_id = ?", productID).Error
}

func (r *productRepository) FindByID(ctx context.Context, productID string) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, "product_id = ?", productID).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
