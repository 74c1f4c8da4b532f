package repository

import (
	"context"
	"fmt"

	"crm-backend/internal/models"

	"gorm.io/gorm"
)

// ProductRepo is the MySQL implementation of ProductRepository.
type ProductRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *ProductRepo) List(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Update overwrites every column of the row identified by product.Sl.
// Returns ErrNotFound when the row does not exist.
func (r *ProductRepo) Update(ctx context.Context, product *models.Product) error {
	res := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("sl = ?", product.Sl).
		Select("*").Omit("sl").
		Updates(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		r.db.WithContext(ctx).Model(&models.Product{}).Where("sl = ?", product.Sl).Count(&count)
		if count == 0 {
			return ErrNotFound
		}
	}
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, sl uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, "sl = ?", sl)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
