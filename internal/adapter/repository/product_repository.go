package repository

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/shoplite/shop-backend/internal/domain/errors"
	"github.com/shoplite/shop-backend/internal/domain/model"
	"github.com/shoplite/shop-backend/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type productRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB, logger *zap.Logger) repository.ProductRepository {
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		r.logger.Error("Failed to create product",
			zap.String("name", product.Name),
			zap.Error(err))
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrNotFound
		}
		r.logger.Error("Failed to get product",
			zap.Int64("product_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		r.logger.Error("Failed to list products", zap.Error(err))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	result := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"stock":       product.Stock,
		})
	if result.Error != nil {
		r.logger.Error("Failed to update product",
			zap.Int64("product_id", product.ID),
			zap.Error(result.Error))
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if result.Error != nil {
		r.logger.Error("Failed to delete product",
			zap.Int64("product_id", id),
			zap.Error(result.Error))
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
