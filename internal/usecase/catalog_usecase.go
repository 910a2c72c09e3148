package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	domainErrors "github.com/shoplite/shop-backend/internal/domain/errors"
	"github.com/shoplite/shop-backend/internal/domain/model"
	"github.com/shoplite/shop-backend/internal/domain/repository"
	"go.uber.org/zap"
)

// CatalogUsecase handles product reads and admin writes.
type CatalogUsecase struct {
	productRepo repository.ProductRepository
	logger      *zap.Logger
}

// NewCatalogUsecase creates a new CatalogUsecase instance
func NewCatalogUsecase(productRepo repository.ProductRepository, logger *zap.Logger) *CatalogUsecase {
	return &CatalogUsecase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// ProductParams are the catalog write inputs.
type ProductParams struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
}

func (p *ProductParams) validate() error {
	if p.Name == "" {
		return domainErrors.NewValidationError("product name is required")
	}
	if p.Price.LessThanOrEqual(decimal.Zero) {
		return domainErrors.NewValidationError("product price must be positive")
	}
	if p.Stock < 0 {
		return domainErrors.NewValidationError("product stock cannot be negative")
	}
	return nil
}

func (u *CatalogUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return u.productRepo.List(ctx)
}

func (u *CatalogUsecase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return u.productRepo.GetByID(ctx, id)
}

func (u *CatalogUsecase) CreateProduct(ctx context.Context, params ProductParams) (*model.Product, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		Stock:       params.Stock,
	}
	if err := u.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	u.logger.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name))
	return product, nil
}

func (u *CatalogUsecase) UpdateProduct(ctx context.Context, id int64, params ProductParams) (*model.Product, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	product := &model.Product{
		ID:          id,
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		Stock:       params.Stock,
	}
	if err := u.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return u.productRepo.GetByID(ctx, id)
}

func (u *CatalogUsecase) DeleteProduct(ctx context.Context, id int64) error {
	return u.productRepo.Delete(ctx, id)
}
