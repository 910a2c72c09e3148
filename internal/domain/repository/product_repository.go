package repository

import (
	"context"

	"github.com/shoplite/shop-backend/internal/domain/model"
)

// ProductRepository persists catalog entries.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int64) error
}
