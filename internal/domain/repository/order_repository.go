package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shoplite/shop-backend/internal/domain/model"
)

// OrderRepository persists orders. Every read is scoped to the owning user.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByIDForUser(ctx context.Context, id int64, userID uuid.UUID) (*model.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
}
