package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	domainErrors "github.com/shoplite/shop-backend/internal/domain/errors"
	"github.com/shoplite/shop-backend/internal/domain/model"
	"github.com/shoplite/shop-backend/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type orderRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB, logger *zap.Logger) repository.OrderRepository {
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		r.logger.Error("Failed to create order",
			zap.String("user_id", order.UserID.String()),
			zap.Error(err))
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByIDForUser loads an order only when it belongs to userID. A foreign
// order is indistinguishable from a missing one.
func (r *orderRepository) GetByIDForUser(ctx context.Context, id int64, userID uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", id, userID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrNotFound
		}
		r.logger.Error("Failed to get order",
			zap.Int64("order_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		r.logger.Error("Failed to list orders",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
