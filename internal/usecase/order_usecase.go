package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	domainErrors "github.com/shoplite/shop-backend/internal/domain/errors"
	"github.com/shoplite/shop-backend/internal/domain/model"
	"github.com/shoplite/shop-backend/internal/domain/repository"
	"go.uber.org/zap"
)

// OrderUsecase handles order creation and listing, always scoped to the
// authenticated caller.
type OrderUsecase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      *zap.Logger
}

// NewOrderUsecase creates a new OrderUsecase instance
func NewOrderUsecase(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, logger *zap.Logger) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// OrderItemParams is one requested line. Unit prices come from the catalog,
// never from the client.
type OrderItemParams struct {
	ProductID int64
	Quantity  int
}

// CreateOrder creates an order owned by userID. The owner comes from the
// caller's verified identity; nothing in the request can override it.
func (u *OrderUsecase) CreateOrder(ctx context.Context, userID uuid.UUID, items []OrderItemParams) (*model.Order, error) {
	if len(items) == 0 {
		return nil, domainErrors.NewValidationError("order must contain at least one item")
	}

	total := decimal.Zero
	orderItems := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, domainErrors.NewValidationError("item quantity must be positive")
		}

		product, err := u.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return nil, domainErrors.NewValidationError(
					fmt.Sprintf("unknown product: %d", item.ProductID))
			}
			return nil, err
		}

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(lineTotal)
		orderItems = append(orderItems, model.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})
	}

	order := &model.Order{
		UserID: userID,
		Total:  total,
		Items:  orderItems,
	}
	if err := u.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	u.logger.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.String("user_id", userID.String()),
		zap.String("total", total.String()))
	return order, nil
}

// ListOrders returns only the caller's orders.
func (u *OrderUsecase) ListOrders(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	return u.orderRepo.ListByUser(ctx, userID)
}
