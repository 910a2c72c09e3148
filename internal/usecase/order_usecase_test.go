package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	domainErrors "github.com/shoplite/shop-backend/internal/domain/errors"
	"github.com/shoplite/shop-backend/internal/domain/model"
	"github.com/shoplite/shop-backend/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestOrderUsecase_CreateOrder(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	userID := uuid.New()

	t.Run("order is owned by caller with catalog prices", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		uc := usecase.NewOrderUsecase(orderRepo, productRepo, logger)

		productRepo.On("GetByID", ctx, int64(1)).Return(&model.Product{
			ID:    1,
			Name:  "Keyboard",
			Price: decimal.RequireFromString("49.90"),
		}, nil)
		productRepo.On("GetByID", ctx, int64(2)).Return(&model.Product{
			ID:    2,
			Name:  "Mouse",
			Price: decimal.RequireFromString("19.90"),
		}, nil)

		orderRepo.On("Create", ctx, mock.MatchedBy(func(o *model.Order) bool {
			return o.UserID == userID &&
				o.Total.Equal(decimal.RequireFromString("139.60")) &&
				len(o.Items) == 2 &&
				o.Items[0].UnitPrice.Equal(decimal.RequireFromString("49.90"))
		})).Return(nil)

		order, err := uc.CreateOrder(ctx, userID, []usecase.OrderItemParams{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 2},
		})

		assert.NoError(t, err)
		assert.Equal(t, userID, order.UserID)
		orderRepo.AssertExpectations(t)
	})

	t.Run("empty order is rejected", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		uc := usecase.NewOrderUsecase(orderRepo, productRepo, logger)

		order, err := uc.CreateOrder(ctx, userID, nil)

		assert.Nil(t, order)
		var validationErr *domainErrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("non-positive quantity is rejected", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		uc := usecase.NewOrderUsecase(orderRepo, productRepo, logger)

		order, err := uc.CreateOrder(ctx, userID, []usecase.OrderItemParams{
			{ProductID: 1, Quantity: 0},
		})

		assert.Nil(t, order)
		var validationErr *domainErrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("unknown product is rejected", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		uc := usecase.NewOrderUsecase(orderRepo, productRepo, logger)

		productRepo.On("GetByID", ctx, int64(99)).Return(nil, domainErrors.ErrNotFound)

		order, err := uc.CreateOrder(ctx, userID, []usecase.OrderItemParams{
			{ProductID: 99, Quantity: 1},
		})

		assert.Nil(t, order)
		var validationErr *domainErrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestOrderUsecase_ListOrders(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("listing is scoped to the caller", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		uc := usecase.NewOrderUsecase(orderRepo, productRepo, logger)

		callerID := uuid.New()
		orderRepo.On("ListByUser", ctx, callerID).Return([]model.Order{
			{ID: 1, UserID: callerID},
		}, nil)

		orders, err := uc.ListOrders(ctx, callerID)

		assert.NoError(t, err)
		assert.Len(t, orders, 1)
		assert.Equal(t, callerID, orders[0].UserID)
		orderRepo.AssertExpectations(t)
	})
}
