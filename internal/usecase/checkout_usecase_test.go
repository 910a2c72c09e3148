package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	domainErrors "github.com/shoplite/shop-backend/internal/domain/errors"
	"github.com/shoplite/shop-backend/internal/domain/model"
	"github.com/shoplite/shop-backend/internal/domain/provider"
	"github.com/shoplite/shop-backend/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestCheckoutUsecase_Initiate(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	userID := uuid.New()

	t.Run("valid amount creates pending payment", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepository)
		orderRepo := new(MockOrderRepository)
		gateway := new(MockCheckoutProvider)
		uc := usecase.NewCheckoutUsecase(paymentRepo, orderRepo, gateway, logger)

		gateway.On("CreateCheckoutSession", ctx, mock.MatchedBy(func(req *provider.CreateSessionRequest) bool {
			return req.AmountMinor == 1999 && req.Currency == "usd"
		})).Return(&provider.CheckoutSession{
			SessionID:       "cs_test_123",
			PaymentIntentID: "pi_test_123",
			URL:             "https://checkout.example/cs_test_123",
		}, nil)

		paymentRepo.On("Create", ctx, mock.MatchedBy(func(p *model.Payment) bool {
			return p.UserID == userID &&
				p.Amount.Equal(decimal.RequireFromString("19.99")) &&
				p.Currency == "usd" &&
				p.ProviderPaymentIntentID == "pi_test_123" &&
				p.Status == model.PaymentStatusPending
		})).Return(nil)

		result, err := uc.Initiate(ctx, userID, "19.99", nil)

		assert.NoError(t, err)
		assert.Equal(t, "cs_test_123", result.SessionID)
		assert.Equal(t, "https://checkout.example/cs_test_123", result.URL)
		gateway.AssertExpectations(t)
		paymentRepo.AssertExpectations(t)
	})

	t.Run("minor unit conversion truncates", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepository)
		orderRepo := new(MockOrderRepository)
		gateway := new(MockCheckoutProvider)
		uc := usecase.NewCheckoutUsecase(paymentRepo, orderRepo, gateway, logger)

		gateway.On("CreateCheckoutSession", ctx, mock.MatchedBy(func(req *provider.CreateSessionRequest) bool {
			return req.AmountMinor == 1099
		})).Return(&provider.CheckoutSession{SessionID: "cs_1", PaymentIntentID: "pi_1"}, nil)
		paymentRepo.On("Create", ctx, mock.Anything).Return(nil)

		_, err := uc.Initiate(ctx, userID, "10.999", nil)

		assert.NoError(t, err)
		gateway.AssertExpectations(t)
	})

	t.Run("non-numeric amount", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepository)
		orderRepo := new(MockOrderRepository)
		gateway := new(MockCheckoutProvider)
		uc := usecase.NewCheckoutUsecase(paymentRepo, orderRepo, gateway, logger)

		result, err := uc.Initiate(ctx, userID, "abc", nil)

		assert.Nil(t, result)
		var validationErr *domainErrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		gateway.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
		paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("negative amount creates nothing", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepository)
		orderRepo := new(MockOrderRepository)
		gateway := new(MockCheckoutProvider)
		uc := usecase.NewCheckoutUsecase(paymentRepo, orderRepo, gateway, logger)

		result, err := uc.Initiate(ctx, userID, "-5", nil)

		assert.Nil(t, result)
		var validationErr *domainErrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Amount is required", validationErr.Message)
		paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("gateway failure leaves no payment behind", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepository)
		orderRepo := new(MockOrderRepository)
		gateway := new(MockCheckoutProvider)
		uc := usecase.NewCheckoutUsecase(paymentRepo, orderRepo, gateway, logger)

		gateway.On("CreateCheckoutSession", ctx, mock.Anything).
			Return(nil, &provider.ProviderError{Code: "card_error", Message: "your card was declined"})

		result, err := uc.Initiate(ctx, userID, "25.00", nil)

		assert.Nil(t, result)
		var providerErr *provider.ProviderError
		assert.ErrorAs(t, err, &providerErr)
		assert.Equal(t, "your card was declined", providerErr.Message)
		paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("linked order must belong to caller", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepository)
		orderRepo := new(MockOrderRepository)
		gateway := new(MockCheckoutProvider)
		uc := usecase.NewCheckoutUsecase(paymentRepo, orderRepo, gateway, logger)

		orderID := int64(42)
		orderRepo.On("GetByIDForUser", ctx, orderID, userID).Return(nil, domainErrors.ErrNotFound)

		result, err := uc.Initiate(ctx, userID, "25.00", &orderID)

		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domainErrors.ErrNotFound))
		gateway.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
		paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("linked order is recorded on the payment", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepository)
		orderRepo := new(MockOrderRepository)
		gateway := new(MockCheckoutProvider)
		uc := usecase.NewCheckoutUsecase(paymentRepo, orderRepo, gateway, logger)

		orderID := int64(7)
		orderRepo.On("GetByIDForUser", ctx, orderID, userID).
			Return(&model.Order{ID: orderID, UserID: userID}, nil)
		gateway.On("CreateCheckoutSession", ctx, mock.Anything).
			Return(&provider.CheckoutSession{SessionID: "cs_2", PaymentIntentID: "pi_2"}, nil)
		paymentRepo.On("Create", ctx, mock.MatchedBy(func(p *model.Payment) bool {
			return p.OrderID != nil && *p.OrderID == orderID
		})).Return(nil)

		_, err := uc.Initiate(ctx, userID, "12.00", &orderID)

		assert.NoError(t, err)
		paymentRepo.AssertExpectations(t)
	})
}
