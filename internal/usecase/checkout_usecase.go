package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	domainErrors "github.com/shoplite/shop-backend/internal/domain/errors"
	"github.com/shoplite/shop-backend/internal/domain/model"
	"github.com/shoplite/shop-backend/internal/domain/provider"
	"github.com/shoplite/shop-backend/internal/domain/repository"
	"go.uber.org/zap"
)

const checkoutCurrency = "usd"

// CheckoutUsecase opens hosted gateway sessions and records the pending
// payment tied to each one.
type CheckoutUsecase struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
	gateway     provider.CheckoutProvider
	logger      *zap.Logger
}

// NewCheckoutUsecase creates a new CheckoutUsecase instance
func NewCheckoutUsecase(
	paymentRepo repository.PaymentRepository,
	orderRepo repository.OrderRepository,
	gateway provider.CheckoutProvider,
	logger *zap.Logger,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		gateway:     gateway,
		logger:      logger,
	}
}

// InitiateResult is returned to the caller so payment completes off-platform.
type InitiateResult struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// Initiate validates the amount, opens a gateway session and, only after the
// gateway succeeded, persists a pending payment. A gateway failure leaves no
// payment row behind.
func (u *CheckoutUsecase) Initiate(ctx context.Context, userID uuid.UUID, amountStr string, orderID *int64) (*InitiateResult, error) {
	amount, err := decimal.NewFromString(amountStr)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainErrors.NewValidationError("Amount is required")
	}

	if orderID != nil {
		// The linked order must belong to the caller.
		if _, err := u.orderRepo.GetByIDForUser(ctx, *orderID, userID); err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return nil, domainErrors.ErrNotFound
			}
			return nil, err
		}
	}

	// Minor-unit conversion: multiply by 100 and truncate.
	amountMinor := amount.Mul(decimal.NewFromInt(100)).IntPart()

	session, err := u.gateway.CreateCheckoutSession(ctx, &provider.CreateSessionRequest{
		AmountMinor: amountMinor,
		Currency:    checkoutCurrency,
		Reference:   userID.String(),
	})
	if err != nil {
		u.logger.Error("Gateway checkout session failed",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, err
	}

	payment := &model.Payment{
		UserID:                  userID,
		OrderID:                 orderID,
		Amount:                  amount,
		Currency:                checkoutCurrency,
		ProviderSessionID:       session.SessionID,
		ProviderPaymentIntentID: session.PaymentIntentID,
		Status:                  model.PaymentStatusPending,
	}
	if err := u.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record pending payment: %w", err)
	}

	u.logger.Info("Checkout initiated",
		zap.String("user_id", userID.String()),
		zap.String("session_id", session.SessionID),
		zap.String("payment_intent_id", session.PaymentIntentID),
		zap.String("amount", amount.String()))

	return &InitiateResult{
		SessionID: session.SessionID,
		URL:       session.URL,
	}, nil
}

// ListPayments returns the caller's payment history.
func (u *CheckoutUsecase) ListPayments(ctx context.Context, userID uuid.UUID) ([]model.Payment, error) {
	return u.paymentRepo.ListByUser(ctx, userID)
}
