package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shoplite/shop-backend/internal/domain/model"
)

// PaymentRepository persists payments. There is no Delete and no general
// status update: MarkPaid is the only way a payment leaves pending.
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	GetByPaymentIntentID(ctx context.Context, intentID string) (*model.Payment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Payment, error)

	// MarkPaid transitions the payment with the given provider payment-intent
	// id from pending to paid. It reports whether a row actually changed, so
	// duplicate webhook deliveries are distinguishable from first delivery.
	MarkPaid(ctx context.Context, intentID string) (bool, error)
}
