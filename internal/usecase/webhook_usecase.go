package usecase

import (
	"context"

	adapterRepo "github.com/shoplite/shop-backend/internal/adapter/repository"
	"github.com/shoplite/shop-backend/internal/domain/provider"
	"github.com/shoplite/shop-backend/internal/domain/repository"
	"go.uber.org/zap"
)

// WebhookUsecase applies verified gateway events to payment state. The
// handler has already authenticated the event; everything here trusts the
// decoded payload.
type WebhookUsecase struct {
	paymentRepo repository.PaymentRepository
	webhookRepo adapterRepo.WebhookRepository
	logger      *zap.Logger
}

// NewWebhookUsecase creates a new WebhookUsecase instance
func NewWebhookUsecase(
	paymentRepo repository.PaymentRepository,
	webhookRepo adapterRepo.WebhookRepository,
	logger *zap.Logger,
) *WebhookUsecase {
	return &WebhookUsecase{
		paymentRepo: paymentRepo,
		webhookRepo: webhookRepo,
		logger:      logger,
	}
}

// ProcessEvent records the event and, for a completed checkout session,
// transitions the matching payment to paid. Irrelevant event types and
// unknown payment references are accepted without mutation so the gateway
// stops retrying.
func (u *WebhookUsecase) ProcessEvent(ctx context.Context, event *provider.WebhookEvent) error {
	if err := u.webhookRepo.SaveEvent(ctx, event.EventID, event.EventType, event.Raw); err != nil {
		return err
	}

	if event.EventType != provider.EventTypeCheckoutCompleted {
		u.logger.Info("Ignoring webhook event type",
			zap.String("event_id", event.EventID),
			zap.String("event_type", event.EventType))
		_ = u.webhookRepo.MarkProcessed(ctx, event.EventID)
		return nil
	}

	if event.PaymentIntentID == "" {
		u.logger.Warn("Completed session without payment intent",
			zap.String("event_id", event.EventID),
			zap.String("session_id", event.SessionID))
		_ = u.webhookRepo.MarkProcessed(ctx, event.EventID)
		return nil
	}

	updated, err := u.paymentRepo.MarkPaid(ctx, event.PaymentIntentID)
	if err != nil {
		_ = u.webhookRepo.MarkFailed(ctx, event.EventID, err)
		return err
	}

	if updated {
		u.logger.Info("Payment marked paid",
			zap.String("event_id", event.EventID),
			zap.String("payment_intent_id", event.PaymentIntentID))
	} else {
		// Unknown reference or already paid. Both are benign: test events
		// and redeliveries land here.
		u.logger.Info("No pending payment for completed session",
			zap.String("event_id", event.EventID),
			zap.String("payment_intent_id", event.PaymentIntentID))
	}

	return u.webhookRepo.MarkProcessed(ctx, event.EventID)
}
