package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shoplite/shop-backend/internal/domain/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WebhookRepository records signature-verified gateway events for audit and
// idempotency.
type WebhookRepository interface {
	SaveEvent(ctx context.Context, eventID, eventType string, data map[string]interface{}) error
	MarkProcessed(ctx context.Context, eventID string) error
	MarkFailed(ctx context.Context, eventID string, cause error) error
}

type webhookRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewWebhookRepository creates a new webhook repository
func NewWebhookRepository(db *gorm.DB, logger *zap.Logger) WebhookRepository {
	return &webhookRepository{
		db:     db,
		logger: logger,
	}
}

// SaveEvent saves a new webhook event. Redelivered events conflict on the
// provider event id and are silently skipped.
func (r *webhookRepository) SaveEvent(ctx context.Context, eventID, eventType string, data map[string]interface{}) error {
	event := &model.WebhookEvent{
		ProviderEventID: eventID,
		EventType:       eventType,
		Status:          model.WebhookStatusPending,
		Data:            model.JSONB(data),
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(event).Error
	if err != nil {
		r.logger.Error("Failed to save webhook event",
			zap.String("event_id", eventID),
			zap.String("event_type", eventType),
			zap.Error(err))
		return fmt.Errorf("failed to save webhook event: %w", err)
	}
	return nil
}

func (r *webhookRepository) MarkProcessed(ctx context.Context, eventID string) error {
	now := time.Now()
	err := r.db.WithContext(ctx).Model(&model.WebhookEvent{}).
		Where("provider_event_id = ?", eventID).
		Updates(map[string]interface{}{
			"status":       model.WebhookStatusCompleted,
			"processed_at": now,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to mark webhook event processed: %w", err)
	}
	return nil
}

func (r *webhookRepository) MarkFailed(ctx context.Context, eventID string, cause error) error {
	msg := cause.Error()
	err := r.db.WithContext(ctx).Model(&model.WebhookEvent{}).
		Where("provider_event_id = ?", eventID).
		Updates(map[string]interface{}{
			"status":     model.WebhookStatusFailed,
			"last_error": msg,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to mark webhook event failed: %w", err)
	}
	return nil
}
