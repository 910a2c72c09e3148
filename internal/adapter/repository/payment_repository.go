package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	domainErrors "github.com/shoplite/shop-backend/internal/domain/errors"
	"github.com/shoplite/shop-backend/internal/domain/model"
	"github.com/shoplite/shop-backend/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type paymentRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB, logger *zap.Logger) repository.PaymentRepository {
	return &paymentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		r.logger.Error("Failed to create payment",
			zap.String("user_id", payment.UserID.String()),
			zap.String("payment_intent_id", payment.ProviderPaymentIntentID),
			zap.Error(err))
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

func (r *paymentRepository) GetByPaymentIntentID(ctx context.Context, intentID string) (*model.Payment, error) {
	var payment model.Payment
	err := r.db.WithContext(ctx).
		Where("provider_payment_intent_id = ?", intentID).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrNotFound
		}
		r.logger.Error("Failed to get payment by intent id",
			zap.String("payment_intent_id", intentID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		r.logger.Error("Failed to list payments",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// MarkPaid performs the pending -> paid transition as a single conditional
// update. The status guard makes redelivered webhooks a no-op and leaves no
// way to move a paid payment back to pending.
func (r *paymentRepository) MarkPaid(ctx context.Context, intentID string) (bool, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("provider_payment_intent_id = ? AND status = ?", intentID, model.PaymentStatusPending).
		Updates(map[string]interface{}{
			"status":     model.PaymentStatusPaid,
			"paid_at":    now,
			"updated_at": now,
		})
	if result.Error != nil {
		r.logger.Error("Failed to mark payment paid",
			zap.String("payment_intent_id", intentID),
			zap.Error(result.Error))
		return false, fmt.Errorf("failed to mark payment paid: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
