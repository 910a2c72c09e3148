package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the payment state machine. The only legal transition is
// pending -> paid, enforced by PaymentRepository.MarkPaid.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Scan implements sql.Scanner interface
func (s *PaymentStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*s = PaymentStatus(v)
	case []byte:
		*s = PaymentStatus(v)
	default:
		*s = PaymentStatusPending
	}
	return nil
}

// Value implements driver.Valuer interface
func (s PaymentStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// Payment is an append-only financial record. It is created pending by the
// checkout initiator and marked paid only by the webhook flow.
type Payment struct {
	ID                      int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID                  uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	OrderID                 *int64          `gorm:"index" json:"order_id,omitempty"`
	Amount                  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Currency                string          `gorm:"size:3;not null;default:'usd'" json:"currency"`
	ProviderSessionID       string          `gorm:"size:255" json:"provider_session_id"`
	ProviderPaymentIntentID string          `gorm:"uniqueIndex;size:255;not null" json:"provider_payment_intent_id"`
	Status                  PaymentStatus   `gorm:"size:20;not null;default:'pending'" json:"status"`
	PaidAt                  *time.Time      `json:"paid_at,omitempty"`
	ProviderData            JSONB           `gorm:"type:jsonb" json:"provider_data,omitempty"`
	CreatedAt               time.Time       `gorm:"default:now()" json:"created_at"`
	UpdatedAt               time.Time       `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Payment) TableName() string {
	return "payments"
}
