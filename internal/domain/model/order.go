package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order belongs to exactly one user, set at creation time from the
// authenticated caller and never reassigned.
type Order struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Items     []OrderItem     `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt time.Time       `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// OrderItem is a line of an order. UnitPrice is the catalog price captured at
// creation time, not a client-supplied value.
type OrderItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64           `gorm:"not null;index" json:"order_id"`
	ProductID int64           `gorm:"not null" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
}

// TableName specifies the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}
