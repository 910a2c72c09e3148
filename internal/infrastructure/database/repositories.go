package database

import (
	"github.com/shoplite/shop-backend/internal/adapter/repository"
	domainRepo "github.com/shoplite/shop-backend/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	User    domainRepo.UserRepository
	Product domainRepo.ProductRepository
	Order   domainRepo.OrderRepository
	Payment domainRepo.PaymentRepository
	Webhook repository.WebhookRepository
}

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		User:    repository.NewUserRepository(db, logger),
		Product: repository.NewProductRepository(db, logger),
		Order:   repository.NewOrderRepository(db, logger),
		Payment: repository.NewPaymentRepository(db, logger),
		Webhook: repository.NewWebhookRepository(db, logger),
	}
}
