package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shoplite/shop-backend/internal/domain/model"
)

// UserRepository persists accounts. Users are never deleted by this core.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}
