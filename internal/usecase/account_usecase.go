package usecase

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/shoplite/shop-backend/internal/domain/errors"
	"github.com/shoplite/shop-backend/internal/domain/model"
	"github.com/shoplite/shop-backend/internal/domain/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// AccountUsecase handles registration and credential exchange.
type AccountUsecase struct {
	userRepo repository.UserRepository
	tokens   *TokenService
	logger   *zap.Logger
}

// NewAccountUsecase creates a new AccountUsecase instance
func NewAccountUsecase(userRepo repository.UserRepository, tokens *TokenService, logger *zap.Logger) *AccountUsecase {
	return &AccountUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// RegisterParams are the registration inputs.
type RegisterParams struct {
	Username string
	Email    string
	Password string
}

// Register creates a customer account. The response deliberately carries no
// credential material; callers get a confirmation message only.
func (u *AccountUsecase) Register(ctx context.Context, params RegisterParams) error {
	if params.Username == "" || params.Email == "" {
		return domainErrors.NewValidationError("username and email are required")
	}
	if len(params.Password) < minPasswordLength {
		return domainErrors.NewValidationError("password must be at least 8 characters")
	}

	taken, err := u.userRepo.ExistsByUsernameOrEmail(ctx, params.Username, params.Email)
	if err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if taken {
		return domainErrors.NewValidationError("username or email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: string(hash),
		Role:         model.RoleCustomer,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return err
	}

	u.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))
	return nil
}

// Login exchanges credentials for a token pair. Which part of the credentials
// was wrong is not disclosed.
func (u *AccountUsecase) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		u.logger.Warn("Login failed", zap.String("username", username))
		return nil, domainErrors.ErrUnauthorized
	}

	return u.tokens.IssuePair(user)
}

// Refresh exchanges a valid refresh token for a fresh access token. The user
// is re-read so a role change takes effect on the next access token.
func (u *AccountUsecase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	userID, err := u.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return "", err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return "", domainErrors.ErrUnauthorized
		}
		return "", err
	}

	return u.tokens.IssueAccess(user)
}
