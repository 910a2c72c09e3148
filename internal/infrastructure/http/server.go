package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	handlers "github.com/shoplite/shop-backend/internal/adapter/handler/http"
	"github.com/shoplite/shop-backend/internal/config"
	"github.com/shoplite/shop-backend/internal/domain/provider"
	"github.com/shoplite/shop-backend/internal/infrastructure/database"
	stripeProvider "github.com/shoplite/shop-backend/internal/infrastructure/provider/stripe"
	"github.com/shoplite/shop-backend/internal/middleware/auth"
	"github.com/shoplite/shop-backend/internal/usecase"
	"go.uber.org/zap"
)

type Server struct {
	config  *config.Config
	logger  *zap.Logger
	echo    *echo.Echo
	repos   *database.Repositories
	gateway provider.CheckoutProvider
}

// requestValidator adapts go-playground/validator to echo's Validator.
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func NewServer(cfg *config.Config, logger *zap.Logger, repos *database.Repositories) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.Service.ClientURL},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
	}))

	gateway := stripeProvider.NewProvider(
		cfg.Service.StripeSecretKey,
		cfg.Service.StripeWebhookSecret,
		cfg.Service.CheckoutSuccessURL,
		cfg.Service.CheckoutCancelURL,
		logger,
	)

	return &Server{
		config:  cfg,
		logger:  logger,
		echo:    e,
		repos:   repos,
		gateway: gateway,
	}
}

func (s *Server) Start() error {
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})

	// Usecases
	tokens := usecase.NewTokenService(s.config.JWT)
	accounts := usecase.NewAccountUsecase(s.repos.User, tokens, s.logger)
	catalog := usecase.NewCatalogUsecase(s.repos.Product, s.logger)
	orders := usecase.NewOrderUsecase(s.repos.Order, s.repos.Product, s.logger)
	checkout := usecase.NewCheckoutUsecase(s.repos.Payment, s.repos.Order, s.gateway, s.logger)
	webhooks := usecase.NewWebhookUsecase(s.repos.Payment, s.repos.Webhook, s.logger)

	// Handlers
	accountHandler := handlers.NewAccountHandler(accounts, s.logger)
	productHandler := handlers.NewProductHandler(catalog, s.logger)
	orderHandler := handlers.NewOrderHandler(orders, s.logger)
	checkoutHandler := handlers.NewCheckoutHandler(checkout, s.logger)
	webhookHandler := handlers.NewWebhookHandler(s.gateway, webhooks, s.logger)

	jwtMiddleware := auth.JWTMiddleware(auth.JWTConfig{
		Secret: s.config.JWT.Secret,
		Logger: s.logger,
	})

	// API v1 routes
	v1 := s.echo.Group("/api/v1")

	// Public routes
	v1.POST("/register", accountHandler.Register)
	v1.POST("/login", accountHandler.Login)
	v1.POST("/token/refresh", accountHandler.Refresh)
	v1.GET("/products", productHandler.List)
	v1.GET("/products/:id", productHandler.Get)

	// Catalog writes require the admin role
	adminProducts := v1.Group("/products", jwtMiddleware, auth.RequireAdmin())
	adminProducts.POST("", productHandler.Create)
	adminProducts.PUT("/:id", productHandler.Update)
	adminProducts.DELETE("/:id", productHandler.Delete)

	// Authenticated routes
	protected := v1.Group("", jwtMiddleware)
	protected.GET("/orders", orderHandler.List)
	protected.POST("/orders", orderHandler.Create)
	protected.POST("/checkout", checkoutHandler.Create)
	protected.GET("/payments", checkoutHandler.ListPayments)

	// Webhook route (outside API versioning); authenticated by signature only
	s.echo.POST("/webhook/stripe", webhookHandler.Handle)
}
