package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shoplite/shop-backend/internal/domain/provider"
	"github.com/shoplite/shop-backend/internal/usecase"
	"go.uber.org/zap"
)

// WebhookHandler receives asynchronous gateway notifications on a public
// endpoint. The signature over the raw body is the only authentication.
type WebhookHandler struct {
	gateway provider.CheckoutProvider
	events  *usecase.WebhookUsecase
	logger  *zap.Logger
}

// NewWebhookHandler creates a new WebhookHandler instance
func NewWebhookHandler(gateway provider.CheckoutProvider, events *usecase.WebhookUsecase, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		gateway: gateway,
		events:  events,
		logger:  logger,
	}
}

func (h *WebhookHandler) Handle(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		h.logger.Error("Error reading webhook body", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Error reading request body"})
	}

	sig := c.Request().Header.Get("Stripe-Signature")

	// Signature verification comes before any look at the payload. A forged
	// body never reaches branching logic.
	event, err := h.gateway.VerifyWebhook(body, sig)
	if err != nil {
		h.logger.Warn("Webhook signature verification failed", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Webhook signature verification failed",
		})
	}

	h.logger.Info("Webhook event received",
		zap.String("event_id", event.EventID),
		zap.String("event_type", event.EventType))

	if err := h.events.ProcessEvent(c.Request().Context(), event); err != nil {
		// A 5xx makes the gateway redeliver; the processing path is
		// idempotent, so that is safe.
		h.logger.Error("Failed to process webhook event",
			zap.String("event_id", event.EventID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error processing webhook"})
	}

	return c.JSON(http.StatusOK, echo.Map{"received": true})
}
