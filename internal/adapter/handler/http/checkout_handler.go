package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shoplite/shop-backend/internal/middleware/auth"
	"github.com/shoplite/shop-backend/internal/usecase"
	"go.uber.org/zap"
)

// CheckoutHandler starts hosted payment sessions.
type CheckoutHandler struct {
	checkout *usecase.CheckoutUsecase
	logger   *zap.Logger
}

// NewCheckoutHandler creates a new CheckoutHandler instance
func NewCheckoutHandler(checkout *usecase.CheckoutUsecase, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		logger:   logger,
	}
}

// CreateCheckoutRequest carries the amount as a string so "19.99" converts
// to cents exactly. order_id optionally links the payment to one of the
// caller's orders.
type CreateCheckoutRequest struct {
	Amount  string `json:"amount"`
	OrderID *int64 `json:"order_id,omitempty"`
}

func (h *CheckoutHandler) Create(c echo.Context) error {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Authentication required",
			"code":  "AUTH_REQUIRED",
		})
	}

	var req CreateCheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	result, err := h.checkout.Initiate(c.Request().Context(), user.UserID, req.Amount, req.OrderID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}

// ListPayments returns the caller's payment history.
func (h *CheckoutHandler) ListPayments(c echo.Context) error {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Authentication required",
			"code":  "AUTH_REQUIRED",
		})
	}

	payments, err := h.checkout.ListPayments(c.Request().Context(), user.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, payments)
}
