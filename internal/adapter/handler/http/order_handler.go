package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shoplite/shop-backend/internal/middleware/auth"
	"github.com/shoplite/shop-backend/internal/usecase"
	"go.uber.org/zap"
)

// OrderHandler exposes own-order listing and creation.
type OrderHandler struct {
	orders *usecase.OrderUsecase
	logger *zap.Logger
}

// NewOrderHandler creates a new OrderHandler instance
func NewOrderHandler(orders *usecase.OrderUsecase, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		logger: logger,
	}
}

type OrderItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderRequest carries only items. There is no user field: ownership
// always comes from the authenticated caller.
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (h *OrderHandler) Create(c echo.Context) error {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Authentication required",
			"code":  "AUTH_REQUIRED",
		})
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	items := make([]usecase.OrderItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemParams{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.orders.CreateOrder(c.Request().Context(), user.UserID, items)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) List(c echo.Context) error {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Authentication required",
			"code":  "AUTH_REQUIRED",
		})
	}

	orders, err := h.orders.ListOrders(c.Request().Context(), user.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}
