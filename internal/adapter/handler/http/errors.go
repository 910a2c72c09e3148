package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	domainErrors "github.com/shoplite/shop-backend/internal/domain/errors"
	"github.com/shoplite/shop-backend/internal/domain/provider"
)

// respondError maps domain errors to HTTP responses. Anything unmapped is a
// 500 with no internals leaked.
func respondError(c echo.Context, err error) error {
	var validationErr *domainErrors.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": validationErr.Message,
			"code":  "VALIDATION_ERROR",
		})
	}

	var providerErr *provider.ProviderError
	if errors.As(err, &providerErr) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": providerErr.Message,
			"code":  "GATEWAY_ERROR",
		})
	}

	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "not found",
			"code":  "NOT_FOUND",
		})
	case errors.Is(err, domainErrors.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{
			"error": "forbidden",
			"code":  "FORBIDDEN",
		})
	case errors.Is(err, domainErrors.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "invalid credentials",
			"code":  "UNAUTHORIZED",
		})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "internal server error",
			"code":  "INTERNAL",
		})
	}
}
