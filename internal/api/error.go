package api

import (
	"errors"
	"net/http"
	"time"

	"ordernest-be/internal/auth"
	"ordernest-be/internal/inventory"
	"ordernest-be/internal/order"
	"ordernest-be/internal/payment"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the uniform error body for every failed request.
type ErrorResponse struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
}

func writeError(c echo.Context, err error) error {
	status, message := classify(err)
	return writeErrorMessage(c, status, message)
}

func writeErrorMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorResponse{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      c.Request().URL.Path,
	})
}

// classify maps a service error to an HTTP status and caller-facing message.
// Unclassified failures are reported generically so internals never leak.
func classify(err error) (int, string) {
	var notFound *order.NotFoundError
	var insufficient *order.InsufficientInventoryError

	switch {
	case auth.IsAuthError(err):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &notFound),
		errors.Is(err, inventory.ErrProductNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, order.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.As(err, &insufficient),
		errors.Is(err, order.ErrAlreadyPaid),
		errors.Is(err, order.ErrInvalidPrice),
		errors.Is(err, order.ErrInvalidQuantity):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, inventory.ErrStockConflict),
		errors.Is(err, order.ErrDuplicateRequest):
		return http.StatusConflict, err.Error()
	case errors.Is(err, inventory.ErrUnauthorized),
		errors.Is(err, payment.ErrUnauthorized):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, inventory.ErrUnavailable),
		errors.Is(err, payment.ErrUnavailable):
		return http.StatusBadGateway, err.Error()
	default:
		return http.StatusInternalServerError, "Unexpected server error"
	}
}
