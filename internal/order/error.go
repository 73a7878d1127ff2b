package order

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrForbidden        = errors.New("You are not allowed to pay this order")
	ErrAlreadyPaid      = errors.New("Order is already paid")
	ErrInvalidPrice     = errors.New("Invalid product price from inventory")
	ErrInvalidQuantity  = errors.New("Quantity must be greater than zero")
	ErrDuplicateRequest = errors.New("Order already submitted with this idempotency key")
)

// NotFoundError reports a lookup for an order id the store does not hold.
type NotFoundError struct {
	OrderID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Order not found with id: %s", e.OrderID)
}

// InsufficientInventoryError reports a create attempt exceeding available stock.
type InsufficientInventoryError struct {
	Available int
	Requested int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("Insufficient inventory. Available: %d, requested: %d", e.Available, e.Requested)
}
