package order

import (
	"time"

	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	UserID uuid.UUID   `json:"userId"`
	Item   ItemRequest `json:"item"`
}

type ItemRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

type CreateOrderResponse struct {
	OrderID uuid.UUID `json:"orderId"`
}

type OrderItemResponse struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
}

type OrderResponse struct {
	OrderID       uuid.UUID         `json:"orderId"`
	UserID        uuid.UUID         `json:"userId"`
	Item          OrderItemResponse `json:"item"`
	TotalAmount   *float64          `json:"totalAmount"`
	Currency      string            `json:"currency"`
	Status        Status            `json:"status"`
	PaymentStatus PaymentStatus     `json:"paymentStatus"`
	CreatedAt     time.Time         `json:"createdAt"`
}

type PayOrderResponse struct {
	OrderID       uuid.UUID     `json:"orderId"`
	Status        Status        `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	PaymentID     *string       `json:"paymentId"`
	Reason        string        `json:"reason"`
}

// MapToResponse shapes a persisted order for callers. Currency falls back to
// the default when the stored record predates pricing resolution.
func MapToResponse(o *Order) *OrderResponse {
	currency := o.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	return &OrderResponse{
		OrderID: o.ID,
		UserID:  o.UserID,
		Item: OrderItemResponse{
			ProductID:   o.ProductID,
			ProductName: o.ProductName,
			Quantity:    o.Quantity,
		},
		TotalAmount:   o.TotalAmount(),
		Currency:      currency,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		CreatedAt:     o.CreatedAt,
	}
}
