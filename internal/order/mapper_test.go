package order

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapToResponse(t *testing.T) {
	orderID := uuid.New()
	userID := uuid.New()
	productID := uuid.New()
	createdAt := time.Now().UTC()
	price := 49.9

	base := Order{
		ID:            orderID,
		UserID:        userID,
		ProductID:     productID,
		ProductName:   "Mechanical Keyboard",
		Quantity:      3,
		UnitPrice:     &price,
		Currency:      "USD",
		Status:        StatusPending,
		PaymentStatus: PaymentPending,
		CreatedAt:     createdAt,
	}

	t.Run("Priced order", func(t *testing.T) {
		resp := MapToResponse(&base)

		assert.Equal(t, orderID, resp.OrderID)
		assert.Equal(t, userID, resp.UserID)
		assert.Equal(t, productID, resp.Item.ProductID)
		assert.Equal(t, "Mechanical Keyboard", resp.Item.ProductName)
		assert.Equal(t, 3, resp.Item.Quantity)
		require.NotNil(t, resp.TotalAmount)
		assert.InDelta(t, 149.7, *resp.TotalAmount, 1e-9)
		assert.Equal(t, "USD", resp.Currency)
		assert.Equal(t, StatusPending, resp.Status)
		assert.Equal(t, PaymentPending, resp.PaymentStatus)
		assert.Equal(t, createdAt, resp.CreatedAt)
	})

	t.Run("Unpriced order has nil total", func(t *testing.T) {
		o := base
		o.UnitPrice = nil

		resp := MapToResponse(&o)
		assert.Nil(t, resp.TotalAmount)
	})

	t.Run("Blank currency falls back to INR", func(t *testing.T) {
		o := base
		o.Currency = ""

		resp := MapToResponse(&o)
		assert.Equal(t, "INR", resp.Currency)
	})
}

func TestOrderHelpers(t *testing.T) {
	price := 10.0

	t.Run("PricingResolved", func(t *testing.T) {
		o := Order{UnitPrice: &price, Currency: "INR"}
		assert.True(t, o.PricingResolved())

		o.Currency = ""
		assert.False(t, o.PricingResolved())

		o = Order{Currency: "INR"}
		assert.False(t, o.PricingResolved())
	})

	t.Run("TotalAmount", func(t *testing.T) {
		o := Order{UnitPrice: &price, Quantity: 4}
		require.NotNil(t, o.TotalAmount())
		assert.Equal(t, 40.0, *o.TotalAmount())

		o.UnitPrice = nil
		assert.Nil(t, o.TotalAmount())
	})
}
