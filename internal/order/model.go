package order

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending Status = "PENDING"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
)

// DefaultCurrency is applied whenever the inventory source omits a currency.
const DefaultCurrency = "INR"

// Order is the persisted record of one purchase request. UnitPrice is nil
// until pricing has been resolved, either at creation or lazily on first read.
type Order struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	ProductID     uuid.UUID
	ProductName   string
	Quantity      int
	UnitPrice     *float64
	Currency      string
	Status        Status
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PricingResolved reports whether both unit price and a non-blank currency
// are already set, i.e. no backfill is needed.
func (o *Order) PricingResolved() bool {
	return o.UnitPrice != nil && o.Currency != ""
}

// TotalAmount is unit price times quantity, nil while pricing is unresolved.
func (o *Order) TotalAmount() *float64 {
	if o.UnitPrice == nil {
		return nil
	}
	total := *o.UnitPrice * float64(o.Quantity)
	return &total
}
