package order

import (
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Pricing is the resolved price of one product unit.
type Pricing struct {
	UnitPrice float64
	Currency  string
}

// PricingCache is a bounded in-process cache of resolved product pricing.
// createOrder warms it and the lazy backfill consults it before going back to
// the inventory service. A nil *PricingCache is a valid no-op cache.
type PricingCache struct {
	entries *lru.Cache[uuid.UUID, Pricing]
}

func NewPricingCache(size int) (*PricingCache, error) {
	entries, err := lru.New[uuid.UUID, Pricing](size)
	if err != nil {
		return nil, err
	}
	return &PricingCache{entries: entries}, nil
}

func (c *PricingCache) Get(productID uuid.UUID) (Pricing, bool) {
	if c == nil {
		return Pricing{}, false
	}
	return c.entries.Get(productID)
}

func (c *PricingCache) Put(productID uuid.UUID, pricing Pricing) {
	if c == nil {
		return
	}
	c.entries.Add(productID, pricing)
}
