package order

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingCache(t *testing.T) {
	cache, err := NewPricingCache(2)
	require.NoError(t, err)

	a, b, c := uuid.New(), uuid.New(), uuid.New()

	cache.Put(a, Pricing{UnitPrice: 1, Currency: "INR"})
	cache.Put(b, Pricing{UnitPrice: 2, Currency: "USD"})

	got, ok := cache.Get(a)
	require.True(t, ok)
	assert.Equal(t, 1.0, got.UnitPrice)

	// capacity is 2; inserting a third entry evicts the least recently used
	cache.Put(c, Pricing{UnitPrice: 3, Currency: "EUR"})
	_, ok = cache.Get(b)
	assert.False(t, ok)

	_, ok = cache.Get(uuid.New())
	assert.False(t, ok)
}

func TestNilPricingCacheIsSafe(t *testing.T) {
	var cache *PricingCache

	assert.NotPanics(t, func() {
		cache.Put(uuid.New(), Pricing{UnitPrice: 1})
		_, ok := cache.Get(uuid.New())
		assert.False(t, ok)
	})
}
