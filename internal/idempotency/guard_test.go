package idempotency

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopGuardAcceptsEverything(t *testing.T) {
	guard := NopGuard{}

	ok, err := guard.Register(context.Background(), "key-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = guard.Register(context.Background(), "key-1")
	require.NoError(t, err)
	assert.True(t, ok)
}
