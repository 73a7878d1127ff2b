package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestIDFrom(ctx))

	ctx = WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", RequestIDFrom(ctx))
}

func TestFromCtx(t *testing.T) {
	Init("test")

	t.Run("without request id", func(t *testing.T) {
		l := FromCtx(context.Background())
		assert.NotNil(t, l)
	})

	t.Run("with request id", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "req-456")
		l := FromCtx(ctx)
		assert.NotNil(t, l)
	})
}
