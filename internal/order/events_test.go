package order

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventJSON(t *testing.T) {
	event := Event{
		Type:       EventOrderCreated,
		OrderID:    uuid.New(),
		UserID:     uuid.New(),
		ProductID:  uuid.New(),
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "order-created", decoded["type"])
	assert.Equal(t, event.OrderID.String(), decoded["orderId"])
	assert.Equal(t, event.UserID.String(), decoded["userId"])
	assert.Equal(t, event.ProductID.String(), decoded["productId"])
	assert.Contains(t, decoded, "occurredAt")
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), Event{}))
}
