package notification

import (
	"context"
	"encoding/json"
	"testing"

	appOrder "github.com/farmbasket/backend/internal/application/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogDispatcher_Dispatch(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	d := NewLogDispatcher(zap.New(core))

	err := d.Dispatch(context.Background(), appOrder.Notification{
		Audience:    appOrder.AudienceBuyer,
		Recipient:   "maria@example.com",
		Subject:     "Order FM-2026-00042 received",
		Body:        "Thank you",
		OrderNumber: "FM-2026-00042",
	})

	require.NoError(t, err)
	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "notification dispatched", entries[0].Message)
	assert.Equal(t, "maria@example.com", entries[0].ContextMap()["recipient"])
}

func TestNotificationSerialization(t *testing.T) {
	n := appOrder.Notification{
		Audience:    appOrder.AudienceProducer,
		Recipient:   "orders@olivegrove.gr",
		Subject:     "New order FM-2026-00042",
		Body:        "You have a new order",
		OrderNumber: "FM-2026-00042",
	}

	payload, err := json.Marshal(n)
	require.NoError(t, err)

	var decoded appOrder.Notification
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, n, decoded)
}
