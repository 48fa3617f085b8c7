package amqp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mluiza/controle-materiais/internal/application/inventory"
)

func TestNewPublishing_JSONPersistente(t *testing.T) {
	at := time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)
	event := inventory.StockAlertEvent{
		ID: "evt-1", Code: "CIM50", Description: "Cimento", Unit: "saco",
		CurrentStock: decimal.NewFromInt(8), MinimumStock: decimal.NewFromInt(10), OccurredAt: at,
	}

	msg, err := newPublishing(event)
	require.NoError(t, err)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp091.Persistent, msg.DeliveryMode)
	assert.Equal(t, "evt-1", msg.MessageId)
	assert.Equal(t, at, msg.Timestamp)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, "CIM50", decoded["code"])
	assert.Equal(t, "8", decoded["current_stock"])
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NoopPublisher{}.PublishStockAlert(context.Background(), inventory.StockAlertEvent{}))
}
