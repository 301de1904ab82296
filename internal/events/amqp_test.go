package events

import (
	"encoding/json"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-pos/internal/audit"
)

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "appointment.payment_registered", RoutingKey(audit.Event{
		Action: audit.ActionPaymentRegistered,
		Entity: "appointment",
	}))
	assert.Equal(t, "shop.rate_overridden", RoutingKey(audit.Event{Action: audit.ActionRateOverridden}))
}

func TestNewPublishing(t *testing.T) {
	id := uint(12)
	at := time.Date(2026, 10, 15, 14, 0, 0, 0, time.UTC)

	msg, err := NewPublishing(audit.Event{
		Action:   audit.ActionAppointmentCancelled,
		Entity:   "appointment",
		EntityID: &id,
		At:       at,
	})
	require.NoError(t, err)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, at, msg.Timestamp)

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Body, &body))
	assert.Equal(t, "appointment_cancelled", body["action"])
	assert.EqualValues(t, 12, body["entity_id"])
}
