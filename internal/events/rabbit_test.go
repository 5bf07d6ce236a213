package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/correlation"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/order"
)

type channelMock struct {
	declareErr error
	publishErr error
	closed     bool

	exchange   string
	routingKey string
	published  []amqp.Publishing
}

func (c *channelMock) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	c.exchange = name
	return c.declareErr
}

func (c *channelMock) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	c.routingKey = key
	c.published = append(c.published, msg)
	return c.publishErr
}

func (c *channelMock) Close() error {
	c.closed = true
	return nil
}

func sampleOrder() *order.Order {
	return &order.Order{
		OrderID:    "o-1",
		UserID:     "maria",
		Items:      []cart.LineItem{{ID: "p1", Price: 10, Quantity: 2}, {ID: "p2", Price: 5, Quantity: 1}},
		TotalPrice: 25,
		Discount:   3,
		FinalTotal: 22,
	}
}

func TestBuildOrderPlacedEvent(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ev := BuildOrderPlacedEvent(sampleOrder(), EnvelopeOptions{EventID: "e-1", CorrelationID: "c-1", OccurredAt: at})

	assert.Equal(t, OrderPlacedEventName, ev.EventName)
	assert.Equal(t, OrderPlacedEventVersion, ev.EventVersion)
	assert.Equal(t, "e-1", ev.EventID)
	assert.Equal(t, "c-1", ev.CorrelationID)
	assert.Equal(t, "maria", ev.PartitionKey)
	assert.Equal(t, at, ev.OccurredAt)
	assert.Equal(t, 22.0, ev.Payload.FinalTotal)
	assert.Equal(t, []OrderPlacedItem{{ProductID: "p1", Quantity: 2, Price: 10}, {ProductID: "p2", Quantity: 1, Price: 5}}, ev.Payload.Items)
}

func TestBuildOrderPlacedEventDefaults(t *testing.T) {
	ev := BuildOrderPlacedEvent(sampleOrder(), EnvelopeOptions{})
	assert.NotEmpty(t, ev.EventID)
	assert.False(t, ev.OccurredAt.IsZero())
	assert.Empty(t, ev.CorrelationID)
}

func TestRabbitPublisherPublishesEnvelope(t *testing.T) {
	ch := &channelMock{}
	p, err := newRabbitPublisher(ch)
	require.NoError(t, err)
	assert.Equal(t, EventsExchange, ch.exchange)

	ctx := correlation.WithID(context.Background(), "corr-9")
	require.NoError(t, p.PublishOrderPlaced(ctx, sampleOrder()))

	require.Len(t, ch.published, 1)
	msg := ch.published[0]
	assert.Equal(t, OrderPlacedRoutingKey, ch.routingKey)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "corr-9", msg.CorrelationId)

	var ev EventEnvelope
	require.NoError(t, json.Unmarshal(msg.Body, &ev))
	assert.Equal(t, "o-1", ev.Payload.OrderID)
	assert.Equal(t, "corr-9", ev.CorrelationID)
	assert.Equal(t, msg.MessageId, ev.EventID)
}

func TestRabbitPublisherErrors(t *testing.T) {
	_, err := newRabbitPublisher(&channelMock{declareErr: errors.New("access refused")})
	require.Error(t, err)

	ch := &channelMock{publishErr: errors.New("channel closed")}
	p, err := newRabbitPublisher(ch)
	require.NoError(t, err)
	require.Error(t, p.PublishOrderPlaced(context.Background(), sampleOrder()))

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}
