//go:build integration

package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRabbitPublisherIntegration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "rabbitmq:3.13-alpine",
			ExposedPorts: []string{"5672/tcp"},
			WaitingFor:   wait.ForListeningPort("5672/tcp").WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5672")
	require.NoError(t, err)

	conn, err := Dial("amqp://guest:guest@" + host + ":" + port.Port() + "/")
	require.NoError(t, err)
	defer conn.Close()

	p, err := NewRabbitPublisher(conn)
	require.NoError(t, err)
	defer p.Close()

	consumer, err := conn.Channel()
	require.NoError(t, err)
	defer consumer.Close()

	q, err := consumer.QueueDeclare("", false, true, true, false, nil)
	require.NoError(t, err)
	require.NoError(t, consumer.QueueBind(q.Name, OrderPlacedRoutingKey, EventsExchange, false, amqp.Table{}))

	deliveries, err := consumer.Consume(q.Name, "", true, true, false, false, nil)
	require.NoError(t, err)

	require.NoError(t, p.PublishOrderPlaced(ctx, sampleOrder()))

	select {
	case d := <-deliveries:
		var ev EventEnvelope
		require.NoError(t, json.Unmarshal(d.Body, &ev))
		require.Equal(t, "o-1", ev.Payload.OrderID)
	case <-ctx.Done():
		t.Fatal("timed out waiting for OrderPlaced")
	}
}
