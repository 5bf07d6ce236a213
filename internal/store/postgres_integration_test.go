//go:build integration

package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

func TestPostgresStoreIntegration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "storefront",
			"POSTGRES_PASSWORD": "storefront",
			"POSTGRES_DB":       "storefront",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(90 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://storefront:storefront@%s:%s/storefront?sslmode=disable", host, port.Port())
	require.NoError(t, RunMigrations(dsn, zap.NewNop()))

	db, err := OpenPostgres(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	s := NewPostgresStore(db)

	_, err = Read[[]doc](ctx, s, OrdersKey)
	require.ErrorIs(t, err, ErrNotFound)

	want := []doc{{ID: "p1", Quantity: 3, Price: 2.5}}
	require.NoError(t, Write(ctx, s, OrdersKey, want))
	require.NoError(t, Write(ctx, s, OrdersKey, append(want, doc{ID: "p2", Quantity: 1, Price: 1})))

	got, err := Read[[]doc](ctx, s, OrdersKey)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "p2", got[1].ID)
}
