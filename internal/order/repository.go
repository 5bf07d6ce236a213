package order

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/store"
)

// Repository is the shared, append-only order collection.
type Repository interface {
	All(ctx context.Context) ([]Order, error)
	Append(ctx context.Context, o Order) error
}

type storeRepo struct {
	backend store.Backend
	logger  *zap.Logger
	locks   *store.KeyedMutex
}

// NewStoreRepository keeps orders in one document. Appends lock that
// document's key in locks; nil gets a private set.
func NewStoreRepository(backend store.Backend, locks *store.KeyedMutex, logger *zap.Logger) Repository {
	if locks == nil {
		locks = store.NewKeyedMutex()
	}
	return &storeRepo{backend: backend, logger: logger, locks: locks}
}

// All reads the collection; a missing or corrupt document reads as empty.
func (r *storeRepo) All(ctx context.Context) ([]Order, error) {
	return store.ReadOrEmpty(ctx, r.backend, store.OrdersKey, []Order{}, r.logger)
}

// Append rewrites the collection with o added at the end. A corrupt
// collection is an error here: rewriting it would discard every prior order.
func (r *storeRepo) Append(ctx context.Context, o Order) error {
	unlock := r.locks.Lock(store.OrdersKey)
	defer unlock()

	orders, err := store.Read[[]Order](ctx, r.backend, store.OrdersKey)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("load orders: %w", err)
	}

	orders = append(orders, o)
	if err := store.Write(ctx, r.backend, store.OrdersKey, orders); err != nil {
		return fmt.Errorf("save orders: %w", err)
	}
	return nil
}
