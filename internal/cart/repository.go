package cart

import (
	"context"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/store"
)

// Repository maps a user id to that user's cart document.
type Repository interface {
	Load(ctx context.Context, userID string) (Cart, error)
	Save(ctx context.Context, userID string, c Cart) error
}

type storeRepo struct {
	backend store.Backend
	logger  *zap.Logger
}

func NewStoreRepository(backend store.Backend, logger *zap.Logger) Repository {
	return &storeRepo{backend: backend, logger: logger}
}

func (r *storeRepo) Load(ctx context.Context, userID string) (Cart, error) {
	key, err := store.CartKey(userID)
	if err != nil {
		return nil, err
	}
	return store.ReadOrEmpty(ctx, r.backend, key, Cart{}, r.logger)
}

func (r *storeRepo) Save(ctx context.Context, userID string, c Cart) error {
	key, err := store.CartKey(userID)
	if err != nil {
		return err
	}
	if c == nil {
		c = Cart{}
	}
	return store.Write(ctx, r.backend, key, c)
}
