package wishlist

import (
	"context"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/store"
)

type Repository interface {
	Load(ctx context.Context, userID string) ([]Item, error)
	Save(ctx context.Context, userID string, items []Item) error
}

type storeRepo struct {
	backend store.Backend
	logger  *zap.Logger
}

func NewStoreRepository(backend store.Backend, logger *zap.Logger) Repository {
	return &storeRepo{backend: backend, logger: logger}
}

func (r *storeRepo) Load(ctx context.Context, userID string) ([]Item, error) {
	key, err := store.WishlistKey(userID)
	if err != nil {
		return nil, err
	}
	return store.ReadOrEmpty(ctx, r.backend, key, []Item{}, r.logger)
}

func (r *storeRepo) Save(ctx context.Context, userID string, items []Item) error {
	key, err := store.WishlistKey(userID)
	if err != nil {
		return err
	}
	if items == nil {
		items = []Item{}
	}
	return store.Write(ctx, r.backend, key, items)
}
