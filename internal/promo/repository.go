package promo

import (
	"context"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/store"
)

type Repository interface {
	Load(ctx context.Context) (map[string]Percentage, error)
	Save(ctx context.Context, codes map[string]Percentage) error
}

type storeRepo struct {
	backend store.Backend
	logger  *zap.Logger
}

func NewStoreRepository(backend store.Backend, logger *zap.Logger) Repository {
	return &storeRepo{backend: backend, logger: logger}
}

func (r *storeRepo) Load(ctx context.Context) (map[string]Percentage, error) {
	return store.ReadOrEmpty(ctx, r.backend, store.PromosKey, map[string]Percentage{}, r.logger)
}

func (r *storeRepo) Save(ctx context.Context, codes map[string]Percentage) error {
	return store.Write(ctx, r.backend, store.PromosKey, codes)
}
