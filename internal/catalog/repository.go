package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/store"
)

type Repository interface {
	All(ctx context.Context) ([]Product, error)
}

type storeRepo struct {
	backend store.Backend
	logger  *zap.Logger
}

// NewStoreRepository reads the product list from the products document.
// A missing or corrupt document reads as an empty catalog.
func NewStoreRepository(backend store.Backend, logger *zap.Logger) Repository {
	return &storeRepo{backend: backend, logger: logger}
}

func (r *storeRepo) All(ctx context.Context) ([]Product, error) {
	return store.ReadOrEmpty(ctx, r.backend, store.ProductsKey, []Product{}, r.logger)
}
