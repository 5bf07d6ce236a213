// Package app assembles the storefront components on top of one store
// backend.
package app

import (
	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/metrics"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/order"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/promo"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/store"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/wishlist"
)

type Storefront struct {
	Catalog  *catalog.Service
	Carts    *cart.Ledger
	Wishlist *wishlist.Ledger
	Promos   *promo.Registry
	Orders   *order.Workflow
}

// New wires every component to backend. All components lock documents
// through one KeyedMutex, so a Storefront is one lock domain: build a single
// Storefront per backend and share it. A nil publisher disables events.
func New(backend store.Backend, publisher order.EventPublisher, logger *zap.Logger, m *metrics.Metrics) *Storefront {
	if publisher == nil {
		publisher = order.NopPublisher{}
	}

	locks := store.NewKeyedMutex()
	carts := cart.NewLedger(cart.NewStoreRepository(backend, logger), locks, logger, m)
	promos := promo.NewRegistry(promo.NewStoreRepository(backend, logger), locks, logger, m)

	return &Storefront{
		Catalog:  catalog.NewService(catalog.NewStoreRepository(backend, logger)),
		Carts:    carts,
		Wishlist: wishlist.NewLedger(wishlist.NewStoreRepository(backend, logger), locks, logger, m),
		Promos:   promos,
		Orders:   order.NewWorkflow(carts, promos, order.NewStoreRepository(backend, locks, logger), publisher, logger, m),
	}
}
