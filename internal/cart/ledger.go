package cart

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/metrics"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/store"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/validation"
)

var ErrEmptyCart = errors.New("cart is empty")

// Ledger owns every user's cart. Read-modify-write sequences on one user's
// cart are serialized by the cart's document key, so padded and unpadded
// forms of one user id share a lock. Different users never block each other.
type Ledger struct {
	repo    Repository
	locks   *store.KeyedMutex
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewLedger builds a ledger over repo. Components sharing one backend should
// share locks; nil gets a private set.
func NewLedger(repo Repository, locks *store.KeyedMutex, logger *zap.Logger, m *metrics.Metrics) *Ledger {
	if locks == nil {
		locks = store.NewKeyedMutex()
	}
	return &Ledger{
		repo:    repo,
		locks:   locks,
		logger:  logger,
		metrics: m,
	}
}

func (l *Ledger) lock(userID string) (func(), error) {
	key, err := store.CartKey(userID)
	if err != nil {
		return nil, err
	}
	return l.locks.Lock(key), nil
}

func (l *Ledger) Get(ctx context.Context, userID string) (Cart, error) {
	return l.repo.Load(ctx, userID)
}

// AddItem merges in into the user's cart. An existing line keeps its stored
// price; only its quantity and total change.
func (l *Ledger) AddItem(ctx context.Context, userID string, in ProductInput) (Cart, error) {
	if err := validation.Struct("cart item", in); err != nil {
		return nil, err
	}

	unlock, err := l.lock(userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	c, err := l.repo.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	qty := in.quantity()
	merged := false
	for i := range c {
		if c[i].ID == in.ID {
			c[i].Quantity += qty
			c[i].TotalPrice = lineTotal(c[i].Price, c[i].Quantity)
			merged = true
			break
		}
	}
	if !merged {
		c = append(c, LineItem{
			ID:         in.ID,
			Name:       in.Name,
			Category:   in.Category,
			Price:      *in.Price,
			Quantity:   qty,
			TotalPrice: lineTotal(*in.Price, qty),
			ImageURL:   in.ImageURL,
		})
	}

	if err := l.repo.Save(ctx, userID, c); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	l.metrics.CartMutation("add")
	l.logger.Debug("cart item added",
		zap.String("user_id", userID),
		zap.String("product_id", in.ID),
		zap.Int("quantity", qty),
		zap.Bool("merged", merged))
	return c, nil
}

// RemoveItem drops every line for productID and reports whether any existed.
func (l *Ledger) RemoveItem(ctx context.Context, userID, productID string) (bool, error) {
	unlock, err := l.lock(userID)
	if err != nil {
		return false, err
	}
	defer unlock()

	c, err := l.repo.Load(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("load cart: %w", err)
	}

	kept := make(Cart, 0, len(c))
	for _, it := range c {
		if it.ID != productID {
			kept = append(kept, it)
		}
	}

	if err := l.repo.Save(ctx, userID, kept); err != nil {
		return false, fmt.Errorf("save cart: %w", err)
	}

	removed := len(kept) != len(c)
	if removed {
		l.metrics.CartMutation("remove")
	}
	return removed, nil
}

func (l *Ledger) Clear(ctx context.Context, userID string) error {
	unlock, err := l.lock(userID)
	if err != nil {
		return err
	}
	defer unlock()

	if err := l.repo.Save(ctx, userID, Cart{}); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	l.metrics.CartMutation("clear")
	return nil
}

// Checkout hands a snapshot of the user's cart to place while holding the
// cart lock, then empties the cart if place succeeded. An empty cart returns
// ErrEmptyCart without calling place.
func (l *Ledger) Checkout(ctx context.Context, userID string, place func(ctx context.Context, snapshot Cart) error) error {
	unlock, err := l.lock(userID)
	if err != nil {
		return err
	}
	defer unlock()

	c, err := l.repo.Load(ctx, userID)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}
	if len(c) == 0 {
		return ErrEmptyCart
	}

	if err := place(ctx, c.clone()); err != nil {
		return err
	}

	if err := l.repo.Save(ctx, userID, Cart{}); err != nil {
		return fmt.Errorf("clear cart after checkout: %w", err)
	}
	l.metrics.CartMutation("checkout")
	return nil
}
