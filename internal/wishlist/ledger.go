package wishlist

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/metrics"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/store"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/validation"
)

type Ledger struct {
	repo    Repository
	locks   *store.KeyedMutex
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewLedger builds a ledger over repo. nil locks gets a private set.
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

// lock serializes on the wishlist's document key.
func (l *Ledger) lock(userID string) (func(), error) {
	key, err := store.WishlistKey(userID)
	if err != nil {
		return nil, err
	}
	return l.locks.Lock(key), nil
}

func (l *Ledger) Get(ctx context.Context, userID string) ([]Item, error) {
	return l.repo.Load(ctx, userID)
}

// AddItem appends item unless an item with the same id is already saved.
// It reports whether the wishlist changed.
func (l *Ledger) AddItem(ctx context.Context, userID string, item Item) (bool, error) {
	if err := validation.Struct("wishlist item", struct {
		ID string `json:"id" validate:"required"`
	}{ID: item.ID}); err != nil {
		return false, err
	}

	unlock, err := l.lock(userID)
	if err != nil {
		return false, err
	}
	defer unlock()

	items, err := l.repo.Load(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("load wishlist: %w", err)
	}
	for _, it := range items {
		if it.ID == item.ID {
			return false, nil
		}
	}

	if err := l.repo.Save(ctx, userID, append(items, item)); err != nil {
		return false, fmt.Errorf("save wishlist: %w", err)
	}
	l.metrics.WishlistMutation("add")
	l.logger.Debug("wishlist item added", zap.String("user_id", userID), zap.String("product_id", item.ID))
	return true, nil
}

// RemoveItem drops every item with productID.
func (l *Ledger) RemoveItem(ctx context.Context, userID, productID string) (bool, error) {
	unlock, err := l.lock(userID)
	if err != nil {
		return false, err
	}
	defer unlock()

	items, err := l.repo.Load(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("load wishlist: %w", err)
	}

	kept := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ID != productID {
			kept = append(kept, it)
		}
	}
	if err := l.repo.Save(ctx, userID, kept); err != nil {
		return false, fmt.Errorf("save wishlist: %w", err)
	}

	removed := len(kept) != len(items)
	if removed {
		l.metrics.WishlistMutation("remove")
	}
	return removed, nil
}

func (l *Ledger) Clear(ctx context.Context, userID string) error {
	unlock, err := l.lock(userID)
	if err != nil {
		return err
	}
	defer unlock()

	if err := l.repo.Save(ctx, userID, []Item{}); err != nil {
		return fmt.Errorf("clear wishlist: %w", err)
	}
	l.metrics.WishlistMutation("clear")
	return nil
}
