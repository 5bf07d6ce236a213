package order

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/metrics"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/promo"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/store"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidPromoCode = errors.New("invalid promo code")
	ErrNegativeDiscount = errors.New("discount must not be negative")
)

// EventPublisher is notified after an order has been persisted.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, o *Order) error
}

type Workflow struct {
	carts     *cart.Ledger
	promos    *promo.Registry
	orders    Repository
	publisher EventPublisher
	logger    *zap.Logger
	metrics   *metrics.Metrics

	now   func() time.Time
	newID func() string
}

func NewWorkflow(
	carts *cart.Ledger,
	promos *promo.Registry,
	orders Repository,
	publisher EventPublisher,
	logger *zap.Logger,
	m *metrics.Metrics,
) *Workflow {
	return &Workflow{
		carts:     carts,
		promos:    promos,
		orders:    orders,
		publisher: publisher,
		logger:    logger,
		metrics:   m,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

// PlaceOrder turns the user's cart into an order with discount subtracted
// from the total. An empty cart yields a CartEmpty result and writes nothing.
// customer defaults to {"name": userID}.
func (w *Workflow) PlaceOrder(ctx context.Context, userID string, customer *Customer, discount Amount) (Result, error) {
	if discount < 0 {
		return Result{}, ErrNegativeDiscount
	}
	return w.place(ctx, userID, customer, func(context.Context, float64) (Amount, error) {
		return discount, nil
	})
}

// PlaceOrderWithPromo resolves code against the cart subtotal and places the
// order with the resulting amount off. An empty cart wins over a bad code.
func (w *Workflow) PlaceOrderWithPromo(ctx context.Context, userID string, customer *Customer, code string) (Result, error) {
	return w.place(ctx, userID, customer, func(ctx context.Context, subtotal float64) (Amount, error) {
		v := w.promos.Validate(ctx, code)
		if !v.Valid {
			return 0, fmt.Errorf("%w: %s", ErrInvalidPromoCode, v.Message)
		}
		return Amount(v.Discount.AmountOf(subtotal)), nil
	})
}

// place checks out the user's cart under the canonical user id, so the order
// is listed under the same id whatever padding the caller used.
func (w *Workflow) place(
	ctx context.Context,
	rawUserID string,
	customer *Customer,
	discountFor func(ctx context.Context, subtotal float64) (Amount, error),
) (Result, error) {
	userID, err := store.UserID(rawUserID)
	if err != nil {
		return Result{}, err
	}

	var placed Order
	err = w.carts.Checkout(ctx, userID, func(ctx context.Context, snapshot cart.Cart) error {
		total := snapshot.Subtotal()
		amount, err := discountFor(ctx, total)
		if err != nil {
			return err
		}
		discount := float64(amount)

		placed = Order{
			OrderID:    w.newID(),
			UserID:     userID,
			Customer:   customerOrDefault(customer, userID),
			Items:      snapshot,
			TotalPrice: total,
			Discount:   discount,
			FinalTotal: decimal.NewFromFloat(total).Sub(decimal.NewFromFloat(discount)).InexactFloat64(),
			CreatedAt:  w.now(),
		}
		return w.orders.Append(ctx, placed)
	})
	if errors.Is(err, cart.ErrEmptyCart) {
		w.metrics.EmptyCheckout()
		w.logger.Info("order not placed: cart empty", zap.String("user_id", userID))
		return Result{Status: StatusCartEmpty}, nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("place order for %s: %w", userID, err)
	}

	w.metrics.OrderPlaced(placed.FinalTotal)
	w.logger.Info("order placed",
		zap.String("order_id", placed.OrderID),
		zap.String("user_id", userID),
		zap.Int("items", len(placed.Items)),
		zap.Float64("final_total", placed.FinalTotal))

	if err := w.publisher.PublishOrderPlaced(ctx, &placed); err != nil {
		w.logger.Error("publish order placed",
			zap.String("order_id", placed.OrderID),
			zap.Error(err))
	}

	return Result{Status: StatusPlaced, Order: &placed}, nil
}

func customerOrDefault(c *Customer, userID string) Customer {
	if c == nil || *c == (Customer{}) {
		return Customer{Name: userID}
	}
	return *c
}

// GetUserOrders returns the user's orders, newest first. Orders sharing a
// timestamp (or predating timestamps) keep reverse insertion order.
func (w *Workflow) GetUserOrders(ctx context.Context, rawUserID string) ([]Order, error) {
	userID, err := store.UserID(rawUserID)
	if err != nil {
		return nil, err
	}

	all, err := w.orders.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	out := make([]Order, 0)
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].UserID == userID {
			out = append(out, all[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (w *Workflow) GetOrder(ctx context.Context, orderID string) (Order, error) {
	all, err := w.orders.All(ctx)
	if err != nil {
		return Order{}, fmt.Errorf("load orders: %w", err)
	}
	for _, o := range all {
		if o.OrderID == orderID {
			return o, nil
		}
	}
	return Order{}, ErrOrderNotFound
}

// ListAll returns every order in insertion order.
func (w *Workflow) ListAll(ctx context.Context) ([]Order, error) {
	return w.orders.All(ctx)
}

func (w *Workflow) ValidatePromoCode(ctx context.Context, code string) promo.Validation {
	return w.promos.Validate(ctx, code)
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) PublishOrderPlaced(context.Context, *Order) error { return nil }
