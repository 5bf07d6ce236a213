// Package metrics exposes storefront counters on a private Prometheus
// registry. A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

type Metrics struct {
	registry *prometheus.Registry

	cartMutations     *prometheus.CounterVec
	wishlistMutations *prometheus.CounterVec
	ordersPlaced      prometheus.Counter
	emptyCheckouts    prometheus.Counter
	orderRevenue      prometheus.Counter
	promoValidations  *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.cartMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cart",
			Name:      "mutations_total",
			Help:      "Cart mutations by operation.",
		},
		[]string{"op"},
	)
	m.wishlistMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "wishlist",
			Name:      "mutations_total",
			Help:      "Wishlist mutations by operation.",
		},
		[]string{"op"},
	)
	m.ordersPlaced = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "placed_total",
		Help:      "Orders persisted.",
	})
	m.emptyCheckouts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "empty_cart_total",
		Help:      "Place-order calls rejected because the cart was empty.",
	})
	m.orderRevenue = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "final_total_sum",
		Help:      "Sum of final_total over placed orders.",
	})
	m.promoValidations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "promo",
			Name:      "validations_total",
			Help:      "Promo code validations by outcome.",
		},
		[]string{"valid"},
	)

	m.registry.MustRegister(
		m.cartMutations,
		m.wishlistMutations,
		m.ordersPlaced,
		m.emptyCheckouts,
		m.orderRevenue,
		m.promoValidations,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) CartMutation(op string) {
	if m == nil {
		return
	}
	m.cartMutations.WithLabelValues(op).Inc()
}

func (m *Metrics) WishlistMutation(op string) {
	if m == nil {
		return
	}
	m.wishlistMutations.WithLabelValues(op).Inc()
}

func (m *Metrics) OrderPlaced(finalTotal float64) {
	if m == nil {
		return
	}
	m.ordersPlaced.Inc()
	// Counter.Add panics on negative values.
	if finalTotal > 0 {
		m.orderRevenue.Add(finalTotal)
	}
}

func (m *Metrics) EmptyCheckout() {
	if m == nil {
		return
	}
	m.emptyCheckouts.Inc()
}

func (m *Metrics) PromoValidated(valid bool) {
	if m == nil {
		return
	}
	label := "false"
	if valid {
		label = "true"
	}
	m.promoValidations.WithLabelValues(label).Inc()
}
