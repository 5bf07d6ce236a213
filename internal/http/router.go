package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/correlation"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/metrics"
)

type RouterOptions struct {
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	CORSOrigins    []string
	RequestTimeout time.Duration
}

func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(CorrelationID)
	r.Use(RequestLogger(logger))
	r.Use(Recover(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", correlation.Header},
		ExposedHeaders:   []string{correlation.Header},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	r.Get("/health", h.Health)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Get("/products", h.ListProducts)
	r.Get("/products/{productId}", h.GetProduct)
	r.Get("/search", h.SearchProducts)

	r.Route("/cart/{userId}", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Post("/add", h.AddToCart)
		r.Post("/remove", h.RemoveFromCart)
		r.Post("/clear", h.ClearCart)
	})

	r.Route("/wishlist/{userId}", func(r chi.Router) {
		r.Get("/", h.GetWishlist)
		r.Post("/add", h.AddToWishlist)
		r.Post("/remove", h.RemoveFromWishlist)
		r.Post("/clear", h.ClearWishlist)
	})

	r.Post("/order/{userId}", h.PlaceOrder)
	r.Get("/order/id/{orderId}", h.GetOrder)
	r.Get("/orders/{userId}", h.ListUserOrders)

	r.Post("/promo/validate", h.ValidatePromo)

	r.Route("/admin", func(r chi.Router) {
		r.Get("/promo", h.ListPromos)
		r.Post("/promo", h.AddPromo)
		r.Delete("/promo/{code}", h.RemovePromo)
		r.Get("/orders", h.ListAllOrders)
	})

	return r
}
