package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/order"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/promo"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/store"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/validation"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/wishlist"
)

type Handler struct {
	catalog  *catalog.Service
	carts    *cart.Ledger
	wishlist *wishlist.Ledger
	promos   *promo.Registry
	orders   *order.Workflow
	logger   *zap.Logger
}

func NewHandler(
	catalogSvc *catalog.Service,
	carts *cart.Ledger,
	wishlists *wishlist.Ledger,
	promos *promo.Registry,
	orders *order.Workflow,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		catalog:  catalogSvc,
		carts:    carts,
		wishlist: wishlists,
		promos:   promos,
		orders:   orders,
		logger:   logger,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type errorResponse struct {
	Error  string                  `json:"error"`
	Fields []validation.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// fail maps a domain error onto a status code. Unknown errors are logged and
// hidden behind a generic 500.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Error(), Fields: verr.Fields})
	case errors.Is(err, store.ErrInvalidKey),
		errors.Is(err, order.ErrInvalidPromoCode),
		errors.Is(err, order.ErrNegativeDiscount):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error(op,
			zap.String("path", r.URL.Path),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, op+" failed")
	}
}

// decodeJSON reads an optional JSON body into dst. An empty body leaves dst
// untouched.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
