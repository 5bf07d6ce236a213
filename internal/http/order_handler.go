package httpapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/order"
)

type placeOrderRequest struct {
	Customer  *order.Customer `json:"customer"`
	Discount  order.Amount    `json:"discount"`
	PromoCode string          `json:"promoCode"`
}

// PlaceOrder answers 201 with the order, or 200 {"status":"cart empty"} when
// there was nothing to buy. A promo code takes precedence over a discount.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	userID := chi.URLParam(r, "userId")

	var (
		res order.Result
		err error
	)
	if strings.TrimSpace(req.PromoCode) != "" {
		res, err = h.orders.PlaceOrderWithPromo(r.Context(), userID, req.Customer, req.PromoCode)
	} else {
		res, err = h.orders.PlaceOrder(r.Context(), userID, req.Customer, req.Discount)
	}
	if err != nil {
		h.fail(w, r, "place order", err)
		return
	}

	if !res.Placed() {
		writeJSON(w, http.StatusOK, statusResponse{Status: "cart empty"})
		return
	}
	writeJSON(w, http.StatusCreated, res.Order)
}

func (h *Handler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.GetUserOrders(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		h.fail(w, r, "list orders", err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.orders.GetOrder(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		h.fail(w, r, "get order", err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) ListAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListAll(r.Context())
	if err != nil {
		h.fail(w, r, "list orders", err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}
