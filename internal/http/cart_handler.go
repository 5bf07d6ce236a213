package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/cart"
)

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.carts.Get(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		h.fail(w, r, "get cart", err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var in cart.ProductInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if _, err := h.carts.AddItem(r.Context(), chi.URLParam(r, "userId"), in); err != nil {
		h.fail(w, r, "add to cart", err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "added"})
}

type removeRequest struct {
	ProductID string `json:"productId"`
}

func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	var req removeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ProductID == "" {
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: "error", Message: "Product ID required"})
		return
	}

	removed, err := h.carts.RemoveItem(r.Context(), chi.URLParam(r, "userId"), req.ProductID)
	if err != nil {
		h.fail(w, r, "remove from cart", err)
		return
	}
	if !removed {
		writeJSON(w, http.StatusOK, statusResponse{Status: "not_found"})
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "removed"})
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.carts.Clear(r.Context(), chi.URLParam(r, "userId")); err != nil {
		h.fail(w, r, "clear cart", err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "cleared"})
}
