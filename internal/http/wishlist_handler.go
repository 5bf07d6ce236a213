package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/wishlist"
)

func (h *Handler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	items, err := h.wishlist.Get(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		h.fail(w, r, "get wishlist", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	var item wishlist.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	added, err := h.wishlist.AddItem(r.Context(), chi.URLParam(r, "userId"), item)
	if err != nil {
		h.fail(w, r, "add to wishlist", err)
		return
	}
	if !added {
		writeJSON(w, http.StatusOK, statusResponse{Status: "exists"})
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "added"})
}

// RemoveFromWishlist accepts {"productId": ...} or the product object itself.
func (h *Handler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID json.RawMessage `json:"productId"`
		ID        json.RawMessage `json:"id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	raw := req.ProductID
	if len(raw) == 0 {
		raw = req.ID
	}
	productID, err := wishlist.ParseID(raw)
	if err != nil || productID == "" {
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: "error", Message: "Product ID required"})
		return
	}

	removed, err := h.wishlist.RemoveItem(r.Context(), chi.URLParam(r, "userId"), productID)
	if err != nil {
		h.fail(w, r, "remove from wishlist", err)
		return
	}
	if !removed {
		writeJSON(w, http.StatusOK, statusResponse{Status: "not_found"})
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "removed"})
}

func (h *Handler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	if err := h.wishlist.Clear(r.Context(), chi.URLParam(r, "userId")); err != nil {
		h.fail(w, r, "clear wishlist", err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "cleared"})
}
