package httpapi

import (
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// ListProducts serves the whole catalog. A category query narrows by
// category; min and/or max narrow by inclusive price range.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if category := q.Get("category"); category != "" {
		products, err := h.catalog.FilterByCategory(r.Context(), category)
		if err != nil {
			h.fail(w, r, "list products", err)
			return
		}
		writeJSON(w, http.StatusOK, products)
		return
	}

	if q.Has("min") || q.Has("max") {
		minPrice, err := priceParam(q.Get("min"), 0)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid min price")
			return
		}
		maxPrice, err := priceParam(q.Get("max"), math.MaxFloat64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid max price")
			return
		}
		products, err := h.catalog.FilterByPriceRange(r.Context(), minPrice, maxPrice)
		if err != nil {
			h.fail(w, r, "list products", err)
			return
		}
		writeJSON(w, http.StatusOK, products)
		return
	}

	products, err := h.catalog.ListAll(r.Context())
	if err != nil {
		h.fail(w, r, "list products", err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func priceParam(raw string, fallback float64) (float64, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.Get(r.Context(), chi.URLParam(r, "productId"))
	if err != nil {
		h.fail(w, r, "get product", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.fail(w, r, "search products", err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}
