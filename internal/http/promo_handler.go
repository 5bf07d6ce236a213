package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/promo"
)

type promoCodeRequest struct {
	Code     string           `json:"code"`
	Discount promo.Percentage `json:"discount"`
}

func (h *Handler) ValidatePromo(w http.ResponseWriter, r *http.Request) {
	var req promoCodeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	writeJSON(w, http.StatusOK, h.orders.ValidatePromoCode(r.Context(), req.Code))
}

func (h *Handler) ListPromos(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.promos.GetAll(r.Context()))
}

func (h *Handler) AddPromo(w http.ResponseWriter, r *http.Request) {
	var req promoCodeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	out := h.promos.Add(r.Context(), req.Code, req.Discount)
	writeJSON(w, outcomeStatus(out, http.StatusBadRequest), out)
}

func (h *Handler) RemovePromo(w http.ResponseWriter, r *http.Request) {
	out := h.promos.Remove(r.Context(), chi.URLParam(r, "code"))
	writeJSON(w, outcomeStatus(out, http.StatusNotFound), out)
}

func outcomeStatus(out promo.Outcome, onFailure int) int {
	if out.Success {
		return http.StatusOK
	}
	return onFailure
}
