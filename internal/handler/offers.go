package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/restu-food/api/internal/offers"
)

// OffersHandler serves the promotions page. Offers are read-only
// fixtures.
type OffersHandler struct {
	offers []offers.Offer
}

// NewOffersHandler creates a new OffersHandler.
func NewOffersHandler(list []offers.Offer) *OffersHandler {
	return &OffersHandler{offers: list}
}

// RegisterRoutes registers the offers endpoint on the given Chi router.
func (h *OffersHandler) RegisterRoutes(r chi.Router) {
	r.Get("/offers", h.List)
}

type offerResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Code        string `json:"code"`
	Discount    string `json:"discount"`
	ExpiryDate  string `json:"expiry_date"`
	Image       string `json:"image"`
	IsNew       bool   `json:"is_new,omitempty"`
}

// List returns all current offers.
func (h *OffersHandler) List(w http.ResponseWriter, r *http.Request) {
	resp := make([]offerResponse, len(h.offers))
	for i, o := range h.offers {
		resp[i] = offerResponse{
			ID:          o.ID,
			Title:       o.Title,
			Description: o.Description,
			Code:        o.Code,
			Discount:    o.Discount,
			ExpiryDate:  o.ExpiryDate,
			Image:       o.Image,
			IsNew:       o.IsNew,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
