package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/restu-food/api/internal/cart"
	"github.com/restu-food/api/internal/catalog"
)

// CartStore defines the cart persistence methods needed by cart handlers.
// Satisfied by *cart.Store; narrow interface for testability.
type CartStore interface {
	Create() cart.Cart
	Get(id uuid.UUID) (cart.Cart, bool)
	Replace(c cart.Cart)
}

// ItemGetter looks up catalog items when lines are added, so cart prices
// always come from the catalog, never from the client.
type ItemGetter interface {
	Get(id string) (catalog.MenuItem, bool)
}

// CartHandler handles cart CRUD endpoints.
type CartHandler struct {
	carts   CartStore
	catalog ItemGetter
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(carts CartStore, catalog ItemGetter) *CartHandler {
	return &CartHandler{carts: carts, catalog: catalog}
}

// RegisterRoutes registers cart endpoints on the given Chi router.
// Expected to be mounted at /carts.
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/{cid}", h.Get)
	r.Post("/{cid}/items", h.AddItem)
	r.Patch("/{cid}/items/{id}", h.UpdateItem)
	r.Delete("/{cid}/items/{id}", h.RemoveItem)
}

// --- Request / Response types ---

type addItemRequest struct {
	ItemID string `json:"item_id"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

type cartLineResponse struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

type cartResponse struct {
	ID        uuid.UUID          `json:"id"`
	Items     []cartLineResponse `json:"items"`
	Subtotal  string             `json:"subtotal"`
	ItemCount int                `json:"item_count"`
}

func toCartResponse(c cart.Cart) cartResponse {
	items := make([]cartLineResponse, len(c.Lines))
	for i, line := range c.Lines {
		items[i] = cartLineResponse{
			ItemID:   line.ItemID,
			Name:     line.Name,
			Price:    line.Price.StringFixed(2),
			Image:    line.Image,
			Quantity: line.Quantity,
		}
	}
	return cartResponse{
		ID:        c.ID,
		Items:     items,
		Subtotal:  c.Subtotal().StringFixed(2),
		ItemCount: c.ItemCount(),
	}
}

// --- Handlers ---

// Create starts a new empty session cart.
func (h *CartHandler) Create(w http.ResponseWriter, r *http.Request) {
	c := h.carts.Create()
	writeJSON(w, http.StatusCreated, toCartResponse(c))
}

// Get returns the cart with its derived subtotal and item count.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, ok := h.cartFromPath(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(c))
}

// AddItem adds a catalog item to the cart, merging by item ID: adding an
// item already in the cart bumps its quantity instead of creating a
// duplicate line.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	c, ok := h.cartFromPath(w, r)
	if !ok {
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.ItemID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "item_id is required"})
		return
	}

	item, ok := h.catalog.Get(req.ItemID)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "menu item not found"})
		return
	}

	c = c.Add(cart.Line{
		ItemID: item.ID,
		Name:   item.Name,
		Price:  item.Price,
		Image:  item.Image,
	})
	h.carts.Replace(c)

	writeJSON(w, http.StatusOK, toCartResponse(c))
}

// UpdateItem replaces a line's quantity. Quantities below 1 are clamped
// to 1; reaching zero requires an explicit RemoveItem. An unknown line ID
// leaves the cart unchanged.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	c, ok := h.cartFromPath(w, r)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	c = c.SetQuantity(chi.URLParam(r, "id"), quantity)
	h.carts.Replace(c)

	writeJSON(w, http.StatusOK, toCartResponse(c))
}

// RemoveItem deletes a line; removing an absent line is a no-op.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	c, ok := h.cartFromPath(w, r)
	if !ok {
		return
	}

	c = c.Remove(chi.URLParam(r, "id"))
	h.carts.Replace(c)

	w.WriteHeader(http.StatusNoContent)
}

// --- Helpers ---

func (h *CartHandler) cartFromPath(w http.ResponseWriter, r *http.Request) (cart.Cart, bool) {
	cid, err := uuid.Parse(chi.URLParam(r, "cid"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid cart ID"})
		return cart.Cart{}, false
	}

	c, ok := h.carts.Get(cid)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "cart not found"})
		return cart.Cart{}, false
	}
	return c, true
}
