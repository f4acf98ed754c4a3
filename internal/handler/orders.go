package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/restu-food/api/internal/enum"
	"github.com/restu-food/api/internal/order"
)

// Driver details are display fixtures; there is no dispatch system behind
// them.
const (
	driverName  = "Michael Rodriguez"
	driverPhone = "(555) 123-4567"
)

// OrderStore defines the order methods needed by order handlers.
// Satisfied by *order.Store; narrow interface for testability.
type OrderStore interface {
	Get(id string) (order.Order, error)
	UpdateStatus(id, status string) (order.Order, error)
}

// OrderHandler serves the confirmation and tracking views and the status
// update seam used by order management.
type OrderHandler struct {
	store OrderStore
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(store OrderStore) *OrderHandler {
	return &OrderHandler{store: store}
}

// RegisterRoutes registers the read-only order endpoints on the given Chi
// router. Expected to be mounted at /orders.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Get("/{id}", h.Get)
	r.Get("/{id}/tracking", h.Tracking)
}

// RegisterManagementRoutes registers the status update endpoint. Mounted
// separately so the router can wrap it in authentication.
func (h *OrderHandler) RegisterManagementRoutes(r chi.Router) {
	r.Patch("/{id}/status", h.UpdateStatus)
}

// --- Request / Response types ---

type updateStatusRequest struct {
	Status string `json:"status"`
}

type driverResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type trackingResponse struct {
	OrderID           string          `json:"order_id"`
	Status            string          `json:"status"`
	CurrentStep       int             `json:"current_step"`
	Progress          float64         `json:"progress"`
	Stages            []string        `json:"stages"`
	EstimatedDelivery string          `json:"estimated_delivery_time"`
	DeliveryAddress   string          `json:"delivery_address,omitempty"`
	Driver            *driverResponse `json:"driver,omitempty"`
}

// --- Handlers ---

// Get returns the order snapshot for the confirmation page.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	o, ok := h.orderFromPath(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

// Tracking returns the timeline state for the tracking page: the stage
// list, the current step index, and the progress-bar fill fraction.
// Driver details appear only while the order is on the way.
func (h *OrderHandler) Tracking(w http.ResponseWriter, r *http.Request) {
	o, ok := h.orderFromPath(w, r)
	if !ok {
		return
	}

	resp := trackingResponse{
		OrderID:           o.ID,
		Status:            o.Status,
		CurrentStep:       order.CurrentIndex(o.Status),
		Progress:          order.Progress(o.Status),
		Stages:            order.Stages(),
		EstimatedDelivery: o.EstimatedDelivery,
		DeliveryAddress:   formatAddress(o.Address),
	}
	if o.Status == enum.OrderStatusOnTheWay {
		resp.Driver = &driverResponse{Name: driverName, Phone: driverPhone}
	}

	writeJSON(w, http.StatusOK, resp)
}

// UpdateStatus advances the order along the fulfillment timeline. The
// model itself never drives transitions; this endpoint is where the
// external order-management collaborator attaches.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Status == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "status is required"})
		return
	}

	o, err := h.store.UpdateStatus(chi.URLParam(r, "id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrNotFound):
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		case errors.Is(err, order.ErrInvalidStatus):
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status"})
		case errors.Is(err, order.ErrBackwardTransition):
			writeJSON(w, http.StatusConflict, map[string]string{"error": "status cannot move backward"})
		default:
			log.Printf("ERROR: update order status: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		}
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

// --- Helpers ---

func (h *OrderHandler) orderFromPath(w http.ResponseWriter, r *http.Request) (order.Order, bool) {
	o, err := h.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
			return order.Order{}, false
		}
		log.Printf("ERROR: get order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return order.Order{}, false
	}
	return o, true
}

func formatAddress(a order.Address) string {
	if a.Street == "" {
		return ""
	}
	return a.Street + ", " + a.City + " " + a.ZipCode
}
