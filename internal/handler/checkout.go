package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/restu-food/api/internal/cart"
	"github.com/restu-food/api/internal/enum"
	"github.com/restu-food/api/internal/order"
	"github.com/shopspring/decimal"
)

const (
	deliveryETA = "30-45 minutes"
	pickupETA   = "15-20 minutes"
)

// CheckoutCartStore defines the cart methods needed at checkout: the cart
// is read, frozen into the order, and deleted.
type CheckoutCartStore interface {
	Get(id uuid.UUID) (cart.Cart, bool)
	Delete(id uuid.UUID)
}

// OrderCreator persists the order snapshot produced at submission.
// Satisfied by *order.Store.
type OrderCreator interface {
	Create(o order.Order) order.Order
}

// CheckoutHandler turns a cart plus the submitted form into an immutable
// order. Totals combine the cart subtotal, the configured per-order
// delivery fee, and tax computed from the configured rate.
type CheckoutHandler struct {
	carts       CheckoutCartStore
	orders      OrderCreator
	deliveryFee decimal.Decimal
	taxRate     decimal.Decimal
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(carts CheckoutCartStore, orders OrderCreator, deliveryFee, taxRate decimal.Decimal) *CheckoutHandler {
	return &CheckoutHandler{carts: carts, orders: orders, deliveryFee: deliveryFee, taxRate: taxRate}
}

// RegisterRoutes registers the checkout endpoint on the given Chi router.
// Expected to be mounted at /carts alongside the cart routes.
func (h *CheckoutHandler) RegisterRoutes(r chi.Router) {
	r.Post("/{cid}/checkout", h.Submit)
}

// --- Request / Response types ---

type checkoutRequest struct {
	Fulfillment   string `json:"fulfillment"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	ZipCode       string `json:"zip_code"`
	PaymentMethod string `json:"payment_method"`
	Notes         string `json:"notes"`
}

type orderLineResponse struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

type totalsResponse struct {
	Subtotal    string `json:"subtotal"`
	DeliveryFee string `json:"delivery_fee"`
	Tax         string `json:"tax"`
	Total       string `json:"total"`
}

type orderResponse struct {
	ID                string              `json:"id"`
	Items             []orderLineResponse `json:"items"`
	Totals            totalsResponse      `json:"totals"`
	Fulfillment       string              `json:"fulfillment"`
	PaymentMethod     string              `json:"payment_method"`
	Address           string              `json:"address,omitempty"`
	City              string              `json:"city,omitempty"`
	ZipCode           string              `json:"zip_code,omitempty"`
	Notes             string              `json:"notes,omitempty"`
	EstimatedDelivery string              `json:"estimated_delivery_time"`
	Status            string              `json:"status"`
}

func toOrderResponse(o order.Order) orderResponse {
	items := make([]orderLineResponse, len(o.Lines))
	for i, line := range o.Lines {
		items[i] = orderLineResponse{
			ItemID:   line.ItemID,
			Name:     line.Name,
			Price:    line.Price.StringFixed(2),
			Quantity: line.Quantity,
		}
	}
	return orderResponse{
		ID:    o.ID,
		Items: items,
		Totals: totalsResponse{
			Subtotal:    o.Totals.Subtotal.StringFixed(2),
			DeliveryFee: o.Totals.DeliveryFee.StringFixed(2),
			Tax:         o.Totals.Tax.StringFixed(2),
			Total:       o.Totals.Total.StringFixed(2),
		},
		Fulfillment:       o.Fulfillment,
		PaymentMethod:     o.PaymentMethod,
		Address:           o.Address.Street,
		City:              o.Address.City,
		ZipCode:           o.Address.ZipCode,
		Notes:             o.Notes,
		EstimatedDelivery: o.EstimatedDelivery,
		Status:            o.Status,
	}
}

// --- Handlers ---

// Submit validates required fields, freezes the cart into an order with
// computed totals, and clears the cart. Only field presence is checked;
// card details are never collected server-side.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	cid, err := uuid.Parse(chi.URLParam(r, "cid"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid cart ID"})
		return
	}

	c, ok := h.carts.Get(cid)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "cart not found"})
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	// Form defaults mirror the checkout page: delivery tab, card payment.
	if req.Fulfillment == "" {
		req.Fulfillment = enum.FulfillmentDelivery
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = enum.PaymentMethodCard
	}

	if msg := validateCheckout(req); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	if len(c.Lines) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "cart is empty"})
		return
	}

	subtotal := c.Subtotal()
	tax := subtotal.Mul(h.taxRate).Round(2)

	eta := deliveryETA
	if req.Fulfillment == enum.FulfillmentPickup {
		eta = pickupETA
	}

	lines := make([]order.Line, len(c.Lines))
	for i, line := range c.Lines {
		lines[i] = order.Line{
			ItemID:   line.ItemID,
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		}
	}

	o := h.orders.Create(order.Order{
		Lines:  lines,
		Totals: order.ComputeTotals(subtotal, h.deliveryFee, tax),
		Customer: order.Customer{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
		},
		Address: order.Address{
			Street:  req.Address,
			City:    req.City,
			ZipCode: req.ZipCode,
		},
		Fulfillment:       req.Fulfillment,
		PaymentMethod:     req.PaymentMethod,
		Notes:             req.Notes,
		EstimatedDelivery: eta,
	})

	h.carts.Delete(cid)

	writeJSON(w, http.StatusCreated, toOrderResponse(o))
}

// --- Helpers ---

func validateCheckout(req checkoutRequest) string {
	switch req.Fulfillment {
	case enum.FulfillmentDelivery, enum.FulfillmentPickup:
	default:
		return "invalid fulfillment"
	}

	switch req.PaymentMethod {
	case enum.PaymentMethodCard, enum.PaymentMethodCash:
	default:
		return "invalid payment_method"
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Phone == "" {
		return "first_name, last_name, email and phone are required"
	}

	if req.Fulfillment == enum.FulfillmentDelivery {
		if req.Address == "" || req.City == "" || req.ZipCode == "" {
			return "address, city and zip_code are required for delivery"
		}
	}
	return ""
}
