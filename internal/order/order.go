package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Line is a frozen copy of a cart line taken at checkout submission.
type Line struct {
	ItemID   string
	Name     string
	Price    decimal.Decimal
	Quantity int
}

// Customer is the contact info captured by the checkout form.
type Customer struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// Address is a delivery destination. Empty for pickup orders.
type Address struct {
	Street  string
	City    string
	ZipCode string
}

// Totals is the checkout aggregation. Values keep full precision
// internally; rounding to two decimal places happens at the wire boundary.
type Totals struct {
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
}

// ComputeTotals combines the cart subtotal with the per-order delivery fee
// and the externally computed tax.
func ComputeTotals(subtotal, deliveryFee, tax decimal.Decimal) Totals {
	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Tax:         tax,
		Total:       subtotal.Add(deliveryFee).Add(tax),
	}
}

// Order is an immutable snapshot of a cart plus totals and delivery
// metadata, created at checkout submission. Only Status changes after
// creation, and only through the store's forward-only transition check.
type Order struct {
	ID                string
	Lines             []Line
	Totals            Totals
	Fulfillment       string
	Customer          Customer
	Address           Address
	PaymentMethod     string
	Notes             string
	EstimatedDelivery string
	Status            string
	CreatedAt         time.Time
}
