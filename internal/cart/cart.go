package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Line is one distinct item in a cart with its aggregated quantity.
type Line struct {
	ItemID   string
	Name     string
	Price    decimal.Decimal
	Image    string
	Quantity int
}

// Cart is an ordered sequence of lines; insertion order is preserved for
// display. All mutating methods are copy-on-write: they return a new Cart
// and never touch the receiver's line slice, so a Cart value read from the
// store can be used without aliasing hazards.
//
// The model is deliberately lenient: SetQuantity and Remove on an unknown
// item ID are silent no-ops, and SetQuantity does not enforce a floor.
// Callers that decrement are expected to clamp at 1 and use Remove to
// reach zero.
type Cart struct {
	ID    uuid.UUID
	Lines []Line
}

func New() Cart {
	return Cart{ID: uuid.New()}
}

// Add merges by item ID: an existing line gains quantity 1, otherwise the
// item is appended as a new line with quantity 1.
func (c Cart) Add(item Line) Cart {
	lines := make([]Line, len(c.Lines))
	copy(lines, c.Lines)

	for i, line := range lines {
		if line.ItemID == item.ItemID {
			lines[i].Quantity++
			return Cart{ID: c.ID, Lines: lines}
		}
	}

	item.Quantity = 1
	return Cart{ID: c.ID, Lines: append(lines, item)}
}

// SetQuantity replaces the quantity of the line matching the item ID.
func (c Cart) SetQuantity(itemID string, quantity int) Cart {
	lines := make([]Line, len(c.Lines))
	copy(lines, c.Lines)

	for i, line := range lines {
		if line.ItemID == itemID {
			lines[i].Quantity = quantity
			break
		}
	}
	return Cart{ID: c.ID, Lines: lines}
}

// Remove deletes the line matching the item ID.
func (c Cart) Remove(itemID string) Cart {
	var lines []Line
	for _, line := range c.Lines {
		if line.ItemID != itemID {
			lines = append(lines, line)
		}
	}
	return Cart{ID: c.ID, Lines: lines}
}

// Subtotal is the sum of price times quantity over all lines.
func (c Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range c.Lines {
		sum = sum.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return sum
}

// ItemCount is the sum of quantities, used for badge displays.
func (c Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}
