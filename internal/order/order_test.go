package order_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/restu-food/api/internal/enum"
	"github.com/restu-food/api/internal/order"
	"github.com/shopspring/decimal"
)

func TestComputeTotalsConfirmationScenario(t *testing.T) {
	totals := order.ComputeTotals(
		decimal.RequireFromString("35.97"),
		decimal.RequireFromString("2.99"),
		decimal.RequireFromString("3.60"),
	)

	if got := totals.Total.StringFixed(2); got != "42.56" {
		t.Errorf("total: got %s, want 42.56", got)
	}
}

func TestStoreCreateAssignsIDAndInitialStatus(t *testing.T) {
	store := order.NewStore()

	o := store.Create(order.Order{
		Lines: []order.Line{{ItemID: "1", Name: "Classic Cheeseburger", Price: decimal.RequireFromString("10.99"), Quantity: 1}},
	})

	if !strings.HasPrefix(o.ID, "ORD-") {
		t.Errorf("order ID: got %q, want ORD- prefix", o.ID)
	}
	if o.Status != enum.OrderStatusPreparing {
		t.Errorf("initial status: got %q, want %q", o.Status, enum.OrderStatusPreparing)
	}
	if o.CreatedAt.IsZero() {
		t.Error("created at not stamped")
	}

	got, err := store.Get(o.ID)
	if err != nil {
		t.Fatalf("get created order: %v", err)
	}
	if len(got.Lines) != 1 {
		t.Errorf("lines: got %d, want 1", len(got.Lines))
	}
}

func TestStoreCreateAssignsDistinctIDs(t *testing.T) {
	store := order.NewStore()
	a := store.Create(order.Order{})
	b := store.Create(order.Order{})
	if a.ID == b.ID {
		t.Errorf("two orders share ID %q", a.ID)
	}
}

func TestStoreGetUnknownID(t *testing.T) {
	store := order.NewStore()
	if _, err := store.Get("ORD-00000-0000"); !errors.Is(err, order.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreUpdateStatusForward(t *testing.T) {
	store := order.NewStore()
	o := store.Create(order.Order{})

	updated, err := store.UpdateStatus(o.ID, enum.OrderStatusReady)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != enum.OrderStatusReady {
		t.Errorf("status: got %q, want %q", updated.Status, enum.OrderStatusReady)
	}
}

func TestStoreUpdateStatusRejectsBackward(t *testing.T) {
	store := order.NewStore()
	o := store.Create(order.Order{})

	if _, err := store.UpdateStatus(o.ID, enum.OrderStatusOnTheWay); err != nil {
		t.Fatalf("advance to on-the-way: %v", err)
	}

	_, err := store.UpdateStatus(o.ID, enum.OrderStatusPreparing)
	if !errors.Is(err, order.ErrBackwardTransition) {
		t.Errorf("expected ErrBackwardTransition, got %v", err)
	}
}

func TestStoreUpdateStatusRejectsUnknownValue(t *testing.T) {
	store := order.NewStore()
	o := store.Create(order.Order{})

	_, err := store.UpdateStatus(o.ID, "cancelled")
	if !errors.Is(err, order.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}
