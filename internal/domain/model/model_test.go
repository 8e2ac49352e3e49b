package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value string
	}{
		{"new", OrderStatusNew, "new"},
		{"processing", OrderStatusProcessing, "processing"},
		{"confirmed", OrderStatusConfirmed, "confirmed"},
		{"cancelled", OrderStatusCancelled, "cancelled"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusNew, OrderStatusProcessing, true},
		{OrderStatusNew, OrderStatusConfirmed, true},
		{OrderStatusNew, OrderStatusCancelled, true},
		{OrderStatusProcessing, OrderStatusConfirmed, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusProcessing, OrderStatusNew, false},
		{OrderStatusConfirmed, OrderStatusProcessing, false},
		{OrderStatusConfirmed, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusNew, false},
		{OrderStatusCancelled, OrderStatusConfirmed, false},
		{OrderStatusNew, OrderStatusNew, false},
		{OrderStatusNew, OrderStatus("shipped"), false},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
				t.Fatalf("transition %s->%s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
			}
		})
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	if OrderStatusNew.Terminal() || OrderStatusProcessing.Terminal() {
		t.Fatal("new and processing must not be terminal")
	}
	if !OrderStatusConfirmed.Terminal() || !OrderStatusCancelled.Terminal() {
		t.Fatal("confirmed and cancelled must be terminal")
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range []Category{CategoryFlowers, CategoryBouquets, CategoryPackaging} {
		if !c.Valid() {
			t.Fatalf("expected %s to be valid", c)
		}
	}
	if Category("toys").Valid() {
		t.Fatal("unknown category must be invalid")
	}
}

func TestPaymentMethodValid(t *testing.T) {
	if !PaymentCash.Valid() || !PaymentCard.Valid() {
		t.Fatal("cash and card must be valid")
	}
	if PaymentMethod("crypto").Valid() {
		t.Fatal("unknown payment method must be invalid")
	}
}

func TestOrderLineSubtotal(t *testing.T) {
	line := OrderLine{ProductID: 1, Quantity: 3, UnitPrice: decimal.NewFromInt(150)}
	if !line.Subtotal().Equal(decimal.NewFromInt(450)) {
		t.Fatalf("expected subtotal 450, got %s", line.Subtotal())
	}
}

func TestCartQuantity(t *testing.T) {
	cart := &Cart{Lines: []CartLine{{ProductID: 7, Quantity: 2}}}
	if got := cart.Quantity(7); got != 2 {
		t.Fatalf("expected quantity 2, got %d", got)
	}
	if got := cart.Quantity(8); got != 0 {
		t.Fatalf("expected quantity 0 for absent product, got %d", got)
	}
}
