package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes the order lifecycle stage.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether the status belongs to the known set.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusProcessing, OrderStatusConfirmed, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed from the status.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusConfirmed || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the status graph has an edge from s to next.
// Allowed edges: new -> processing|confirmed|cancelled,
// processing -> confirmed|cancelled.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !next.Valid() || s.Terminal() || s == next {
		return false
	}
	switch s {
	case OrderStatusNew:
		return next == OrderStatusProcessing || next == OrderStatusConfirmed || next == OrderStatusCancelled
	case OrderStatusProcessing:
		return next == OrderStatusConfirmed || next == OrderStatusCancelled
	}
	return false
}

// PaymentMethod is how the customer pays on delivery.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// Valid reports whether the payment method belongs to the known set.
func (p PaymentMethod) Valid() bool {
	return p == PaymentCash || p == PaymentCard
}

// DeliveryDetails carries the checkout contact form.
type DeliveryDetails struct {
	RecipientName string
	Phone         string
	Address       string
	DeliveryDate  string
	DeliveryTime  string
	Payment       PaymentMethod
}

// OrderLine is an immutable snapshot of a cart line at purchase time.
// UnitPrice is frozen and never recomputed from the catalog.
type OrderLine struct {
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

// Subtotal returns quantity times the frozen unit price.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order is a placed order. Immutable after creation except Status and
// CancelReason, which change only through the lifecycle controller.
type Order struct {
	ID           int64
	UserLogin    string
	CreatedAt    time.Time
	Delivery     DeliveryDetails
	Lines        []OrderLine
	Total        decimal.Decimal
	Status       OrderStatus
	CancelReason string
}
