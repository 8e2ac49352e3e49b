package repository

import (
	"context"

	"github.com/petaline/storefront/internal/domain/model"
)

// OrderRepository describes the order ledger. Orders are append-mostly:
// status and cancel reason change through UpdateStatus, everything else is
// immutable after Create.
type OrderRepository interface {
	// Create appends the order, assigning an id strictly greater than every
	// id ever issued, and returns the stored order.
	Create(ctx context.Context, order model.Order) (*model.Order, error)
	Get(ctx context.Context, id int64) (*model.Order, error)
	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, login string) ([]model.Order, error)
	// ListAll returns every order, newest first.
	ListAll(ctx context.Context) ([]model.Order, error)
	Delete(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus, cancelReason string) error
}
