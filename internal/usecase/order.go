package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/petaline/storefront/internal/domain/errors"
	"github.com/petaline/storefront/internal/domain/model"
	"github.com/petaline/storefront/internal/domain/repository"
)

// OrderOptions tunes lifecycle behaviour.
type OrderOptions struct {
	// RestoreStockOnCancel returns reserved stock to the catalog when an
	// order is cancelled. Off by default: a placed order keeps its
	// reservation even when cancelled or deleted.
	RestoreStockOnCancel bool
	// DefaultCancelReason is recorded when a cancellation gives no reason.
	DefaultCancelReason string
}

// OrderUseCase is the order ledger and its lifecycle controller: the single
// write path that creates orders and the only legal mutator of order status.
type OrderUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	carts    repository.CartRepository
	opts     OrderOptions
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, products repository.ProductRepository, carts repository.CartRepository, opts OrderOptions) *OrderUseCase {
	if opts.DefaultCancelReason == "" {
		opts.DefaultCancelReason = "reason not specified"
	}
	return &OrderUseCase{orders: orders, products: products, carts: carts, opts: opts}
}

// Place creates an order from the session cart: it re-validates every line
// against current stock, snapshots quantities and prices, decrements stock
// for all lines or none, appends the order and clears the cart.
func (u *OrderUseCase) Place(ctx context.Context, login string, sessionID uuid.UUID, delivery model.DeliveryDetails) (*model.Order, error) {
	if login == "" {
		return nil, domainErrors.ErrNotAuthenticated
	}
	if err := ValidateDelivery(delivery); err != nil {
		return nil, err
	}

	cart, err := u.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, domainErrors.ErrEmptyCart
	}

	// Replay of the checkout gate: stock may have moved between the gate
	// and submission.
	lines := make([]model.OrderLine, 0, len(cart.Lines))
	total := decimal.Zero
	var offending []int64
	for _, line := range cart.Lines {
		product, err := u.products.Get(ctx, line.ProductID)
		if err != nil || line.Quantity > product.InStock {
			offending = append(offending, line.ProductID)
			continue
		}
		orderLine := model.OrderLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
		}
		lines = append(lines, orderLine)
		total = total.Add(orderLine.Subtotal())
	}
	if len(offending) > 0 {
		return nil, &domainErrors.CartInvalidError{ProductIDs: offending}
	}

	// All-or-nothing: if any decrement fails, undo the ones already applied
	// so neither stock nor the ledger changes.
	decremented := make([]model.OrderLine, 0, len(lines))
	for _, line := range lines {
		if _, err := u.products.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
			u.restoreLines(ctx, decremented)
			return nil, fmt.Errorf("%w: product %d: %s", domainErrors.ErrOrderPlacement, line.ProductID, err)
		}
		decremented = append(decremented, line)
	}

	order, err := u.orders.Create(ctx, model.Order{
		UserLogin: login,
		CreatedAt: time.Now(),
		Delivery:  delivery,
		Lines:     lines,
		Total:     total,
		Status:    model.OrderStatusNew,
	})
	if err != nil {
		u.restoreLines(ctx, decremented)
		return nil, fmt.Errorf("%w: %s", domainErrors.ErrOrderPlacement, err)
	}

	if err := u.carts.Clear(ctx, sessionID); err != nil {
		return nil, err
	}
	return order, nil
}

func (u *OrderUseCase) restoreLines(ctx context.Context, lines []model.OrderLine) {
	for _, line := range lines {
		_, _ = u.products.RestoreStock(ctx, line.ProductID, line.Quantity)
	}
}

// ListByUser returns the user's orders, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, login string) ([]model.Order, error) {
	if login == "" {
		return nil, domainErrors.ErrNotAuthenticated
	}
	return u.orders.ListByUser(ctx, login)
}

// ListAll returns every order, newest first, optionally filtered by status.
func (u *OrderUseCase) ListAll(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return orders, nil
	}
	filtered := orders[:0]
	for _, order := range orders {
		if order.Status == status {
			filtered = append(filtered, order)
		}
	}
	return filtered, nil
}

// Delete removes the user's own order while it is still new. Reserved stock
// is not returned to the catalog.
func (u *OrderUseCase) Delete(ctx context.Context, orderID int64, login string) error {
	if login == "" {
		return domainErrors.ErrNotAuthenticated
	}

	order, err := u.orders.Get(ctx, orderID)
	if err != nil {
		return err
	}
	if order.UserLogin != login || order.Status != model.OrderStatusNew {
		return domainErrors.ErrNotPermitted
	}
	return u.orders.Delete(ctx, orderID)
}

// Transition moves the order along the status graph. Off-graph changes fail
// with InvalidTransitionError; cancellation records the given reason or the
// configured placeholder and, when enabled, restores the order's stock.
func (u *OrderUseCase) Transition(ctx context.Context, orderID int64, next model.OrderStatus, reason string) error {
	order, err := u.orders.Get(ctx, orderID)
	if err != nil {
		return err
	}
	if !order.Status.CanTransitionTo(next) {
		return &domainErrors.InvalidTransitionError{From: string(order.Status), To: string(next)}
	}

	cancelReason := ""
	if next == model.OrderStatusCancelled {
		cancelReason = reason
		if cancelReason == "" {
			cancelReason = u.opts.DefaultCancelReason
		}
	}

	if err := u.orders.UpdateStatus(ctx, orderID, next, cancelReason); err != nil {
		return err
	}

	if next == model.OrderStatusCancelled && u.opts.RestoreStockOnCancel {
		u.restoreLines(ctx, order.Lines)
	}
	return nil
}
