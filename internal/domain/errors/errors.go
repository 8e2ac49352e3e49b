package errors

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrCartInvalid        = errors.New("cart invalid")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrOrderPlacement     = errors.New("order placement failed")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrNotPermitted       = errors.New("not permitted")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidDelivery    = errors.New("invalid delivery details")
	ErrValidation         = errors.New("validation failed")
)

// InsufficientStockError reports how many units remain for a product that
// could not satisfy the requested quantity.
type InsufficientStockError struct {
	ProductID int64
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: %d available", e.ProductID, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// CartInvalidError lists products whose cart quantity exceeds current stock.
type CartInvalidError struct {
	ProductIDs []int64
}

func (e *CartInvalidError) Error() string {
	return fmt.Sprintf("cart invalid: products %v exceed available stock", e.ProductIDs)
}

func (e *CartInvalidError) Unwrap() error { return ErrCartInvalid }

// InvalidTransitionError reports a rejected order status change.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition %s -> %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }
