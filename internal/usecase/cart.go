package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/petaline/storefront/internal/domain/errors"
	"github.com/petaline/storefront/internal/domain/model"
	"github.com/petaline/storefront/internal/domain/repository"
)

// CartUseCase validates every cart mutation against current catalog stock.
// A rejected mutation leaves the cart untouched.
type CartUseCase struct {
	products repository.ProductRepository
	carts    repository.CartRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(products repository.ProductRepository, carts repository.CartRepository) *CartUseCase {
	return &CartUseCase{products: products, carts: carts}
}

// Add increases the product's cart line by qty (at least one). The combined
// quantity must not exceed current stock.
func (u *CartUseCase) Add(ctx context.Context, sessionID uuid.UUID, productID int64, qty int) error {
	if qty < 1 {
		qty = 1
	}

	product, err := u.products.Get(ctx, productID)
	if err != nil {
		return err
	}

	cart, err := u.carts.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	requested := cart.Quantity(productID) + qty
	if requested > product.InStock {
		return &domainErrors.InsufficientStockError{ProductID: productID, Available: product.InStock}
	}

	return u.carts.SetLine(ctx, sessionID, productID, requested)
}

// SetQuantity sets the product's cart line to qty. Zero or negative removes
// the line; a quantity above stock fails and keeps the prior value.
func (u *CartUseCase) SetQuantity(ctx context.Context, sessionID uuid.UUID, productID int64, qty int) error {
	product, err := u.products.Get(ctx, productID)
	if err != nil {
		return err
	}

	if qty <= 0 {
		return u.carts.RemoveLine(ctx, sessionID, productID)
	}

	if qty > product.InStock {
		return &domainErrors.InsufficientStockError{ProductID: productID, Available: product.InStock}
	}

	return u.carts.SetLine(ctx, sessionID, productID, qty)
}

// Remove deletes the product's line; removing an absent line is a no-op.
func (u *CartUseCase) Remove(ctx context.Context, sessionID uuid.UUID, productID int64) error {
	return u.carts.RemoveLine(ctx, sessionID, productID)
}

// Snapshot joins cart lines with current catalog data and computes the
// running total at current prices. Order totals are frozen instead.
func (u *CartUseCase) Snapshot(ctx context.Context, sessionID uuid.UUID) (*model.CartSnapshot, error) {
	cart, err := u.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	snapshot := &model.CartSnapshot{Total: decimal.Zero}
	for _, line := range cart.Lines {
		product, err := u.products.Get(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		snapshot.Lines = append(snapshot.Lines, model.CartSnapshotLine{
			Product:  *product,
			Quantity: line.Quantity,
			Subtotal: subtotal,
		})
		snapshot.Total = snapshot.Total.Add(subtotal)
	}
	return snapshot, nil
}

// ValidateCheckout is the read-only checkout gate: the cart must be non-empty
// and every line must fit current stock. It performs no mutation.
func (u *CartUseCase) ValidateCheckout(ctx context.Context, sessionID uuid.UUID) error {
	cart, err := u.carts.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if len(cart.Lines) == 0 {
		return domainErrors.ErrEmptyCart
	}

	var offending []int64
	for _, line := range cart.Lines {
		product, err := u.products.Get(ctx, line.ProductID)
		if err != nil || line.Quantity > product.InStock {
			offending = append(offending, line.ProductID)
		}
	}
	if len(offending) > 0 {
		return &domainErrors.CartInvalidError{ProductIDs: offending}
	}
	return nil
}
