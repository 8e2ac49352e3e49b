package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/petaline/storefront/internal/domain/model"
)

// ProductRepository describes catalog access. The repository is the only
// writer of stock levels.
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id int64) (*model.Product, error)
	// DecrementStock atomically reduces stock by qty and returns the updated
	// product. Fails with InsufficientStockError when qty exceeds current
	// stock; stock never goes negative.
	DecrementStock(ctx context.Context, id int64, qty int) (*model.Product, error)
	// RestoreStock adds qty back to the product's stock.
	RestoreStock(ctx context.Context, id int64, qty int) (*model.Product, error)
	UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) error
}
