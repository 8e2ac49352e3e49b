package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/petaline/storefront/internal/domain/model"
	"github.com/petaline/storefront/internal/domain/repository"
)

// CatalogUseCase exposes read access to the product catalog. Sorting and
// filtering are pure projections; only order placement changes stock.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// ListAvailable returns in-stock products, optionally filtered by category,
// in the requested order. An empty category means no filter; an unknown sort
// key falls back to the default: new items first, ties by descending id.
func (u *CatalogUseCase) ListAvailable(ctx context.Context, category model.Category, key model.SortKey) ([]model.Product, error) {
	all, err := u.products.List(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(all))
	for _, p := range all {
		if p.InStock <= 0 {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		products = append(products, p)
	}

	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		switch key {
		case model.SortName:
			return strings.Compare(a.Name, b.Name) < 0
		case model.SortCountry:
			return strings.Compare(a.Country, b.Country) < 0
		case model.SortPriceAsc:
			return a.Price.LessThan(b.Price)
		case model.SortPriceDesc:
			return b.Price.LessThan(a.Price)
		default:
			if a.IsNew != b.IsNew {
				return a.IsNew
			}
			return a.ID > b.ID
		}
	})

	return products, nil
}

// Get fetches a single product by id.
func (u *CatalogUseCase) Get(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.Get(ctx, id)
}
