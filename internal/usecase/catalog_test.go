package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/petaline/storefront/internal/domain/errors"
	"github.com/petaline/storefront/internal/domain/model"
	testhelpers "github.com/petaline/storefront/internal/test"
)

func catalogFixture() *CatalogUseCase {
	products := testhelpers.NewProductRepositoryStub(
		model.Product{ID: 1, Name: "Rose", Price: decimal.NewFromInt(150), Category: model.CategoryFlowers, Country: "Netherlands", InStock: 10, IsNew: true},
		model.Product{ID: 2, Name: "Bouquet", Price: decimal.NewFromInt(2500), Category: model.CategoryBouquets, Country: "Russia", InStock: 5, IsNew: true},
		model.Product{ID: 3, Name: "Tulip", Price: decimal.NewFromInt(80), Category: model.CategoryFlowers, Country: "Netherlands", InStock: 0},
		model.Product{ID: 4, Name: "Wrap", Price: decimal.NewFromInt(100), Category: model.CategoryPackaging, Country: "Russia", InStock: 20},
	)
	return NewCatalogUseCase(products)
}

func TestCatalogListsOnlyInStock(t *testing.T) {
	uc := catalogFixture()

	products, err := uc.ListAvailable(context.Background(), "", model.SortNew)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range products {
		if p.ID == 3 {
			t.Fatal("out-of-stock product must not be listed")
		}
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
}

func TestCatalogDefaultSortNewFirstThenDescendingID(t *testing.T) {
	uc := catalogFixture()

	products, err := uc.ListAvailable(context.Background(), "", model.SortNew)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int64{2, 1, 4}
	for i, p := range products {
		if p.ID != want[i] {
			t.Fatalf("expected order %v, got %d at position %d", want, p.ID, i)
		}
	}
}

func TestCatalogCategoryFilter(t *testing.T) {
	uc := catalogFixture()

	products, err := uc.ListAvailable(context.Background(), model.CategoryFlowers, model.SortNew)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 || products[0].ID != 1 {
		t.Fatalf("expected only the in-stock flower, got %v", products)
	}
}

func TestCatalogSortVariants(t *testing.T) {
	uc := catalogFixture()

	cases := []struct {
		name string
		key  model.SortKey
		want []int64
	}{
		{"by name", model.SortName, []int64{2, 1, 4}},
		{"by country", model.SortCountry, []int64{1, 2, 4}},
		{"price ascending", model.SortPriceAsc, []int64{4, 1, 2}},
		{"price descending", model.SortPriceDesc, []int64{2, 1, 4}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			products, err := uc.ListAvailable(context.Background(), "", tc.key)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for i, p := range products {
				if p.ID != tc.want[i] {
					t.Fatalf("expected order %v, got %d at position %d", tc.want, p.ID, i)
				}
			}
		})
	}
}

func TestCatalogGetUnknownProduct(t *testing.T) {
	uc := catalogFixture()

	if _, err := uc.Get(context.Background(), 99); !errors.Is(err, domainErrors.ErrProductNotFound) {
		t.Fatalf("expected product not found, got %v", err)
	}
}
