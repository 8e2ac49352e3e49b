package model

import "github.com/shopspring/decimal"

// Category classifies catalog products.
type Category string

const (
	CategoryFlowers   Category = "flowers"
	CategoryBouquets  Category = "bouquets"
	CategoryPackaging Category = "packaging"
)

// Valid reports whether the category belongs to the known set.
func (c Category) Valid() bool {
	switch c {
	case CategoryFlowers, CategoryBouquets, CategoryPackaging:
		return true
	}
	return false
}

// SortKey selects catalog listing order.
type SortKey string

const (
	SortNew       SortKey = "new"
	SortName      SortKey = "name"
	SortCountry   SortKey = "country"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
)

// Product describes a catalog item with its available stock.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Category    Category
	Country     string
	Color       string
	InStock     int
	IsNew       bool
}
