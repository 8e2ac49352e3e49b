package model

import "github.com/shopspring/decimal"

// CartLine is a (product, desired quantity) pair in a session cart.
type CartLine struct {
	ProductID int64
	Quantity  int
}

// Cart holds the lines of one session. A product appears at most once.
type Cart struct {
	Lines []CartLine
}

// Quantity returns the current quantity of the product, zero if absent.
func (c *Cart) Quantity(productID int64) int {
	for _, line := range c.Lines {
		if line.ProductID == productID {
			return line.Quantity
		}
	}
	return 0
}

// CartSnapshotLine is a cart line joined with current catalog data for display.
type CartSnapshotLine struct {
	Product  Product
	Quantity int
	Subtotal decimal.Decimal
}

// CartSnapshot is the cart view handed to the presentation layer: lines plus
// a running total at current catalog prices. Prices here are not frozen.
type CartSnapshot struct {
	Lines []CartSnapshotLine
	Total decimal.Decimal
}
