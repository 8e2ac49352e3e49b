package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/petaline/storefront/internal/domain/model"
)

// CartRepository stores session-scoped carts. Validation against the catalog
// happens in the cart use case; the repository only keeps lines.
type CartRepository interface {
	// Get returns the cart for the session, empty if none exists yet.
	Get(ctx context.Context, sessionID uuid.UUID) (*model.Cart, error)
	// SetLine sets the quantity for the product, creating the line if absent
	// and removing it when qty is zero or negative.
	SetLine(ctx context.Context, sessionID uuid.UUID, productID int64, qty int) error
	RemoveLine(ctx context.Context, sessionID uuid.UUID, productID int64) error
	Clear(ctx context.Context, sessionID uuid.UUID) error
}
