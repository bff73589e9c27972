package repository

import (
	"context"

	"medifinder/internal/domain/entity"
)

// CartRepository optionally persists the cart's line items so they survive a
// process restart. The in-memory cart store is the source of truth; this
// repository is only a write-through mirror, enabled by configuration.
type CartRepository interface {
	// SaveItems replaces the persisted cart with the given line items,
	// preserving their order.
	SaveItems(ctx context.Context, items []*entity.CartItem) error

	// LoadItems returns the persisted line items in insertion order, or an
	// empty slice when nothing was persisted.
	LoadItems(ctx context.Context) ([]*entity.CartItem, error)

	// Clear removes the persisted cart.
	Clear(ctx context.Context) error
}
