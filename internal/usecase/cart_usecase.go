package usecase

import (
	"context"

	"medifinder/internal/domain/entity"
)

// CartUsecase is the cart store: an in-memory, insertion-ordered set of line
// items keyed by product id, optionally mirrored to durable storage.
type CartUsecase interface {
	// AddItem inserts the product with quantity 1, or bumps the quantity by
	// one when the product is already in the cart. Fires an "added" toast.
	AddItem(ctx context.Context, item *entity.CartItem) error

	// RemoveItem deletes the line item if present. Removing an absent product
	// is a silent no-op.
	RemoveItem(ctx context.Context, productID string) error

	// UpdateQuantity sets the quantity of an existing line item. A quantity
	// of zero or less is equivalent to RemoveItem.
	UpdateQuantity(ctx context.Context, productID string, quantity int) error

	// Clear empties the cart unconditionally and fires a toast.
	Clear(ctx context.Context) error

	// Items returns the line items in insertion order.
	Items() []*entity.CartItem

	// TotalItems returns the sum of all quantities.
	TotalItems() int

	// TotalPrice returns the cart total in euro cents; 0 for an empty cart.
	TotalPrice() int64

	// Restore loads persisted line items at startup when persistence is
	// enabled; otherwise it is a no-op.
	Restore(ctx context.Context) error

	// Subscribe returns a channel receiving the full item list after every
	// mutation and a function to unsubscribe.
	Subscribe(buffer int) (<-chan []*entity.CartItem, func())
}
