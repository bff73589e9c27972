// Package delivery defines the contract for transport layers.
package delivery

import "context"

// Delivery is a transport surface that serves until its context or
// lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
