package service

import "context"

// Notifier is the fire-and-forget "show transient message" surface invoked
// by cart mutations and other store side effects, mirroring the toast layer
// of the consumer UI. Implementations must never let a delivery failure
// propagate back into store state; errors are logged and swallowed.
type Notifier interface {
	// Notify shows a transient message with a title and a description.
	Notify(ctx context.Context, title, description string)
}
