// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"medifinder/internal/domain/entity"
)

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=8"`
	FirstName   string   `json:"firstName" validate:"required"`
	LastName    string   `json:"lastName" validate:"required"`
	Phone       string   `json:"phone"`
	DateOfBirth string   `json:"dateOfBirth"`
	Allergies   []string `json:"allergies"`
	Treatments  []string `json:"treatments"`
	Doctor      string   `json:"doctor"`
}

// SessionUsecase is the session store: it owns the signed-in state of the
// single local user, persists it durably, and publishes every change to
// subscribers.
type SessionUsecase interface {
	// Login verifies the credentials, persists the session durably and
	// publishes the authenticated snapshot. A failed login leaves any prior
	// session untouched.
	Login(ctx context.Context, email, password string) (*entity.Session, error)

	// Register validates the input, enrolls the account and then behaves
	// like a successful login for the new profile.
	Register(ctx context.Context, input *RegisterInput) (*entity.Session, error)

	// Logout clears the durable slots and publishes the unauthenticated
	// snapshot. Logging out while logged out is a no-op.
	Logout(ctx context.Context) error

	// UpdateUser merges the patch into the current session and persists the
	// result. It is a no-op when unauthenticated.
	UpdateUser(ctx context.Context, patch *entity.SessionPatch) (*entity.Session, error)

	// Restore rebuilds the in-memory state from durable storage at startup.
	// Any inconsistency between the token and record slots, or an unparseable
	// record, degrades to a clean logged-out state.
	Restore(ctx context.Context) error

	// Current returns the signed-in session, or nil and false when logged out.
	Current() (*entity.Session, bool)

	// Subscribe returns a channel receiving the session after every change
	// (nil when logged out) and a function to unsubscribe. A slow subscriber
	// drops intermediate snapshots rather than block mutations.
	Subscribe(buffer int) (<-chan *entity.Session, func())
}
