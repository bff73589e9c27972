// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"medifinder/internal/domain/entity"
)

// Domain-specific errors for the session vault.
var (
	// ErrTokenNotFound is returned when the auth token slot is empty or expired.
	ErrTokenNotFound = errors.New("auth token not found")
	// ErrRecordNotFound is returned when the user record slot is empty.
	ErrRecordNotFound = errors.New("session record not found")
	// ErrRecordCorrupted is returned when the user record slot holds bytes
	// that do not parse as a session. Callers recover by clearing the vault.
	ErrRecordCorrupted = errors.New("session record corrupted")
)

// SessionVault is the durable storage contract backing the session store:
// a key-value store with two slots, an expiring auth token slot and a
// JSON-serialized user record slot. Writes are last-writer-wins and there is
// no transactional guarantee across the two slots; any inconsistency is
// treated by the caller as "logged out".
type SessionVault interface {
	// StoreToken writes the auth token slot with the given time-to-live.
	StoreToken(ctx context.Context, token string, ttl time.Duration) error

	// LoadToken reads the auth token slot. Returns ErrTokenNotFound when the
	// slot is empty or the token's TTL has elapsed.
	LoadToken(ctx context.Context) (string, error)

	// StoreRecord serializes and writes the user record slot.
	StoreRecord(ctx context.Context, session *entity.Session) error

	// LoadRecord reads and parses the user record slot. Returns
	// ErrRecordNotFound when empty, ErrRecordCorrupted when unparseable.
	LoadRecord(ctx context.Context) (*entity.Session, error)

	// Clear empties both slots. Clearing an already-empty vault is a no-op.
	Clear(ctx context.Context) error
}
