// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by the session auth token.
type Claims struct {
	UserID string
	Email  string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating the
// session auth token stored in the vault's expiring token slot.
type TokenService interface {
	// GenerateToken creates a signed auth token for the given user.
	GenerateToken(userID, email string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenTTL returns the configured token lifetime (7 days by default),
	// which doubles as the TTL of the durable token slot.
	TokenTTL() time.Duration
}
