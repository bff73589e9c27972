package service

import (
	"context"

	"medifinder/internal/domain/entity"
)

// CredentialVerifier is the authentication backend behind the session store.
// The bundled implementation is a mock directory that accepts any credentials
// and synthesizes a profile; a real backend must return
// errors.ErrInvalidCredentials for bad credentials and leave any prior
// session untouched.
type CredentialVerifier interface {
	// Verify checks the credentials and returns the matching profile.
	Verify(ctx context.Context, email, password string) (*entity.Session, error)

	// Enroll records a profile and its password hash so later Verify calls
	// for that email check against the stored hash.
	Enroll(ctx context.Context, profile *entity.Session, passwordHash string) error
}
