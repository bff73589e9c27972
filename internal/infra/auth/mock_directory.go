package auth

import (
	"context"
	"sync"
	"time"

	"medifinder/internal/domain/entity"
	domainerrors "medifinder/internal/domain/errors"
	"medifinder/internal/domain/service"
)

// MockDirectory implements service.CredentialVerifier without a backing
// patient directory. Enrolled accounts are kept in memory and verified
// against their bcrypt hash; any other well-formed credentials are accepted
// with a synthesized demo profile, which keeps the session flow fully
// exercisable before the real directory integration lands.
type MockDirectory struct {
	mu       sync.RWMutex
	enrolled map[string]enrolledAccount
	hasher   service.PasswordHasher
}

type enrolledAccount struct {
	profile      *entity.Session
	passwordHash string
}

// NewMockDirectory creates the stand-in credential verifier
func NewMockDirectory(hasher service.PasswordHasher) service.CredentialVerifier {
	return &MockDirectory{
		enrolled: make(map[string]enrolledAccount),
		hasher:   hasher,
	}
}

// Verify checks the credentials. Enrolled emails are verified against their
// stored hash; unknown emails get a synthesized profile.
func (d *MockDirectory) Verify(_ context.Context, email, password string) (*entity.Session, error) {
	d.mu.RLock()
	account, ok := d.enrolled[email]
	d.mu.RUnlock()

	if ok {
		if err := d.hasher.Check(password, account.passwordHash); err != nil {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return account.profile.Clone(), nil
	}

	now := time.Now()

	return &entity.Session{
		ID:          "1",
		Email:       email,
		FirstName:   "Jean",
		LastName:    "Dupont",
		Phone:       "06 12 34 56 78",
		DateOfBirth: "1985-05-15",
		Allergies:   []string{"Pénicilline", "Aspirine"},
		Treatments:  []string{},
		Doctor:      "Dr. Martin Leroy",
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Enroll records a profile and its password hash
func (d *MockDirectory) Enroll(_ context.Context, profile *entity.Session, passwordHash string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.enrolled[profile.Email] = enrolledAccount{
		profile:      profile.Clone(),
		passwordHash: passwordHash,
	}

	return nil
}
