// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"medifinder/internal/domain/entity"
	domainerrors "medifinder/internal/domain/errors"
	"medifinder/internal/domain/repository"
	"medifinder/internal/domain/service"
	"medifinder/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	vault    repository.SessionVault
	verifier service.CredentialVerifier
	tokens   service.TokenService
	hasher   service.PasswordHasher
	logger   *slog.Logger
	validate *validator.Validate

	mu      sync.RWMutex
	current *entity.Session
	subs    map[int]chan *entity.Session
	nextSub int
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	vault repository.SessionVault,
	verifier service.CredentialVerifier,
	tokens service.TokenService,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		vault:    vault,
		verifier: verifier,
		tokens:   tokens,
		hasher:   hasher,
		logger:   logger,
		validate: validator.New(),
		subs:     make(map[int]chan *entity.Session),
	}
}

// Login verifies the credentials and establishes the session.
func (srv *sessionService) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	srv.logger.Debug("Logging in", "email", email)

	profile, err := srv.verifier.Verify(ctx, email, password)
	if err != nil {
		// The previous session, if any, stays untouched on a failed login.
		return nil, errors.Wrap(err, "verify credentials")
	}

	if err := srv.establish(ctx, profile); err != nil {
		return nil, err
	}

	return profile.Clone(), nil
}

// Register validates the input, enrolls the account and signs it in.
func (srv *sessionService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Session, error) {
	// Bind leaves the pointer nil on an empty request body.
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("missing registration input"), "validate registration")
	}

	srv.logger.Debug("Registering account", "email", input.Email)

	if err := srv.validate.Struct(input); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "validate registration")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	profile := newProfile(input)
	if err := srv.verifier.Enroll(ctx, profile, passwordHash); err != nil {
		return nil, errors.Wrap(err, "enroll account")
	}

	if err := srv.establish(ctx, profile); err != nil {
		return nil, err
	}

	return profile.Clone(), nil
}

// Logout clears the durable slots and publishes the signed-out state.
func (srv *sessionService) Logout(ctx context.Context) error {
	srv.logger.Debug("Logging out")

	if err := srv.vault.Clear(ctx); err != nil {
		return errors.Wrap(err, "clear session vault")
	}

	srv.mu.Lock()
	srv.current = nil
	srv.publishLocked()
	srv.mu.Unlock()

	return nil
}

// UpdateUser merges the patch into the current session and persists it.
// A no-op when signed out.
func (srv *sessionService) UpdateUser(ctx context.Context, patch *entity.SessionPatch) (*entity.Session, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.current == nil {
		return nil, nil
	}

	merged := srv.current.Apply(patch)
	if err := srv.vault.StoreRecord(ctx, merged); err != nil {
		return nil, errors.Wrap(err, "store session record")
	}

	srv.current = merged
	srv.publishLocked()

	return merged.Clone(), nil
}

// Restore rebuilds the session from durable storage at startup. Anything
// short of a valid token plus a parseable record degrades to signed-out.
func (srv *sessionService) Restore(ctx context.Context) error {
	token, err := srv.vault.LoadToken(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return srv.resetToSignedOut(ctx)
		}

		return errors.Wrap(err, "load token")
	}

	if _, err := srv.tokens.ValidateToken(token); err != nil {
		srv.logger.Warn("stored token rejected, clearing session", "error", err)

		return srv.resetToSignedOut(ctx)
	}

	record, err := srv.vault.LoadRecord(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) || errors.Is(err, repository.ErrRecordCorrupted) {
			srv.logger.Warn("session record unusable, clearing session", "error", err)

			return srv.resetToSignedOut(ctx)
		}

		return errors.Wrap(err, "load session record")
	}

	srv.mu.Lock()
	srv.current = record
	srv.publishLocked()
	srv.mu.Unlock()
	srv.logger.Info("session restored", "email", record.Email)

	return nil
}

// Current returns the signed-in session, or nil and false when signed out.
func (srv *sessionService) Current() (*entity.Session, bool) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if srv.current == nil {
		return nil, false
	}

	return srv.current.Clone(), true
}

// Subscribe registers a snapshot channel and returns its cancel function.
func (srv *sessionService) Subscribe(buffer int) (<-chan *entity.Session, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan *entity.Session, buffer)

	srv.mu.Lock()
	id := srv.nextSub
	srv.nextSub++
	srv.subs[id] = ch
	srv.mu.Unlock()

	cancel := func() {
		srv.mu.Lock()
		defer srv.mu.Unlock()
		if sub, ok := srv.subs[id]; ok {
			delete(srv.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

// establish issues a token, persists both slots and publishes the snapshot.
func (srv *sessionService) establish(ctx context.Context, profile *entity.Session) error {
	token, err := srv.tokens.GenerateToken(profile.ID, profile.Email)
	if err != nil {
		return errors.Wrap(err, "generate token")
	}

	// Durable writes happen before the snapshot is published so subscribers
	// never observe a session that would not survive a restart.
	if err := srv.vault.StoreToken(ctx, token, srv.tokens.TokenTTL()); err != nil {
		return errors.Wrap(err, "store token")
	}
	if err := srv.vault.StoreRecord(ctx, profile); err != nil {
		return errors.Wrap(err, "store session record")
	}

	srv.mu.Lock()
	srv.current = profile.Clone()
	srv.publishLocked()
	srv.mu.Unlock()
	srv.logger.Info("session established", "email", profile.Email)

	return nil
}

func (srv *sessionService) resetToSignedOut(ctx context.Context) error {
	if err := srv.vault.Clear(ctx); err != nil {
		return errors.Wrap(err, "clear session vault")
	}

	srv.mu.Lock()
	srv.current = nil
	srv.publishLocked()
	srv.mu.Unlock()

	return nil
}

// publishLocked fans the current snapshot out to subscribers. Callers hold
// the mutex. A full subscriber channel drops the snapshot instead of
// blocking the mutation.
func (srv *sessionService) publishLocked() {
	snapshot := srv.current.Clone()
	for _, sub := range srv.subs {
		select {
		case sub <- snapshot:
		default:
		}
	}
}

func newProfile(input *usecase.RegisterInput) *entity.Session {
	now := timeNow()

	return &entity.Session{
		ID:          "user-" + uuid.NewString(),
		Email:       input.Email,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Phone:       input.Phone,
		DateOfBirth: input.DateOfBirth,
		Allergies:   append([]string(nil), input.Allergies...),
		Treatments:  append([]string(nil), input.Treatments...),
		Doctor:      input.Doctor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
