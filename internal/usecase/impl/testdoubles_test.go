package impl

import (
	"context"
	"strings"
	"sync"
	"time"

	"medifinder/internal/domain/entity"
	domainerrors "medifinder/internal/domain/errors"
	"medifinder/internal/domain/repository"
	"medifinder/internal/domain/service"
)

// fakeVault is an in-memory SessionVault.
type fakeVault struct {
	mu     sync.Mutex
	token  string
	record []byte
	// corrupt makes LoadRecord report an unparseable record slot.
	corrupt bool

	session *entity.Session
}

func newFakeVault() *fakeVault {
	return &fakeVault{}
}

func (v *fakeVault) StoreToken(_ context.Context, token string, _ time.Duration) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.token = token

	return nil
}

func (v *fakeVault) LoadToken(_ context.Context) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.token == "" {
		return "", repository.ErrTokenNotFound
	}

	return v.token, nil
}

func (v *fakeVault) StoreRecord(_ context.Context, session *entity.Session) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.session = session.Clone()

	return nil
}

func (v *fakeVault) LoadRecord(_ context.Context) (*entity.Session, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.corrupt {
		return nil, repository.ErrRecordCorrupted
	}
	if v.session == nil {
		return nil, repository.ErrRecordNotFound
	}

	return v.session.Clone(), nil
}

func (v *fakeVault) Clear(_ context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.token = ""
	v.session = nil
	v.corrupt = false

	return nil
}

// fakeTokenService issues recognizable static tokens.
type fakeTokenService struct {
	rejectAll bool
}

func (s *fakeTokenService) GenerateToken(userID string, email string) (string, error) {
	return "token-" + userID, nil
}

func (s *fakeTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	if s.rejectAll || !strings.HasPrefix(tokenString, "token-") {
		return nil, domainerrors.ErrTokenInvalid
	}

	return &service.Claims{UserID: strings.TrimPrefix(tokenString, "token-")}, nil
}

func (s *fakeTokenService) TokenTTL() time.Duration {
	return 7 * 24 * time.Hour
}

// fakeVerifier verifies credentials against a switch.
type fakeVerifier struct {
	fail     bool
	enrolled []*entity.Session
}

func (f *fakeVerifier) Verify(_ context.Context, email, _ string) (*entity.Session, error) {
	if f.fail {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return &entity.Session{ID: "1", Email: email, FirstName: "Jean", LastName: "Dupont"}, nil
}

func (f *fakeVerifier) Enroll(_ context.Context, profile *entity.Session, _ string) error {
	f.enrolled = append(f.enrolled, profile.Clone())

	return nil
}

// fakeHasher hashes by prefixing.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hash:" + password, nil }

func (fakeHasher) Check(password, hash string) error {
	if hash != "hash:"+password {
		return domainerrors.ErrInvalidCredentials
	}

	return nil
}

// recordingNotifier captures every toast.
type recordingNotifier struct {
	mu     sync.Mutex
	toasts []string
}

func (n *recordingNotifier) Notify(_ context.Context, title, description string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, title+": "+description)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.toasts)
}

func (n *recordingNotifier) last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.toasts) == 0 {
		return ""
	}

	return n.toasts[len(n.toasts)-1]
}

// fakeCartRepo mirrors cart items in memory.
type fakeCartRepo struct {
	mu    sync.Mutex
	items []*entity.CartItem
	fail  bool
}

func (r *fakeCartRepo) SaveItems(_ context.Context, items []*entity.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return domainerrors.ErrInternalError
	}
	r.items = append([]*entity.CartItem(nil), items...)

	return nil
}

func (r *fakeCartRepo) LoadItems(_ context.Context) ([]*entity.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*entity.CartItem(nil), r.items...), nil
}

func (r *fakeCartRepo) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil

	return nil
}

// fakeReservationRepo keeps reservations in a map.
type fakeReservationRepo struct {
	mu           sync.Mutex
	reservations map[string]*entity.Reservation
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{reservations: make(map[string]*entity.Reservation)}
}

func (r *fakeReservationRepo) Create(_ context.Context, reservation *entity.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *reservation
	r.reservations[reservation.ID] = &cp

	return nil
}

func (r *fakeReservationRepo) FindByID(_ context.Context, id string) (*entity.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reservation, ok := r.reservations[id]
	if !ok {
		return nil, repository.ErrReservationNotFound
	}
	cp := *reservation

	return &cp, nil
}

func (r *fakeReservationRepo) FindByUserID(_ context.Context, userID string) ([]*entity.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.Reservation{}
	for _, reservation := range r.reservations {
		if reservation.UserID == userID {
			cp := *reservation
			out = append(out, &cp)
		}
	}

	return out, nil
}

func (r *fakeReservationRepo) Update(_ context.Context, reservation *entity.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reservations[reservation.ID]; !ok {
		return repository.ErrReservationNotFound
	}
	cp := *reservation
	r.reservations[reservation.ID] = &cp

	return nil
}

// fakeQRCodeService returns canned bytes.
type fakeQRCodeService struct{}

func (fakeQRCodeService) GeneratePickupQR(reservationID string) ([]byte, error) {
	return []byte("png:" + reservationID), nil
}

func (fakeQRCodeService) ParsePickupQR(qrData string) (string, error) {
	return qrData, nil
}
