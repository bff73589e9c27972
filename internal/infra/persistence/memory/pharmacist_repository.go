package memory

import (
	"context"
	"sync"

	"medifinder/internal/domain/entity"
	"medifinder/internal/domain/repository"
)

// PharmacistRepository implements repository.PharmacistRepository over a
// fixed seed of telehealth pharmacists.
type PharmacistRepository struct {
	mu          sync.RWMutex
	pharmacists map[string]*entity.Pharmacist
	order       []string
}

// NewPharmacistRepository creates the seeded pharmacist repository
func NewPharmacistRepository() repository.PharmacistRepository {
	repo := &PharmacistRepository{pharmacists: make(map[string]*entity.Pharmacist)}
	for _, p := range seedPharmacists() {
		repo.pharmacists[p.ID] = p
		repo.order = append(repo.order, p.ID)
	}

	return repo
}

// FindByID retrieves a single pharmacist by their identifier
func (r *PharmacistRepository) FindByID(_ context.Context, id string) (*entity.Pharmacist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pharmacist, ok := r.pharmacists[id]
	if !ok {
		return nil, repository.ErrPharmacistNotFound
	}
	cp := *pharmacist

	return &cp, nil
}

// List returns all pharmacists in seed order
func (r *PharmacistRepository) List(_ context.Context) ([]*entity.Pharmacist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Pharmacist, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.pharmacists[id]
		out = append(out, &cp)
	}

	return out, nil
}
