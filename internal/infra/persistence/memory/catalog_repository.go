// Package memory holds the seeded in-memory repositories backing the
// catalog and reminder reads. A real deployment would swap these for an
// upstream pharmacy directory; the seed mirrors the demo dataset.
package memory

import (
	"context"
	"sync"

	"medifinder/internal/domain/entity"
	"medifinder/internal/domain/repository"
)

// PharmacyRepository implements repository.PharmacyRepository over a fixed
// seed of Paris pharmacies.
type PharmacyRepository struct {
	mu         sync.RWMutex
	pharmacies map[string]*entity.Pharmacy
	order      []string
}

// NewPharmacyRepository creates the seeded pharmacy repository
func NewPharmacyRepository() repository.PharmacyRepository {
	repo := &PharmacyRepository{pharmacies: make(map[string]*entity.Pharmacy)}
	for _, p := range seedPharmacies() {
		repo.pharmacies[p.ID] = p
		repo.order = append(repo.order, p.ID)
	}

	return repo
}

// FindByID retrieves a single pharmacy by its identifier
func (r *PharmacyRepository) FindByID(_ context.Context, id string) (*entity.Pharmacy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pharmacy, ok := r.pharmacies[id]
	if !ok {
		return nil, repository.ErrPharmacyNotFound
	}
	cp := *pharmacy

	return &cp, nil
}

// List returns all pharmacies in seed order
func (r *PharmacyRepository) List(_ context.Context) ([]*entity.Pharmacy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Pharmacy, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.pharmacies[id]
		out = append(out, &cp)
	}

	return out, nil
}

// MedicationRepository implements repository.MedicationRepository over a
// fixed medication seed.
type MedicationRepository struct {
	mu          sync.RWMutex
	medications map[string]*entity.Medication
	order       []string
}

// NewMedicationRepository creates the seeded medication repository
func NewMedicationRepository() repository.MedicationRepository {
	repo := &MedicationRepository{medications: make(map[string]*entity.Medication)}
	for _, m := range seedMedications() {
		repo.medications[m.ID] = m
		repo.order = append(repo.order, m.ID)
	}

	return repo
}

// FindByID retrieves a single medication by its identifier
func (r *MedicationRepository) FindByID(_ context.Context, id string) (*entity.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	medication, ok := r.medications[id]
	if !ok {
		return nil, repository.ErrMedicationNotFound
	}
	cp := *medication
	cp.Offers = append([]entity.MedicationOffer(nil), medication.Offers...)

	return &cp, nil
}

// List returns all medications in seed order
func (r *MedicationRepository) List(_ context.Context) ([]*entity.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Medication, 0, len(r.order))
	for _, id := range r.order {
		m := r.medications[id]
		cp := *m
		cp.Offers = append([]entity.MedicationOffer(nil), m.Offers...)
		out = append(out, &cp)
	}

	return out, nil
}
