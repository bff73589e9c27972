package memory

import (
	"context"
	"sync"

	"medifinder/internal/domain/entity"
	"medifinder/internal/domain/repository"
)

// ReminderRepository implements repository.ReminderRepository in memory.
type ReminderRepository struct {
	mu    sync.RWMutex
	doses map[string]*entity.DoseReminder
	order []string
}

// NewReminderRepository creates the seeded dose reminder repository
func NewReminderRepository() repository.ReminderRepository {
	repo := &ReminderRepository{doses: make(map[string]*entity.DoseReminder)}
	for _, d := range seedDoseReminders() {
		repo.doses[d.ID] = d
		repo.order = append(repo.order, d.ID)
	}

	return repo
}

// FindByID retrieves a single dose reminder
func (r *ReminderRepository) FindByID(_ context.Context, id string) (*entity.DoseReminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dose, ok := r.doses[id]
	if !ok {
		return nil, repository.ErrDoseNotFound
	}
	cp := *dose

	return &cp, nil
}

// List returns all dose reminders in seed order
func (r *ReminderRepository) List(_ context.Context) ([]*entity.DoseReminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.DoseReminder, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.doses[id]
		out = append(out, &cp)
	}

	return out, nil
}

// SetTaken flips the taken flag of a dose reminder
func (r *ReminderRepository) SetTaken(_ context.Context, id string, taken bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dose, ok := r.doses[id]
	if !ok {
		return repository.ErrDoseNotFound
	}
	dose.Taken = taken

	return nil
}

// SetNextDose replaces the next-dose time-of-day of a dose
func (r *ReminderRepository) SetNextDose(_ context.Context, id string, nextDose string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dose, ok := r.doses[id]
	if !ok {
		return repository.ErrDoseNotFound
	}
	dose.NextDose = nextDose

	return nil
}
