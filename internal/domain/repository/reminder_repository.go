package repository

import (
	"context"
	"errors"

	"medifinder/internal/domain/entity"
)

// ErrDoseNotFound is returned when a dose reminder id has no match.
var ErrDoseNotFound = errors.New("dose reminder not found")

// ReminderRepository holds the dose reminder entities the evaluator reads.
// The evaluator itself never writes through this interface; only the
// consumer-level commands (mark taken, snooze) do.
type ReminderRepository interface {
	// FindByID retrieves a single dose reminder.
	FindByID(ctx context.Context, id string) (*entity.DoseReminder, error)

	// List returns all dose reminders.
	List(ctx context.Context) ([]*entity.DoseReminder, error)

	// SetTaken flips the taken flag of a dose reminder.
	SetTaken(ctx context.Context, id string, taken bool) error

	// SetNextDose replaces the next-dose time-of-day ("HH:MM") of a dose.
	SetNextDose(ctx context.Context, id string, nextDose string) error
}
