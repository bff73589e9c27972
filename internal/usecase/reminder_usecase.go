package usecase

import (
	"context"
	"time"

	"medifinder/internal/domain/entity"
)

// ReminderUsecase evaluates dose reminders against the clock and schedules
// their periodic re-evaluation.
type ReminderUsecase interface {
	// List returns all dose reminders.
	List(ctx context.Context) ([]*entity.DoseReminder, error)

	// Evaluate classifies a dose against the given clock. It is pure: the
	// dose entity is never mutated.
	Evaluate(dose *entity.DoseReminder, now time.Time) *entity.DoseStatus

	// Status evaluates the dose with the given id against the current clock.
	Status(ctx context.Context, doseID string) (*entity.DoseStatus, error)

	// Track starts periodic re-evaluation of the dose. Tracking an already
	// tracked dose restarts its timer.
	Track(ctx context.Context, doseID string) error

	// Untrack stops the periodic re-evaluation of the dose, if any.
	Untrack(doseID string)

	// MarkTaken flips the taken flag of the dose and fires a toast.
	MarkTaken(ctx context.Context, doseID string) error

	// Snooze pushes the next-dose time forward by the given minutes and
	// fires a toast.
	Snooze(ctx context.Context, doseID string, minutes int) error

	// StopAll cancels every tracker. Called on shutdown; no tracker may
	// outlive the service.
	StopAll()
}
