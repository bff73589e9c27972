package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"medifinder/config"
	"medifinder/internal/domain/entity"
	domainerrors "medifinder/internal/domain/errors"
	"medifinder/internal/domain/repository"
	"medifinder/internal/domain/service"
	"medifinder/internal/usecase"

	"github.com/pkg/errors"
)

// urgentWindowMinutes is the threshold under which a due dose is flagged
// urgent.
const urgentWindowMinutes = 5

// reminderService implements the ReminderUsecase interface. Each tracked
// dose owns one goroutine re-evaluating it on every tick; all trackers are
// cancelled on shutdown.
type reminderService struct {
	repo     repository.ReminderRepository
	notifier service.Notifier
	logger   *slog.Logger
	tick     time.Duration

	mu       sync.Mutex
	trackers map[string]context.CancelFunc
	latest   map[string]*entity.DoseStatus
	wg       sync.WaitGroup
}

// NewReminderService is the constructor for reminderService.
func NewReminderService(
	cfg *config.Config,
	repo repository.ReminderRepository,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.ReminderUsecase {
	tick := time.Minute
	if cfg.Reminder != nil && cfg.Reminder.Tick > 0 {
		tick = cfg.Reminder.Tick
	}

	return &reminderService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
		tick:     tick,
		trackers: make(map[string]context.CancelFunc),
		latest:   make(map[string]*entity.DoseStatus),
	}
}

// List returns all dose reminders.
func (srv *reminderService) List(ctx context.Context) ([]*entity.DoseReminder, error) {
	doses, err := srv.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list dose reminders")
	}

	return doses, nil
}

// Evaluate classifies a dose against the given clock. The next occurrence
// of the dose's time-of-day is resolved at or after now, rolling to
// tomorrow when today's occurrence has already passed.
func (srv *reminderService) Evaluate(dose *entity.DoseReminder, now time.Time) *entity.DoseStatus {
	status := &entity.DoseStatus{
		DoseID:      dose.ID,
		EvaluatedAt: now,
	}

	if dose.Taken {
		status.Tier = entity.TierTaken
		status.Countdown = "Pris"

		return status
	}

	var hour, minute int
	if _, err := fmt.Sscanf(dose.NextDose, "%d:%d", &hour, &minute); err != nil {
		// A malformed time-of-day reads as "due now" rather than silently
		// never firing.
		status.Tier = entity.TierOverdue
		status.Urgent = true
		status.Countdown = "En retard"

		return status
	}

	occurrence := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if occurrence.Before(now) {
		occurrence = occurrence.Add(24 * time.Hour)
	}

	minutesUntil := int(occurrence.Sub(now) / time.Minute)
	status.MinutesUntil = minutesUntil

	switch {
	case minutesUntil <= 0:
		status.Tier = entity.TierOverdue
		status.Urgent = true
		status.MinutesUntil = 0
		status.Countdown = "En retard"
	case minutesUntil < 60:
		status.Tier = entity.TierDueSoon
		status.Urgent = minutesUntil <= urgentWindowMinutes
		status.Countdown = fmt.Sprintf("%d min", minutesUntil)
	default:
		status.Tier = entity.TierScheduled
		hours := minutesUntil / 60
		mins := minutesUntil % 60
		if mins > 0 {
			status.Countdown = fmt.Sprintf("%dh %dmin", hours, mins)
		} else {
			status.Countdown = fmt.Sprintf("%dh", hours)
		}
	}

	return status
}

// Status evaluates the dose with the given id against the current clock.
func (srv *reminderService) Status(ctx context.Context, doseID string) (*entity.DoseStatus, error) {
	dose, err := srv.repo.FindByID(ctx, doseID)
	if err != nil {
		if errors.Is(err, repository.ErrDoseNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "dose reminder not found")
		}

		return nil, errors.Wrap(err, "find dose reminder")
	}

	status := srv.Evaluate(dose, timeNow())

	srv.mu.Lock()
	srv.latest[doseID] = status
	srv.mu.Unlock()

	return status, nil
}

// Track starts periodic re-evaluation of the dose. Tracking an already
// tracked dose restarts its timer.
func (srv *reminderService) Track(ctx context.Context, doseID string) error {
	if _, err := srv.repo.FindByID(ctx, doseID); err != nil {
		if errors.Is(err, repository.ErrDoseNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "dose reminder not found")
		}

		return errors.Wrap(err, "find dose reminder")
	}

	// The tracker deliberately detaches from the request context; its
	// lifetime is bounded by Untrack and StopAll, not by the HTTP call.
	trackCtx, cancel := context.WithCancel(context.Background())

	srv.mu.Lock()
	if prev, ok := srv.trackers[doseID]; ok {
		prev()
	}
	srv.trackers[doseID] = cancel
	srv.mu.Unlock()

	srv.wg.Add(1)
	go srv.run(trackCtx, doseID)

	return nil
}

// Untrack stops the periodic re-evaluation of the dose, if any.
func (srv *reminderService) Untrack(doseID string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if cancel, ok := srv.trackers[doseID]; ok {
		cancel()
		delete(srv.trackers, doseID)
	}
}

// MarkTaken flips the taken flag of the dose.
func (srv *reminderService) MarkTaken(ctx context.Context, doseID string) error {
	dose, err := srv.repo.FindByID(ctx, doseID)
	if err != nil {
		if errors.Is(err, repository.ErrDoseNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "dose reminder not found")
		}

		return errors.Wrap(err, "find dose reminder")
	}

	if err := srv.repo.SetTaken(ctx, doseID, true); err != nil {
		return errors.Wrap(err, "mark dose taken")
	}

	if _, err := srv.Status(ctx, doseID); err != nil {
		return err
	}

	srv.notifier.Notify(ctx, "Prise confirmée", dose.Medication+" marqué comme pris")

	return nil
}

// Snooze pushes the next-dose time-of-day forward by the given minutes.
func (srv *reminderService) Snooze(ctx context.Context, doseID string, minutes int) error {
	if minutes <= 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "snooze minutes must be positive")
	}

	dose, err := srv.repo.FindByID(ctx, doseID)
	if err != nil {
		if errors.Is(err, repository.ErrDoseNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "dose reminder not found")
		}

		return errors.Wrap(err, "find dose reminder")
	}

	var hour, minute int
	if _, err := fmt.Sscanf(dose.NextDose, "%d:%d", &hour, &minute); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "parse next dose time")
	}

	total := (hour*60 + minute + minutes) % (24 * 60)
	nextDose := fmt.Sprintf("%02d:%02d", total/60, total%60)
	if err := srv.repo.SetNextDose(ctx, doseID, nextDose); err != nil {
		return errors.Wrap(err, "set next dose")
	}

	if _, err := srv.Status(ctx, doseID); err != nil {
		return err
	}

	srv.notifier.Notify(ctx, "Rappel reporté", fmt.Sprintf("Nouveau rappel dans %d minutes", minutes))

	return nil
}

// StopAll cancels every tracker and waits for their goroutines to exit.
func (srv *reminderService) StopAll() {
	srv.mu.Lock()
	for id, cancel := range srv.trackers {
		cancel()
		delete(srv.trackers, id)
	}
	srv.mu.Unlock()

	srv.wg.Wait()
}

// run is the per-dose tracker loop: evaluate immediately, then on every
// tick until cancelled.
func (srv *reminderService) run(ctx context.Context, doseID string) {
	defer srv.wg.Done()

	srv.evaluateTracked(ctx, doseID)

	ticker := time.NewTicker(srv.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			srv.evaluateTracked(ctx, doseID)
		}
	}
}

func (srv *reminderService) evaluateTracked(ctx context.Context, doseID string) {
	status, err := srv.Status(ctx, doseID)
	if err != nil {
		srv.logger.Warn("tracked dose evaluation failed", "doseID", doseID, "error", err)

		return
	}

	srv.logger.Debug("dose evaluated",
		"doseID", doseID,
		"tier", string(status.Tier),
		"countdown", status.Countdown,
	)
}
