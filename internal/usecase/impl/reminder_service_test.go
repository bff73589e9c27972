package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"medifinder/config"
	"medifinder/internal/domain/entity"
	domainerrors "medifinder/internal/domain/errors"
	"medifinder/internal/infra/persistence/memory"
	"medifinder/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReminders(t *testing.T, tick time.Duration) (usecase.ReminderUsecase, *recordingNotifier) {
	t.Helper()

	cfg := &config.Config{Reminder: &config.ReminderConfig{Tick: tick}}
	notifier := &recordingNotifier{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewReminderService(cfg, memory.NewReminderRepository(), notifier, logger)
	t.Cleanup(svc.StopAll)

	return svc, notifier
}

func at(hour, minute int) time.Time {
	return time.Date(2026, time.March, 10, hour, minute, 0, 0, time.UTC)
}

func TestEvaluateTiers(t *testing.T) {
	svc, _ := newTestReminders(t, time.Minute)
	dose := &entity.DoseReminder{ID: "1", Medication: "Doliprane 1000mg", NextDose: "14:00"}

	tests := []struct {
		name          string
		now           time.Time
		wantTier      entity.UrgencyTier
		wantUrgent    bool
		wantMinutes   int
		wantCountdown string
	}{
		{
			name:          "exactly at dose time is overdue",
			now:           at(14, 0),
			wantTier:      entity.TierOverdue,
			wantUrgent:    true,
			wantMinutes:   0,
			wantCountdown: "En retard",
		},
		{
			name:          "one minute before is due soon and urgent",
			now:           at(13, 59),
			wantTier:      entity.TierDueSoon,
			wantUrgent:    true,
			wantMinutes:   1,
			wantCountdown: "1 min",
		},
		{
			name:          "six minutes before is due soon but not urgent",
			now:           at(13, 54),
			wantTier:      entity.TierDueSoon,
			wantUrgent:    false,
			wantMinutes:   6,
			wantCountdown: "6 min",
		},
		{
			name:          "59 minutes before is still due soon",
			now:           at(13, 1),
			wantTier:      entity.TierDueSoon,
			wantUrgent:    false,
			wantMinutes:   59,
			wantCountdown: "59 min",
		},
		{
			name:          "exactly one hour before is scheduled",
			now:           at(13, 0),
			wantTier:      entity.TierScheduled,
			wantMinutes:   60,
			wantCountdown: "1h",
		},
		{
			name:          "hours with minutes",
			now:           at(11, 30),
			wantTier:      entity.TierScheduled,
			wantMinutes:   150,
			wantCountdown: "2h 30min",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := svc.Evaluate(dose, tt.now)

			assert.Equal(t, tt.wantTier, status.Tier)
			assert.Equal(t, tt.wantUrgent, status.Urgent)
			assert.Equal(t, tt.wantMinutes, status.MinutesUntil)
			assert.Equal(t, tt.wantCountdown, status.Countdown)
			assert.Equal(t, "1", status.DoseID)
		})
	}
}

func TestEvaluateRollsToTomorrow(t *testing.T) {
	svc, _ := newTestReminders(t, time.Minute)
	dose := &entity.DoseReminder{ID: "1", Medication: "Amoxicilline 500mg", NextDose: "08:00"}

	// 23:50 the night before: the 08:00 dose is tomorrow morning, never
	// overdue.
	status := svc.Evaluate(dose, at(23, 50))

	assert.Equal(t, entity.TierScheduled, status.Tier)
	assert.Equal(t, 490, status.MinutesUntil)
	assert.Equal(t, "8h 10min", status.Countdown)
	assert.False(t, status.Urgent)
}

func TestEvaluateTakenDose(t *testing.T) {
	svc, _ := newTestReminders(t, time.Minute)
	dose := &entity.DoseReminder{ID: "1", NextDose: "14:00", Taken: true}

	status := svc.Evaluate(dose, at(14, 0))

	assert.Equal(t, entity.TierTaken, status.Tier)
	assert.False(t, status.Urgent)
	assert.Equal(t, "Pris", status.Countdown)
}

func TestEvaluateMalformedTimeReadsAsOverdue(t *testing.T) {
	svc, _ := newTestReminders(t, time.Minute)
	dose := &entity.DoseReminder{ID: "1", NextDose: "bientôt"}

	status := svc.Evaluate(dose, at(14, 0))

	assert.Equal(t, entity.TierOverdue, status.Tier)
}

func TestReminderStatusUnknownDose(t *testing.T) {
	svc, _ := newTestReminders(t, time.Minute)

	_, err := svc.Status(context.Background(), "ghost")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}

func TestReminderMarkTaken(t *testing.T) {
	svc, notifier := newTestReminders(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, svc.MarkTaken(ctx, "1"))

	status, err := svc.Status(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, entity.TierTaken, status.Tier)
	assert.Contains(t, notifier.last(), "Prise confirmée")
}

func TestReminderSnooze(t *testing.T) {
	svc, notifier := newTestReminders(t, time.Minute)
	ctx := context.Background()

	// Seeded dose 1 is at 14:00; snoozing 30 minutes moves it to 14:30.
	require.NoError(t, svc.Snooze(ctx, "1", 30))

	doses, err := svc.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, doses)
	assert.Equal(t, "14:30", doses[0].NextDose)
	assert.Contains(t, notifier.last(), "Rappel reporté")
}

func TestReminderSnoozeWrapsPastMidnight(t *testing.T) {
	svc, _ := newTestReminders(t, time.Minute)
	ctx := context.Background()

	// 20:00 plus 5 hours lands at 01:00 the next day.
	require.NoError(t, svc.Snooze(ctx, "2", 300))

	doses, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, doses, 2)
	assert.Equal(t, "01:00", doses[1].NextDose)
}

func TestReminderSnoozeRejectsNonPositiveMinutes(t *testing.T) {
	svc, _ := newTestReminders(t, time.Minute)

	err := svc.Snooze(context.Background(), "1", 0)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestReminderTrackAndUntrack(t *testing.T) {
	svc, _ := newTestReminders(t, 10*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, svc.Track(ctx, "1"))

	// The tracker evaluates immediately; the latest status is available.
	require.Eventually(t, func() bool {
		status, err := svc.Status(ctx, "1")

		return err == nil && status != nil
	}, time.Second, 5*time.Millisecond)

	svc.Untrack("1")
	svc.Untrack("1") // untracking twice is fine
}

func TestReminderTrackUnknownDose(t *testing.T) {
	svc, _ := newTestReminders(t, time.Minute)

	err := svc.Track(context.Background(), "ghost")
	require.Error(t, err)
}

func TestReminderStopAllTerminatesTrackers(t *testing.T) {
	svc, _ := newTestReminders(t, 5*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, svc.Track(ctx, "1"))
	require.NoError(t, svc.Track(ctx, "2"))

	// StopAll blocks until every tracker goroutine has exited.
	svc.StopAll()
}
