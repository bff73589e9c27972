package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"medifinder/internal/domain/entity"
	domainerrors "medifinder/internal/domain/errors"
	"medifinder/internal/infra/persistence/memory"
	"medifinder/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReservations(t *testing.T) (usecase.ReservationUsecase, *recordingNotifier) {
	t.Helper()

	notifier := &recordingNotifier{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewReservationService(
		newFakeReservationRepo(),
		memory.NewMedicationRepository(),
		memory.NewPharmacyRepository(),
		fakeQRCodeService{},
		notifier,
		logger,
	)

	return svc, notifier
}

func validInput() *usecase.CreateReservationInput {
	return &usecase.CreateReservationInput{
		MedicationID: "1",
		PharmacyID:   "1",
		Quantity:     2,
		PickupDate:   "2026-09-01",
		PickupTime:   "10:30",
	}
}

func TestReservationCreate(t *testing.T) {
	svc, notifier := newTestReservations(t)

	reservation, err := svc.Create(context.Background(), "user-1", validInput())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(reservation.ID, "RES-"))
	assert.Equal(t, "user-1", reservation.UserID)
	assert.Equal(t, "Doliprane 1000mg", reservation.MedicationName)
	assert.Equal(t, "Pharmacie du Centre", reservation.PharmacyName)
	// 2 x 2.95 EUR at Pharmacie du Centre.
	assert.Equal(t, int64(295), reservation.UnitPriceCents)
	assert.Equal(t, int64(590), reservation.TotalCents)
	assert.Equal(t, entity.ReservationPending, reservation.Status)
	assert.Contains(t, notifier.last(), "Réservation confirmée")
}

func TestReservationCreateRequiresUser(t *testing.T) {
	svc, _ := newTestReservations(t)

	_, err := svc.Create(context.Background(), "", validInput())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "UNAUTHENTICATED", appErr.ErrorCode())
}

func TestReservationCreateValidatesInput(t *testing.T) {
	svc, _ := newTestReservations(t)

	input := validInput()
	input.Quantity = 0
	_, err := svc.Create(context.Background(), "user-1", input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestReservationCreateOutOfStock(t *testing.T) {
	svc, _ := newTestReservations(t)

	// Advil at Pharmacie Voltaire is seeded out of stock.
	input := validInput()
	input.MedicationID = "2"
	input.PharmacyID = "3"
	_, err := svc.Create(context.Background(), "user-1", input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "OUT_OF_STOCK", appErr.ErrorCode())
}

func TestReservationCreateNoOfferAtPharmacy(t *testing.T) {
	svc, _ := newTestReservations(t)

	// Doliprane has no offer at Pharmacie Voltaire.
	input := validInput()
	input.PharmacyID = "3"
	_, err := svc.Create(context.Background(), "user-1", input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "OUT_OF_STOCK", appErr.ErrorCode())
}

func TestReservationLifecycle(t *testing.T) {
	svc, _ := newTestReservations(t)
	ctx := context.Background()

	reservation, err := svc.Create(ctx, "user-1", validInput())
	require.NoError(t, err)

	ready, err := svc.MarkReady(ctx, reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationReady, ready.Status)

	collected, err := svc.MarkCollected(ctx, reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationCollected, collected.Status)

	// A collected reservation is closed for further transitions.
	_, err = svc.Cancel(ctx, reservation.ID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "RESERVATION_CLOSED", appErr.ErrorCode())
}

func TestReservationCancelPending(t *testing.T) {
	svc, notifier := newTestReservations(t)
	ctx := context.Background()

	reservation, err := svc.Create(ctx, "user-1", validInput())
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationCancelled, cancelled.Status)
	assert.Contains(t, notifier.last(), "Réservation annulée")

	// Cancelling twice fails.
	_, err = svc.Cancel(ctx, reservation.ID)
	require.Error(t, err)
}

func TestReservationCollectRequiresReady(t *testing.T) {
	svc, _ := newTestReservations(t)
	ctx := context.Background()

	reservation, err := svc.Create(ctx, "user-1", validInput())
	require.NoError(t, err)

	_, err = svc.MarkCollected(ctx, reservation.ID)
	require.Error(t, err)
}

func TestReservationGetUnknown(t *testing.T) {
	svc, _ := newTestReservations(t)

	_, err := svc.Get(context.Background(), "RES-ghost")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "RESERVATION_NOT_FOUND", appErr.ErrorCode())
}

func TestReservationPickupQR(t *testing.T) {
	svc, _ := newTestReservations(t)
	ctx := context.Background()

	reservation, err := svc.Create(ctx, "user-1", validInput())
	require.NoError(t, err)

	png, err := svc.PickupQR(ctx, reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, "png:"+reservation.ID, string(png))
}

func TestReservationListByUser(t *testing.T) {
	svc, _ := newTestReservations(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "user-1", validInput())
	require.NoError(t, err)
	_, err = svc.Create(ctx, "user-2", validInput())
	require.NoError(t, err)

	reservations, err := svc.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, reservations, 1)
	assert.Equal(t, "user-1", reservations[0].UserID)
}
