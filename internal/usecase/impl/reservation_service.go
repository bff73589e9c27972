package impl

import (
	"context"
	"log/slog"

	"medifinder/internal/domain/entity"
	domainerrors "medifinder/internal/domain/errors"
	"medifinder/internal/domain/repository"
	"medifinder/internal/domain/service"
	"medifinder/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// reservationService implements the ReservationUsecase interface.
type reservationService struct {
	reservations repository.ReservationRepository
	medications  repository.MedicationRepository
	pharmacies   repository.PharmacyRepository
	qrcodes      service.QRCodeService
	notifier     service.Notifier
	logger       *slog.Logger
	validate     *validator.Validate
}

// NewReservationService is the constructor for reservationService.
func NewReservationService(
	reservations repository.ReservationRepository,
	medications repository.MedicationRepository,
	pharmacies repository.PharmacyRepository,
	qrcodes service.QRCodeService,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.ReservationUsecase {
	return &reservationService{
		reservations: reservations,
		medications:  medications,
		pharmacies:   pharmacies,
		qrcodes:      qrcodes,
		notifier:     notifier,
		logger:       logger,
		validate:     validator.New(),
	}
}

// Create reserves a medication for pickup at a pharmacy.
func (srv *reservationService) Create(ctx context.Context, userID string, input *usecase.CreateReservationInput) (*entity.Reservation, error) {
	if userID == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "create reservation")
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "validate reservation")
	}

	medication, err := srv.medications.FindByID(ctx, input.MedicationID)
	if err != nil {
		if errors.Is(err, repository.ErrMedicationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "medication not found")
		}

		return nil, errors.Wrap(err, "find medication")
	}

	pharmacy, err := srv.pharmacies.FindByID(ctx, input.PharmacyID)
	if err != nil {
		if errors.Is(err, repository.ErrPharmacyNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "pharmacy not found")
		}

		return nil, errors.Wrap(err, "find pharmacy")
	}

	offer, ok := findOffer(medication, pharmacy.ID)
	if !ok || !offer.InStock {
		return nil, errors.Wrap(domainerrors.ErrOutOfStock, "no stocked offer at pharmacy")
	}

	reservation := &entity.Reservation{
		ID:              "RES-" + uuid.NewString(),
		UserID:          userID,
		MedicationID:    medication.ID,
		MedicationName:  medication.Name,
		PharmacyID:      pharmacy.ID,
		PharmacyName:    pharmacy.Name,
		Quantity:        input.Quantity,
		UnitPriceCents:  offer.PriceCents,
		TotalCents:      offer.PriceCents * int64(input.Quantity),
		PickupDate:      input.PickupDate,
		PickupTime:      input.PickupTime,
		PrescriptionRef: input.PrescriptionRef,
		Status:          entity.ReservationPending,
		CreatedAt:       timeNow(),
	}

	if err := srv.reservations.Create(ctx, reservation); err != nil {
		return nil, errors.Wrap(err, "create reservation")
	}

	srv.logger.Info("reservation created",
		"reservationID", reservation.ID,
		"pharmacy", pharmacy.Name,
	)
	srv.notifier.Notify(ctx, "Réservation confirmée",
		medication.Name+" réservé à "+pharmacy.Name)

	return reservation, nil
}

// Get returns one reservation.
func (srv *reservationService) Get(ctx context.Context, id string) (*entity.Reservation, error) {
	reservation, err := srv.reservations.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReservationNotFound, "find reservation")
		}

		return nil, errors.Wrap(err, "find reservation")
	}

	return reservation, nil
}

// ListByUser returns the user's reservations, newest first.
func (srv *reservationService) ListByUser(ctx context.Context, userID string) ([]*entity.Reservation, error) {
	reservations, err := srv.reservations.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "list reservations")
	}

	return reservations, nil
}

// PickupQR renders the QR code presented at the counter.
func (srv *reservationService) PickupQR(ctx context.Context, id string) ([]byte, error) {
	reservation, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodes.GeneratePickupQR(reservation.ID)
	if err != nil {
		return nil, errors.Wrap(err, "generate pickup QR")
	}

	return png, nil
}

// MarkReady moves a pending reservation to ready.
func (srv *reservationService) MarkReady(ctx context.Context, id string) (*entity.Reservation, error) {
	return srv.transition(ctx, id, entity.ReservationReady, entity.ReservationPending)
}

// MarkCollected moves a ready reservation to collected.
func (srv *reservationService) MarkCollected(ctx context.Context, id string) (*entity.Reservation, error) {
	return srv.transition(ctx, id, entity.ReservationCollected, entity.ReservationReady)
}

// Cancel cancels a pending or ready reservation.
func (srv *reservationService) Cancel(ctx context.Context, id string) (*entity.Reservation, error) {
	reservation, err := srv.transition(ctx, id, entity.ReservationCancelled,
		entity.ReservationPending, entity.ReservationReady)
	if err != nil {
		return nil, err
	}

	srv.notifier.Notify(ctx, "Réservation annulée",
		reservation.MedicationName+" ne sera pas préparé")

	return reservation, nil
}

// transition moves a reservation to the target status when its current
// status is one of the allowed origins.
func (srv *reservationService) transition(ctx context.Context, id string, target entity.ReservationStatus, from ...entity.ReservationStatus) (*entity.Reservation, error) {
	reservation, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, status := range from {
		if reservation.Status == status {
			allowed = true

			break
		}
	}
	if !allowed {
		return nil, errors.Wrap(domainerrors.ErrReservationClosed, "transition reservation")
	}

	reservation.Status = target
	if err := srv.reservations.Update(ctx, reservation); err != nil {
		return nil, errors.Wrap(err, "update reservation")
	}

	return reservation, nil
}

func findOffer(medication *entity.Medication, pharmacyID string) (entity.MedicationOffer, bool) {
	for _, offer := range medication.Offers {
		if offer.PharmacyID == pharmacyID {
			return offer, true
		}
	}

	return entity.MedicationOffer{}, false
}
