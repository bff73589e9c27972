package usecase

import (
	"context"

	"medifinder/internal/domain/entity"
)

// CreateReservationInput carries the fields required to reserve a pickup.
type CreateReservationInput struct {
	MedicationID    string `json:"medicationId" validate:"required"`
	PharmacyID      string `json:"pharmacyId" validate:"required"`
	Quantity        int    `json:"quantity" validate:"required,min=1"`
	PickupDate      string `json:"pickupDate" validate:"required"`
	PickupTime      string `json:"pickupTime" validate:"required"`
	PrescriptionRef string `json:"prescriptionRef"`
}

// ReservationUsecase manages medication pickup reservations and their
// counter-side lifecycle.
type ReservationUsecase interface {
	// Create reserves a medication for pickup at a pharmacy. The medication
	// must be stocked by that pharmacy.
	Create(ctx context.Context, userID string, input *CreateReservationInput) (*entity.Reservation, error)

	// Get returns one reservation.
	Get(ctx context.Context, id string) (*entity.Reservation, error)

	// ListByUser returns the user's reservations, newest first.
	ListByUser(ctx context.Context, userID string) ([]*entity.Reservation, error)

	// PickupQR renders the QR code presented at the counter.
	PickupQR(ctx context.Context, id string) ([]byte, error)

	// MarkReady moves a pending reservation to ready.
	MarkReady(ctx context.Context, id string) (*entity.Reservation, error)

	// MarkCollected moves a ready reservation to collected.
	MarkCollected(ctx context.Context, id string) (*entity.Reservation, error)

	// Cancel cancels a pending or ready reservation. Collected or already
	// cancelled reservations cannot be cancelled.
	Cancel(ctx context.Context, id string) (*entity.Reservation, error)
}
