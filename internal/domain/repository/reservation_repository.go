package repository

import (
	"context"
	"errors"

	"medifinder/internal/domain/entity"
)

// ErrReservationNotFound is returned when a reservation id has no match.
var ErrReservationNotFound = errors.New("reservation not found")

// ReservationRepository persists pickup reservations durably so a reservation
// code remains valid across restarts.
type ReservationRepository interface {
	// Create persists a new reservation.
	Create(ctx context.Context, reservation *entity.Reservation) error

	// FindByID retrieves a reservation by its "RES-..." identifier.
	// Returns ErrReservationNotFound when absent.
	FindByID(ctx context.Context, id string) (*entity.Reservation, error)

	// FindByUserID retrieves all reservations belonging to a user, newest first.
	FindByUserID(ctx context.Context, userID string) ([]*entity.Reservation, error)

	// Update replaces an existing reservation record.
	Update(ctx context.Context, reservation *entity.Reservation) error
}
