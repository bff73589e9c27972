package repository

import (
	"context"
	"errors"

	"medifinder/internal/domain/entity"
)

// ErrPharmacistNotFound is returned when a pharmacist id has no match.
var ErrPharmacistNotFound = errors.New("pharmacist not found")

// PharmacistRepository provides read access to the telehealth practitioner
// directory.
type PharmacistRepository interface {
	// FindByID retrieves a single pharmacist by their identifier.
	FindByID(ctx context.Context, id string) (*entity.Pharmacist, error)

	// List returns all pharmacists.
	List(ctx context.Context) ([]*entity.Pharmacist, error)
}
