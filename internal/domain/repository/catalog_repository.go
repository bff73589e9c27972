package repository

import (
	"context"
	"errors"

	"medifinder/internal/domain/entity"
)

// Domain-specific errors for catalog lookups.
var (
	// ErrPharmacyNotFound is returned when a pharmacy id has no match.
	ErrPharmacyNotFound = errors.New("pharmacy not found")
	// ErrMedicationNotFound is returned when a medication id has no match.
	ErrMedicationNotFound = errors.New("medication not found")
)

// PharmacyRepository provides read access to the pharmacy catalog.
type PharmacyRepository interface {
	// FindByID retrieves a single pharmacy by its identifier.
	FindByID(ctx context.Context, id string) (*entity.Pharmacy, error)

	// List returns all pharmacies.
	List(ctx context.Context) ([]*entity.Pharmacy, error)
}

// MedicationRepository provides read access to the medication catalog.
type MedicationRepository interface {
	// FindByID retrieves a single medication by its identifier.
	FindByID(ctx context.Context, id string) (*entity.Medication, error)

	// List returns all medications.
	List(ctx context.Context) ([]*entity.Medication, error)
}
