package usecase

import (
	"context"

	"medifinder/internal/domain/entity"
)

// CatalogUsecase provides search and detail reads over the pharmacy and
// medication catalogs.
type CatalogUsecase interface {
	// SearchMedications matches medications by name or category substring.
	// An empty query returns the full catalog.
	SearchMedications(ctx context.Context, query string) ([]*entity.Medication, error)

	// GetMedication returns one medication with its per-pharmacy offers.
	GetMedication(ctx context.Context, id string) (*entity.Medication, error)

	// SearchPharmacies matches pharmacies by name or address substring.
	SearchPharmacies(ctx context.Context, query string) ([]*entity.Pharmacy, error)

	// GetPharmacy returns one pharmacy.
	GetPharmacy(ctx context.Context, id string) (*entity.Pharmacy, error)

	// NearbyPharmacies returns up to limit pharmacies ordered by great-circle
	// distance from the given point.
	NearbyPharmacies(ctx context.Context, lat, lon float64, limit int) ([]*entity.PharmacyDistance, error)

	// OnDutyPharmacies returns the "pharmacies de garde".
	OnDutyPharmacies(ctx context.Context) ([]*entity.Pharmacy, error)
}
