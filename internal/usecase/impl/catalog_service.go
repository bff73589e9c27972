package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"medifinder/internal/domain/entity"
	domainerrors "medifinder/internal/domain/errors"
	"medifinder/internal/domain/repository"
	"medifinder/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	pharmacies  repository.PharmacyRepository
	medications repository.MedicationRepository
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	pharmacies repository.PharmacyRepository,
	medications repository.MedicationRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		pharmacies:  pharmacies,
		medications: medications,
		logger:      logger,
	}
}

// SearchMedications matches medications by name or category substring.
func (srv *catalogService) SearchMedications(ctx context.Context, query string) ([]*entity.Medication, error) {
	medications, err := srv.medications.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list medications")
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return medications, nil
	}

	matched := make([]*entity.Medication, 0, len(medications))
	for _, m := range medications {
		if strings.Contains(strings.ToLower(m.Name), needle) ||
			strings.Contains(strings.ToLower(m.Category), needle) {
			matched = append(matched, m)
		}
	}

	return matched, nil
}

// GetMedication returns one medication with its per-pharmacy offers.
func (srv *catalogService) GetMedication(ctx context.Context, id string) (*entity.Medication, error) {
	medication, err := srv.medications.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMedicationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "medication not found")
		}

		return nil, errors.Wrap(err, "find medication")
	}

	return medication, nil
}

// SearchPharmacies matches pharmacies by name or address substring.
func (srv *catalogService) SearchPharmacies(ctx context.Context, query string) ([]*entity.Pharmacy, error) {
	pharmacies, err := srv.pharmacies.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list pharmacies")
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return pharmacies, nil
	}

	matched := make([]*entity.Pharmacy, 0, len(pharmacies))
	for _, p := range pharmacies {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Address), needle) {
			matched = append(matched, p)
		}
	}

	return matched, nil
}

// GetPharmacy returns one pharmacy.
func (srv *catalogService) GetPharmacy(ctx context.Context, id string) (*entity.Pharmacy, error) {
	pharmacy, err := srv.pharmacies.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPharmacyNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "pharmacy not found")
		}

		return nil, errors.Wrap(err, "find pharmacy")
	}

	return pharmacy, nil
}

// NearbyPharmacies returns up to limit pharmacies ordered by great-circle
// distance from the given point.
func (srv *catalogService) NearbyPharmacies(ctx context.Context, lat, lon float64, limit int) ([]*entity.PharmacyDistance, error) {
	pharmacies, err := srv.pharmacies.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list pharmacies")
	}

	origin := orb.Point{lon, lat}
	out := make([]*entity.PharmacyDistance, 0, len(pharmacies))
	for _, p := range pharmacies {
		out = append(out, &entity.PharmacyDistance{
			Pharmacy: p,
			Meters:   geo.Distance(origin, orb.Point{p.Longitude, p.Latitude}),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Meters < out[j].Meters
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

// OnDutyPharmacies returns the "pharmacies de garde".
func (srv *catalogService) OnDutyPharmacies(ctx context.Context) ([]*entity.Pharmacy, error) {
	pharmacies, err := srv.pharmacies.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list pharmacies")
	}

	onDuty := make([]*entity.Pharmacy, 0, len(pharmacies))
	for _, p := range pharmacies {
		if p.OnDuty {
			onDuty = append(onDuty, p)
		}
	}

	return onDuty, nil
}
