package badgerstore

import (
	"context"
	"encoding/json"
	"sort"

	"medifinder/internal/domain/entity"
	"medifinder/internal/domain/repository"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
)

// ReservationRepository implements repository.ReservationRepository, one
// Badger key per reservation under a shared prefix.
type ReservationRepository struct {
	db *badger.DB
}

// NewReservationRepository creates a Badger-backed reservation repository
func NewReservationRepository(db *badger.DB) repository.ReservationRepository {
	return &ReservationRepository{db: db}
}

func reservationKey(id string) []byte {
	return []byte(prefixReservation + id)
}

// Create persists a new reservation
func (r *ReservationRepository) Create(_ context.Context, reservation *entity.Reservation) error {
	data, err := json.Marshal(reservation)
	if err != nil {
		return errors.Wrap(err, "marshal reservation")
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(reservationKey(reservation.ID), data)
	})
	if err != nil {
		return errors.Wrap(err, "create reservation")
	}

	return nil
}

// FindByID retrieves a reservation by its identifier
func (r *ReservationRepository) FindByID(_ context.Context, id string) (*entity.Reservation, error) {
	var data []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(reservationKey(id))
		if err != nil {
			return err
		}

		data, err = item.ValueCopy(nil)

		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, repository.ErrReservationNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find reservation")
	}

	reservation := &entity.Reservation{}
	if err := json.Unmarshal(data, reservation); err != nil {
		return nil, errors.Wrap(err, "unmarshal reservation")
	}

	return reservation, nil
}

// FindByUserID retrieves all reservations belonging to a user, newest first
func (r *ReservationRepository) FindByUserID(_ context.Context, userID string) ([]*entity.Reservation, error) {
	reservations := []*entity.Reservation{}
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefixReservation)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				reservation := &entity.Reservation{}
				if err := json.Unmarshal(val, reservation); err != nil {
					return errors.Wrap(err, "unmarshal reservation")
				}
				if reservation.UserID == userID {
					reservations = append(reservations, reservation)
				}

				return nil
			})
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "list reservations")
	}

	sort.Slice(reservations, func(i, j int) bool {
		return reservations[i].CreatedAt.After(reservations[j].CreatedAt)
	})

	return reservations, nil
}

// Update replaces an existing reservation record
func (r *ReservationRepository) Update(_ context.Context, reservation *entity.Reservation) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(reservationKey(reservation.ID)); err != nil {
			return err
		}

		data, err := json.Marshal(reservation)
		if err != nil {
			return errors.Wrap(err, "marshal reservation")
		}

		return txn.Set(reservationKey(reservation.ID), data)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return repository.ErrReservationNotFound
	}
	if err != nil {
		return errors.Wrap(err, "update reservation")
	}

	return nil
}
