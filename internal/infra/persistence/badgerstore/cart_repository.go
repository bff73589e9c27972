package badgerstore

import (
	"context"
	"encoding/json"

	"medifinder/internal/domain/entity"
	"medifinder/internal/domain/repository"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
)

// CartRepository implements repository.CartRepository with a single Badger
// key holding the JSON-encoded line items in insertion order.
type CartRepository struct {
	db *badger.DB
}

// NewCartRepository creates a Badger-backed cart mirror
func NewCartRepository(db *badger.DB) repository.CartRepository {
	return &CartRepository{db: db}
}

// SaveItems replaces the persisted cart with the given line items
func (r *CartRepository) SaveItems(_ context.Context, items []*entity.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return errors.Wrap(err, "marshal cart items")
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyCartItems), data)
	})
	if err != nil {
		return errors.Wrap(err, "save cart items")
	}

	return nil
}

// LoadItems returns the persisted line items in insertion order
func (r *CartRepository) LoadItems(_ context.Context) ([]*entity.CartItem, error) {
	var data []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyCartItems))
		if err != nil {
			return err
		}

		data, err = item.ValueCopy(nil)

		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return []*entity.CartItem{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load cart items")
	}

	items := []*entity.CartItem{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrap(err, "unmarshal cart items")
	}

	return items, nil
}

// Clear removes the persisted cart
func (r *CartRepository) Clear(_ context.Context) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyCartItems))
	})
	if err != nil {
		return errors.Wrap(err, "clear cart items")
	}

	return nil
}
