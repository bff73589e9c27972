package badgerstore

import (
	"context"
	"encoding/json"
	"time"

	"medifinder/internal/domain/entity"
	"medifinder/internal/domain/repository"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
)

// SessionVault implements repository.SessionVault with two Badger keys:
// an auth token entry carrying a TTL, and a JSON user record entry. Badger
// hides expired entries on read, which gives the token slot its "absent
// after expiry" behavior for free.
type SessionVault struct {
	db *badger.DB
}

// NewSessionVault creates a Badger-backed session vault
func NewSessionVault(db *badger.DB) repository.SessionVault {
	return &SessionVault{db: db}
}

// StoreToken writes the auth token slot with the given time-to-live
func (v *SessionVault) StoreToken(_ context.Context, token string, ttl time.Duration) error {
	err := v.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(keySessionToken), []byte(token)).WithTTL(ttl)

		return txn.SetEntry(entry)
	})
	if err != nil {
		return errors.Wrap(err, "store token")
	}

	return nil
}

// LoadToken reads the auth token slot
func (v *SessionVault) LoadToken(_ context.Context) (string, error) {
	var token string
	err := v.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keySessionToken))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			token = string(val)

			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", repository.ErrTokenNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "load token")
	}

	return token, nil
}

// StoreRecord serializes and writes the user record slot
func (v *SessionVault) StoreRecord(_ context.Context, session *entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "marshal session record")
	}

	err = v.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keySessionRecord), data)
	})
	if err != nil {
		return errors.Wrap(err, "store session record")
	}

	return nil
}

// LoadRecord reads and parses the user record slot
func (v *SessionVault) LoadRecord(_ context.Context) (*entity.Session, error) {
	var data []byte
	err := v.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keySessionRecord))
		if err != nil {
			return err
		}

		data, err = item.ValueCopy(nil)

		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, repository.ErrRecordNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "load session record")
	}

	session := &entity.Session{}
	if err := json.Unmarshal(data, session); err != nil {
		return nil, repository.ErrRecordCorrupted
	}

	return session, nil
}

// Clear empties both slots
func (v *SessionVault) Clear(_ context.Context) error {
	err := v.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(keySessionToken)); err != nil {
			return err
		}

		return txn.Delete([]byte(keySessionRecord))
	})
	if err != nil {
		return errors.Wrap(err, "clear session vault")
	}

	return nil
}
