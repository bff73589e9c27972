// Package badgerstore implements the durable repositories on top of an
// embedded Badger key-value store.
package badgerstore

import (
	"context"
	"log/slog"

	"medifinder/config"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Key layout. Single-process store, no namespacing beyond these prefixes.
const (
	keySessionToken   = "session/token"
	keySessionRecord  = "session/record"
	keyCartItems      = "cart/items"
	prefixReservation = "reservation/"
)

// Params defines the parameters required to open the store
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Lc     fx.Lifecycle
}

// New opens the Badger database and registers its shutdown hook
func New(params Params) (*badger.DB, error) {
	opts := badger.DefaultOptions(params.Config.Storage.Path).
		WithLoggingLevel(badger.ERROR)
	if params.Config.Storage.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open badger store")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("closing badger store")

			return db.Close()
		},
	})

	return db, nil
}
