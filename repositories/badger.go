package repositories

import (
	goerrors "errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// OpenInMemory opens the process-wide store. Nothing is written to disk:
// registrations, users and room logs are discarded on exit.
func OpenInMemory(log *slog.Logger) (*badger.DB, error) {
	options := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil)
	if log != nil {
		options = options.WithLogger(badgerLogger{log: log})
	}
	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("in-memory badger opening failed: %w", err)
	}
	return db, nil
}

// badgerLogger routes badger's printf style output to slog, warnings and up only.
type badgerLogger struct {
	log *slog.Logger
}

func (l badgerLogger) Errorf(format string, args ...any) {
	l.log.Error(fmt.Sprintf(format, args...), "component", "badger")
}

func (l badgerLogger) Warningf(format string, args ...any) {
	l.log.Warn(fmt.Sprintf(format, args...), "component", "badger")
}

func (l badgerLogger) Infof(string, ...any) {}

func (l badgerLogger) Debugf(string, ...any) {}

// update runs fn in a read-write transaction, replaying it when a concurrent
// transaction committed on the same keys first.
func update(db *badger.DB, fn func(txn *badger.Txn) error) error {
	for {
		err := db.Update(fn)
		if !goerrors.Is(err, badger.ErrConflict) {
			return err
		}
	}
}
