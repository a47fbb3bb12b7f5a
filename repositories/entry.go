//go:generate go run go.uber.org/mock/mockgen -source=entry.go -destination=../mocks/mock_entry_repository.go -package=mocks
package repositories

import (
	"chat-rpc/domain/binder"
	goerrors "errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const entryPrefix = "proc:"

type IEntryRepository interface {
	// CreateEntry stores the entry unless its procedure is already known.
	// It reports false, leaving the stored entry untouched, in that case.
	CreateEntry(entry binder.Entry) (bool, error)
	GetEntry(procedure string) (binder.Entry, bool, error)
}

type EntryRepository struct {
	db *badger.DB
}

func NewEntryRepository(db *badger.DB) IEntryRepository {
	return &EntryRepository{db: db}
}

// CreateEntry is an insert-if-absent inside a single transaction:
// the first writer wins.
func (r EntryRepository) CreateEntry(entry binder.Entry) (bool, error) {
	data, err := marshalEntry(entry)
	if err != nil {
		return false, err
	}

	created := false
	err = update(r.db, func(txn *badger.Txn) error {
		created = false
		key := []byte(entryPrefix + entry.Procedure)
		if _, err := txn.Get(key); err == nil {
			return nil
		} else if !goerrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		created = true
		return txn.Set(key, data)
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func (r EntryRepository) GetEntry(procedure string) (binder.Entry, bool, error) {
	var entry binder.Entry
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(entryPrefix + procedure))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			entry, err = unmarshalEntry(val)
			return err
		})
	})
	if goerrors.Is(err, badger.ErrKeyNotFound) {
		return binder.Entry{}, false, nil
	}
	if err != nil {
		return binder.Entry{}, false, err
	}
	return entry, true, nil
}

func marshalEntry(entry binder.Entry) ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		"procedure": entry.Procedure,
		"address":   entry.Address,
		"port":      entry.Port,
	})
	if err != nil {
		return nil, fmt.Errorf("entry encoding failed: %w", err)
	}
	return proto.Marshal(s)
}

func unmarshalEntry(val []byte) (binder.Entry, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(val, &s); err != nil {
		return binder.Entry{}, err
	}
	fields := s.GetFields()
	return binder.Entry{
		Procedure: fields["procedure"].GetStringValue(),
		Address:   fields["address"].GetStringValue(),
		Port:      int(fields["port"].GetNumberValue()),
	}, nil
}
