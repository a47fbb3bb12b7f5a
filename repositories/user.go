//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"chat-rpc/domain/chat"
	"chat-rpc/errors"
	goerrors "errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const userPrefix = "user:"

type IUserRepository interface {
	CreateUser(username string) error
	GetUser(username string) (chat.User, bool, error)
	SetCurrentRoom(username, room string) error
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

// CreateUser persists a user with no current room.
// It returns ErrDuplicateUser if the username is taken.
func (u UserRepository) CreateUser(username string) error {
	data, err := marshalUser(chat.User{Username: username})
	if err != nil {
		return err
	}
	return update(u.db, func(txn *badger.Txn) error {
		key := []byte(userPrefix + username)
		if _, err := txn.Get(key); err == nil {
			return fmt.Errorf("%w: %q", errors.ErrDuplicateUser, username)
		} else if !goerrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Set(key, data)
	})
}

func (u UserRepository) GetUser(username string) (chat.User, bool, error) {
	var user chat.User
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userPrefix + username))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			user, err = unmarshalUser(val)
			return err
		})
	})
	if goerrors.Is(err, badger.ErrKeyNotFound) {
		return chat.User{}, false, nil
	}
	if err != nil {
		return chat.User{}, false, err
	}
	return user, true, nil
}

// SetCurrentRoom updates the user's room, an empty room meaning none.
func (u UserRepository) SetCurrentRoom(username, room string) error {
	data, err := marshalUser(chat.User{Username: username, CurrentRoom: room})
	if err != nil {
		return err
	}
	return update(u.db, func(txn *badger.Txn) error {
		key := []byte(userPrefix + username)
		if _, err := txn.Get(key); goerrors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %q", errors.ErrUserNotRegistered, username)
		} else if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

func marshalUser(user chat.User) ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		"username":     user.Username,
		"current_room": user.CurrentRoom,
	})
	if err != nil {
		return nil, fmt.Errorf("user encoding failed: %w", err)
	}
	return proto.Marshal(s)
}

func unmarshalUser(val []byte) (chat.User, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(val, &s); err != nil {
		return chat.User{}, err
	}
	fields := s.GetFields()
	return chat.User{
		Username:    fields["username"].GetStringValue(),
		CurrentRoom: fields["current_room"].GetStringValue(),
	}, nil
}
