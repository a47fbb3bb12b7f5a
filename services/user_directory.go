//go:generate go run go.uber.org/mock/mockgen -source=user_directory.go -destination=../mocks/mock_user_directory.go -package=mocks
package services

import (
	"chat-rpc/domain/chat"
	"chat-rpc/errors"
	"chat-rpc/repositories"
	"fmt"
)

type IUserService interface {
	RegisterUser(username string) error
	IsRegistered(username string) (bool, error)
	CurrentRoom(username string) (string, error)
	SetCurrentRoom(username, room string) error
}

// UserDirectory is a name-uniqueness ledger. Usernames are not validated
// beyond the reserved system identity.
type UserDirectory struct {
	userRepository repositories.IUserRepository
}

func NewUserDirectory(repo repositories.IUserRepository) *UserDirectory {
	return &UserDirectory{userRepository: repo}
}

func (d *UserDirectory) RegisterUser(username string) error {
	if username == chat.SystemAuthor {
		return fmt.Errorf("%w: %q", errors.ErrReservedName, username)
	}
	return d.userRepository.CreateUser(username) // ErrDuplicateUser if taken
}

func (d *UserDirectory) IsRegistered(username string) (bool, error) {
	_, ok, err := d.userRepository.GetUser(username)
	return ok, err
}

// CurrentRoom returns an empty string for a user in no room, or unknown.
func (d *UserDirectory) CurrentRoom(username string) (string, error) {
	user, _, err := d.userRepository.GetUser(username)
	if err != nil {
		return "", err
	}
	return user.CurrentRoom, nil
}

func (d *UserDirectory) SetCurrentRoom(username, room string) error {
	return d.userRepository.SetCurrentRoom(username, room)
}
