package services

import (
	"chat-rpc/domain/chat"
	"chat-rpc/errors"
	"chat-rpc/mocks"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserDirectory_RegisterUser(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIUserRepository(ctrl)
	directory := NewUserDirectory(repository)

	gomock.InOrder(
		repository.EXPECT().CreateUser("alice").Return(nil),
		repository.EXPECT().CreateUser("alice").Return(fmt.Errorf("%w: %q", errors.ErrDuplicateUser, "alice")),
	)

	req.NoError(directory.RegisterUser("alice"))
	req.ErrorIs(directory.RegisterUser("alice"), errors.ErrDuplicateUser)
}

func TestUserDirectory_SystemIsReserved(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	directory := NewUserDirectory(mocks.NewMockIUserRepository(ctrl))

	req.ErrorIs(directory.RegisterUser(chat.SystemAuthor), errors.ErrReservedName)
}

func TestUserDirectory_CurrentRoom(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIUserRepository(ctrl)
	directory := NewUserDirectory(repository)

	repository.EXPECT().GetUser("bob").Return(chat.User{Username: "bob", CurrentRoom: "lobby"}, true, nil).Times(2)
	repository.EXPECT().GetUser("ghost").Return(chat.User{}, false, nil).Times(2)

	registered, err := directory.IsRegistered("bob")
	req.NoError(err)
	req.True(registered)
	room, err := directory.CurrentRoom("bob")
	req.NoError(err)
	req.Equal("lobby", room)

	registered, err = directory.IsRegistered("ghost")
	req.NoError(err)
	req.False(registered)
	room, err = directory.CurrentRoom("ghost")
	req.NoError(err)
	req.Empty(room)
}
