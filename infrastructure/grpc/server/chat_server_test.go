package server

import (
	"bytes"
	pb "chat-rpc/api/chat"
	"chat-rpc/domain/chat"
	"chat-rpc/errors"
	"chat-rpc/mocks"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestChatServer_JoinRoom(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIChatService(ctrl)
	server := NewChatServer(logs.GetLoggerFromLevel(slog.LevelError), service)
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	notice := chat.JoinedNotice("lobby", "bob", at)
	notice.Seq = 7

	service.EXPECT().JoinRoom("bob", "lobby").Return(chat.JoinResult{
		History:  []chat.Message{notice},
		Rendered: []string{notice.Render()},
	}, nil)

	resp, err := server.JoinRoom(context.Background(), &pb.JoinRoomRequest{Username: "bob", Room: "lobby"})

	req.NoError(err)
	req.Equal([]string{"[2024-05-01 10:00:00] System -> All: bob joined the room"}, resp.Messages)
	req.Len(resp.History, 1)
	req.Equal(uint64(7), resp.History[0].Seq)
	req.Equal("broadcast", resp.History[0].Kind)
	req.Equal("2024-05-01 10:00:00", resp.History[0].Timestamp)
	req.Equal(notice.ID.String(), resp.History[0].ID)
}

func TestChatServer_ErrorCodes(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIChatService(ctrl)
	server := NewChatServer(logs.GetLoggerFromLevel(slog.LevelError), service)
	ctx := context.Background()

	service.EXPECT().RegisterUser("alice").Return("", fmt.Errorf("%w: %q", errors.ErrDuplicateUser, "alice"))
	service.EXPECT().SendMessage(gomock.Any()).Return("", fmt.Errorf("%w: %q in %q", errors.ErrNotAMember, "bob", "lobby"))
	service.EXPECT().ListUsers("nowhere").Return(nil, fmt.Errorf("%w: %q", errors.ErrRoomNotFound, "nowhere"))

	_, err := server.RegisterUser(ctx, &pb.RegisterUserRequest{Username: "alice"})
	req.Equal(codes.AlreadyExists, status.Code(err))

	_, err = server.SendMessage(ctx, &pb.SendMessageRequest{Username: "bob", Room: "lobby", Content: "hi"})
	req.Equal(codes.FailedPrecondition, status.Code(err))

	_, err = server.ListUsers(ctx, &pb.ListUsersRequest{Room: "nowhere"})
	req.Equal(codes.NotFound, status.Code(err))
}

func TestChatServer_ReceiveMessages_PassesCursor(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIChatService(ctrl)
	server := NewChatServer(logs.GetLoggerFromLevel(slog.LevelError), service)

	service.EXPECT().
		ReceiveMessages(chat.ReceiveMessagesCommand{Username: "bob", Room: "lobby", AfterSeq: 4}).
		Return([]chat.Message{}, nil)

	resp, err := server.ReceiveMessages(context.Background(), &pb.ReceiveMessagesRequest{Username: "bob", Room: "lobby", AfterSeq: 4})

	req.NoError(err)
	req.Empty(resp.Messages)
}

func TestChatServer_CreateRoomAndListRooms(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIChatService(ctrl)
	server := NewChatServer(logs.GetLoggerFromLevel(slog.LevelError), service)
	ctx := context.Background()

	service.EXPECT().CreateRoom("lobby").Return(false, "room lobby already exists")
	service.EXPECT().ListRooms().Return(nil, false)

	created, err := server.CreateRoom(ctx, &pb.CreateRoomRequest{Room: "lobby"})
	req.NoError(err)
	req.False(created.Status)
	req.Equal("room lobby already exists", created.Msg)

	rooms, err := server.ListRooms(ctx, &pb.ListRoomsRequest{})
	req.NoError(err)
	req.False(rooms.Available)
}

func TestChatServer_LogsFailedCalls(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIChatService(ctrl)
	var buf bytes.Buffer
	server := NewChatServer(slog.New(slog.NewTextHandler(&buf, nil)), service)

	// Given a join refused by the broker
	service.EXPECT().JoinRoom("ghost", "lobby").Return(chat.JoinResult{}, fmt.Errorf("%w: %q", errors.ErrUserNotRegistered, "ghost"))

	// When the call fails
	_, err := server.JoinRoom(context.Background(), &pb.JoinRoomRequest{Username: "ghost", Room: "lobby"})

	// Then the failure is logged once with its operation before being mapped
	req.Equal(codes.FailedPrecondition, status.Code(err))
	output := buf.String()
	req.Equal(1, strings.Count(output, "Chat call failed"))
	req.Contains(output, "op=JoinRoom")
	req.Contains(output, errors.ErrUserNotRegistered.Error())
}
