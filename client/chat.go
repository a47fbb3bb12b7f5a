//go:generate go run go.uber.org/mock/mockgen -source=chat.go -destination=../mocks/mock_chat_client.go -package=mocks
package client

import (
	pb "chat-rpc/api/chat"
	"chat-rpc/domain/chat"
	"chat-rpc/errors"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// MessageSource is the read side a poller needs.
type MessageSource interface {
	ReceiveMessages(ctx context.Context, username, room string, afterSeq uint64) ([]chat.Message, error)
	ListUsers(ctx context.Context, room string) ([]string, error)
}

// ChatClient calls the broker, resolving every procedure through the binder
// before each call. Domain errors are returned as the errors package
// sentinels so callers can use errors.Is.
type ChatClient struct {
	resolver *Resolver
}

func NewChatClient(resolver *Resolver) *ChatClient {
	return &ChatClient{resolver: resolver}
}

func (c *ChatClient) service(ctx context.Context, procedure string) (pb.ChatServiceClient, error) {
	conn, err := c.resolver.Resolve(ctx, procedure)
	if err != nil {
		return nil, err
	}
	return pb.NewChatServiceClient(conn), nil
}

func (c *ChatClient) RegisterUser(ctx context.Context, username string) (string, error) {
	svc, err := c.service(ctx, pb.ProcRegisterUser)
	if err != nil {
		return "", err
	}
	resp, err := svc.RegisterUser(ctx, &pb.RegisterUserRequest{Username: username})
	if err != nil {
		return "", fmt.Errorf("client.RegisterUser: %w", errors.FromGRPCError(err))
	}
	return resp.Message, nil
}

// CreateRoom returns false with the broker's explanation when the room exists.
func (c *ChatClient) CreateRoom(ctx context.Context, room string) (bool, string, error) {
	svc, err := c.service(ctx, pb.ProcCreateRoom)
	if err != nil {
		return false, "", err
	}
	resp, err := svc.CreateRoom(ctx, &pb.CreateRoomRequest{Room: room})
	if err != nil {
		return false, "", fmt.Errorf("client.CreateRoom: %w", errors.FromGRPCError(err))
	}
	return resp.Status, resp.Msg, nil
}

func (c *ChatClient) JoinRoom(ctx context.Context, username, room string) (chat.JoinResult, error) {
	svc, err := c.service(ctx, pb.ProcJoinRoom)
	if err != nil {
		return chat.JoinResult{}, err
	}
	resp, err := svc.JoinRoom(ctx, &pb.JoinRoomRequest{Username: username, Room: room})
	if err != nil {
		return chat.JoinResult{}, fmt.Errorf("client.JoinRoom: %w", errors.FromGRPCError(err))
	}
	return chat.JoinResult{
		History:  fromMessages(room, resp.History),
		Rendered: resp.Messages,
	}, nil
}

// SendMessage sends a broadcast, or a unicast when destination is not empty.
func (c *ChatClient) SendMessage(ctx context.Context, username, room, content, destination string) (string, error) {
	svc, err := c.service(ctx, pb.ProcSendMessage)
	if err != nil {
		return "", err
	}
	resp, err := svc.SendMessage(ctx, &pb.SendMessageRequest{
		Username:    username,
		Room:        room,
		Content:     content,
		Destination: destination,
	})
	if err != nil {
		return "", fmt.Errorf("client.SendMessage: %w", errors.FromGRPCError(err))
	}
	return resp.Message, nil
}

func (c *ChatClient) LeaveRoom(ctx context.Context, username, room string) (string, error) {
	svc, err := c.service(ctx, pb.ProcLeaveRoom)
	if err != nil {
		return "", err
	}
	resp, err := svc.LeaveRoom(ctx, &pb.LeaveRoomRequest{Username: username, Room: room})
	if err != nil {
		return "", fmt.Errorf("client.LeaveRoom: %w", errors.FromGRPCError(err))
	}
	return resp.Message, nil
}

func (c *ChatClient) ReceiveMessages(ctx context.Context, username, room string, afterSeq uint64) ([]chat.Message, error) {
	svc, err := c.service(ctx, pb.ProcReceiveMessages)
	if err != nil {
		return nil, err
	}
	resp, err := svc.ReceiveMessages(ctx, &pb.ReceiveMessagesRequest{
		Username: username,
		Room:     room,
		AfterSeq: afterSeq,
	})
	if err != nil {
		return nil, fmt.Errorf("client.ReceiveMessages: %w", errors.FromGRPCError(err))
	}
	return fromMessages(room, resp.Messages), nil
}

// ListRooms returns false when the broker has no room at all.
func (c *ChatClient) ListRooms(ctx context.Context) ([]string, bool, error) {
	svc, err := c.service(ctx, pb.ProcListRooms)
	if err != nil {
		return nil, false, err
	}
	resp, err := svc.ListRooms(ctx, &pb.ListRoomsRequest{})
	if err != nil {
		return nil, false, fmt.Errorf("client.ListRooms: %w", errors.FromGRPCError(err))
	}
	return resp.Rooms, resp.Available, nil
}

func (c *ChatClient) ListUsers(ctx context.Context, room string) ([]string, error) {
	svc, err := c.service(ctx, pb.ProcListUsers)
	if err != nil {
		return nil, err
	}
	resp, err := svc.ListUsers(ctx, &pb.ListUsersRequest{Room: room})
	if err != nil {
		return nil, fmt.Errorf("client.ListUsers: %w", errors.FromGRPCError(err))
	}
	return resp.Users, nil
}

func fromMessages(room string, messages []*pb.Message) []chat.Message {
	return lo.FilterMap(messages, func(item *pb.Message, _ int) (chat.Message, bool) {
		if item == nil {
			return chat.Message{}, false
		}
		id, _ := uuid.Parse(item.ID)
		createdAt, err := time.Parse(time.RFC3339Nano, item.CreatedAt)
		if err != nil {
			createdAt, _ = time.Parse(chat.TimestampLayout, item.Timestamp)
		}
		return chat.Message{
			Seq:         item.Seq,
			ID:          id,
			Room:        room,
			Kind:        chat.Kind(item.Kind),
			Origin:      item.Origin,
			Destination: item.Destination,
			Content:     item.Content,
			CreatedAt:   createdAt,
		}, true
	})
}
