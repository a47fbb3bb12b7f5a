package server

import (
	pb "chat-rpc/api/chat"
	"chat-rpc/domain/chat"
	"chat-rpc/errors"
	"chat-rpc/services"
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

type ChatServer struct {
	pb.UnimplementedChatServiceServer
	chatService services.IChatService
	log         *slog.Logger
}

func NewChatServer(log *slog.Logger, chatService services.IChatService) *ChatServer {
	return &ChatServer{chatService: chatService, log: log}
}

func (s *ChatServer) RegisterUser(_ context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {
	message, err := s.chatService.RegisterUser(req.Username)
	if err != nil {
		return nil, s.fail("RegisterUser", err)
	}
	return &pb.RegisterUserResponse{Message: message}, nil
}

// CreateRoom answers an existing room with Status=false, never with an error.
func (s *ChatServer) CreateRoom(_ context.Context, req *pb.CreateRoomRequest) (*pb.CreateRoomResponse, error) {
	created, message := s.chatService.CreateRoom(req.Room)
	return &pb.CreateRoomResponse{Status: created, Msg: message}, nil
}

func (s *ChatServer) JoinRoom(_ context.Context, req *pb.JoinRoomRequest) (*pb.JoinRoomResponse, error) {
	result, err := s.chatService.JoinRoom(req.Username, req.Room)
	if err != nil {
		return nil, s.fail("JoinRoom", err)
	}
	return &pb.JoinRoomResponse{
		Messages: lo.Ternary(result.Rendered == nil, []string{}, result.Rendered),
		History:  toMessages(result.History),
	}, nil
}

func (s *ChatServer) SendMessage(_ context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	message, err := s.chatService.SendMessage(chat.SendMessageCommand{
		Username:    req.Username,
		Room:        req.Room,
		Content:     req.Content,
		Destination: req.Destination,
	})
	if err != nil {
		return nil, s.fail("SendMessage", err)
	}
	return &pb.SendMessageResponse{Message: message}, nil
}

func (s *ChatServer) LeaveRoom(_ context.Context, req *pb.LeaveRoomRequest) (*pb.LeaveRoomResponse, error) {
	message, err := s.chatService.LeaveRoom(req.Username, req.Room)
	if err != nil {
		return nil, s.fail("LeaveRoom", err)
	}
	return &pb.LeaveRoomResponse{Message: message}, nil
}

func (s *ChatServer) ReceiveMessages(_ context.Context, req *pb.ReceiveMessagesRequest) (*pb.ReceiveMessagesResponse, error) {
	messages, err := s.chatService.ReceiveMessages(chat.ReceiveMessagesCommand{
		Username: req.Username,
		Room:     req.Room,
		AfterSeq: req.AfterSeq,
	})
	if err != nil {
		return nil, s.fail("ReceiveMessages", err)
	}
	return &pb.ReceiveMessagesResponse{Messages: toMessages(messages)}, nil
}

func (s *ChatServer) ListRooms(_ context.Context, _ *pb.ListRoomsRequest) (*pb.ListRoomsResponse, error) {
	rooms, ok := s.chatService.ListRooms()
	return &pb.ListRoomsResponse{Rooms: rooms, Available: ok}, nil
}

func (s *ChatServer) ListUsers(_ context.Context, req *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {
	users, err := s.chatService.ListUsers(req.Room)
	if err != nil {
		return nil, s.fail("ListUsers", err)
	}
	return &pb.ListUsersResponse{Users: users}, nil
}

// fail logs a failed call and maps its domain error to a status.
func (s *ChatServer) fail(op string, err error) error {
	s.log.Warn("Chat call failed", "op", op, "error", err)
	return errors.MapToGRPCError(err)
}

func toMessages(messages []chat.Message) []*pb.Message {
	return lo.Map(messages, func(item chat.Message, _ int) *pb.Message {
		return &pb.Message{
			Seq:         item.Seq,
			ID:          item.ID.String(),
			Kind:        string(item.Kind),
			Origin:      item.Origin,
			Destination: item.Destination,
			Content:     item.Content,
			Timestamp:   item.Timestamp(),
			CreatedAt:   item.CreatedAt.Format(time.RFC3339Nano),
		}
	})
}
