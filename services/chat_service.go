//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"chat-rpc/contract"
	"chat-rpc/domain/chat"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

// DefaultHistoryLimit is how many messages a joining user gets back.
const DefaultHistoryLimit = 50

type IChatService interface {
	RegisterUser(username string) (string, error)
	CreateRoom(room string) (bool, string)
	JoinRoom(username, room string) (chat.JoinResult, error)
	LeaveRoom(username, room string) (string, error)
	SendMessage(cmd chat.SendMessageCommand) (string, error)
	ReceiveMessages(cmd chat.ReceiveMessagesCommand) ([]chat.Message, error)
	ListRooms() ([]string, bool)
	ListUsers(room string) ([]string, error)
}

// ChatService is the message broker: it implements send/receive semantics
// over the room manager's logs. Delivery is pull-based and at-least-once:
// nothing is marked as delivered, every poll rescans the log.
type ChatService struct {
	log          *slog.Logger
	users        IUserService
	rooms        contract.IRoomManager
	historyLimit int
	now          func() time.Time
}

func NewChatService(log *slog.Logger, users IUserService, rooms contract.IRoomManager, historyLimit int) *ChatService {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &ChatService{
		log:          log,
		users:        users,
		rooms:        rooms,
		historyLimit: historyLimit,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *ChatService) RegisterUser(username string) (string, error) {
	if err := s.users.RegisterUser(username); err != nil {
		return "", err
	}
	s.log.Info("User registered", "user", username)
	return fmt.Sprintf("user %s registered", username), nil
}

func (s *ChatService) CreateRoom(room string) (bool, string) {
	if !s.rooms.CreateRoom(room) {
		return false, fmt.Sprintf("room %s already exists", room)
	}
	return true, fmt.Sprintf("room %s created", room)
}

// JoinRoom returns the newest messages that are broadcast or addressed to
// the joining user, the join notice included.
func (s *ChatService) JoinRoom(username, room string) (chat.JoinResult, error) {
	if err := s.rooms.Join(username, room); err != nil {
		return chat.JoinResult{}, err
	}
	history, err := s.rooms.History(room)
	if err != nil {
		return chat.JoinResult{}, err
	}
	addressed := lo.Filter(history, func(m chat.Message, _ int) bool {
		return m.AddressedTo(username)
	})
	if len(addressed) > s.historyLimit {
		addressed = addressed[len(addressed)-s.historyLimit:]
	}
	return chat.JoinResult{
		History:  addressed,
		Rendered: lo.Map(addressed, func(m chat.Message, _ int) string { return m.Render() }),
	}, nil
}

func (s *ChatService) LeaveRoom(username, room string) (string, error) {
	if err := s.rooms.Leave(username, room); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s left %s", username, room), nil
}

// SendMessage appends a broadcast, or a unicast when a destination is set.
// The "!exit" content is kept as an alias of LeaveRoom.
func (s *ChatService) SendMessage(cmd chat.SendMessageCommand) (string, error) {
	if cmd.IsExit() {
		return s.LeaveRoom(cmd.Username, cmd.Room)
	}
	message := chat.NewMessage(cmd.Room, cmd.Username, cmd.Destination, cmd.Content, s.now())
	stored, err := s.rooms.Post(cmd.Room, message)
	if err != nil {
		return "", err
	}
	s.log.Debug("Message appended", "room", cmd.Room, "seq", stored.Seq, "kind", stored.Kind)
	return "message sent", nil
}

// ReceiveMessages returns, in log order, what is relevant to the user and
// not authored by them. It never consumes anything.
func (s *ChatService) ReceiveMessages(cmd chat.ReceiveMessagesCommand) ([]chat.Message, error) {
	messages, err := s.rooms.Messages(cmd.Username, cmd.Room, cmd.AfterSeq)
	if err != nil {
		return nil, err
	}
	return lo.Filter(messages, func(m chat.Message, _ int) bool {
		return m.VisibleTo(cmd.Username)
	}), nil
}

func (s *ChatService) ListRooms() ([]string, bool) {
	return s.rooms.ListRooms()
}

func (s *ChatService) ListUsers(room string) ([]string, error) {
	return s.rooms.ListUsers(room)
}
