// Package runtime owns the live state of the broker: rooms, their members
// and the sequencing of their logs. It holds no transport logic.
package runtime

import (
	"chat-rpc/contract"
	"chat-rpc/domain/chat"
	"chat-rpc/errors"
	"chat-rpc/repositories"
	goerrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/lo"
)

// room guards its member set and its log sequence with its own mutex,
// so appends to one room never wait on another.
type room struct {
	mu      sync.Mutex
	name    string
	members []string
	lastSeq uint64
}

func (r *room) isMember(username string) bool {
	return lo.Contains(r.members, username)
}

type RoomManager struct {
	mu       sync.RWMutex
	log      *slog.Logger
	rooms    map[string]*room
	order    []string // creation order
	moving   map[string]*sync.Mutex
	users    contract.IUserDirectory
	messages repositories.IMessageRepository
	now      func() time.Time
}

func NewRoomManager(log *slog.Logger, users contract.IUserDirectory,
	messages repositories.IMessageRepository) *RoomManager {
	return &RoomManager{
		log:      log,
		rooms:    make(map[string]*room),
		moving:   make(map[string]*sync.Mutex),
		users:    users,
		messages: messages,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateRoom returns false when the room already exists, leaving it untouched.
func (m *RoomManager) CreateRoom(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[name]; ok {
		m.log.Info(fmt.Sprintf("Room %q already exists", name))
		return false
	}
	m.rooms[name] = &room{name: name}
	m.order = append(m.order, name)
	m.log.Info("Room created", "room", name)
	return true
}

func (m *RoomManager) get(name string) (*room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errors.ErrRoomNotFound, name)
	}
	return r, nil
}

// userLock serializes the room transitions of one user.
// It is always taken before any room mutex.
func (m *RoomManager) userLock(username string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.moving[username]
	if !ok {
		l = &sync.Mutex{}
		m.moving[username] = l
	}
	return l
}

// Join adds a registered user to a room and records a system notice.
// A user lives in one room at a time: joining another room leaves the
// previous one first. Joining the same room twice keeps a single membership.
func (m *RoomManager) Join(username, roomName string) error {
	r, err := m.get(roomName)
	if err != nil {
		return err
	}
	registered, err := m.users.IsRegistered(username)
	if err != nil {
		return err
	}
	if !registered {
		return fmt.Errorf("%w: %q", errors.ErrUserNotRegistered, username)
	}

	lock := m.userLock(username)
	lock.Lock()
	defer lock.Unlock()

	current, err := m.users.CurrentRoom(username)
	if err != nil {
		return err
	}
	user := chat.User{Username: username, CurrentRoom: current}
	if user.InRoom() && current != roomName {
		err = m.leave(username, current)
		if err != nil && !goerrors.Is(err, errors.ErrNotAMember) {
			return err
		}
	}

	r.mu.Lock()
	_, err = m.appendLocked(r, chat.JoinedNotice(roomName, username, m.now()))
	if err == nil && !r.isMember(username) {
		r.members = append(r.members, username)
	}
	r.mu.Unlock()
	if err != nil {
		return err
	}

	m.log.Info("User joined room", "user", username, "room", roomName)
	return m.users.SetCurrentRoom(username, roomName)
}

// Leave removes a member and records a system-authored departure notice.
// The user's current room is cleared when it still points at this room.
func (m *RoomManager) Leave(username, roomName string) error {
	lock := m.userLock(username)
	lock.Lock()
	defer lock.Unlock()
	return m.leave(username, roomName)
}

// leave must be called with the user's transition lock held.
func (m *RoomManager) leave(username, roomName string) error {
	r, err := m.get(roomName)
	if err != nil {
		return err
	}

	r.mu.Lock()
	if !r.isMember(username) {
		r.mu.Unlock()
		return fmt.Errorf("%w: %q in %q", errors.ErrNotAMember, username, roomName)
	}
	_, err = m.appendLocked(r, chat.LeftNotice(roomName, username, m.now()))
	if err == nil {
		r.members = lo.Without(r.members, username)
	}
	r.mu.Unlock()
	if err != nil {
		return err
	}

	m.log.Info("User left room", "user", username, "room", roomName)
	current, err := m.users.CurrentRoom(username)
	if err != nil {
		return err
	}
	if current == roomName {
		return m.users.SetCurrentRoom(username, "")
	}
	return nil
}

// Post appends a message authored by a current member of the room.
// The returned message carries its sequence number.
func (m *RoomManager) Post(roomName string, message chat.Message) (chat.Message, error) {
	r, err := m.get(roomName)
	if err != nil {
		return chat.Message{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.isMember(message.Origin) {
		return chat.Message{}, fmt.Errorf("%w: %q in %q", errors.ErrNotAMember, message.Origin, roomName)
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = m.now()
	}
	return m.appendLocked(r, message)
}

// appendLocked must be called with r.mu held.
// The sequence only moves forward once the message is stored.
func (m *RoomManager) appendLocked(r *room, message chat.Message) (chat.Message, error) {
	message.Room = r.name
	message.Seq = r.lastSeq + 1
	if err := m.messages.StoreMessage(message); err != nil {
		return chat.Message{}, fmt.Errorf("storing message in %q failed: %w", r.name, err)
	}
	r.lastSeq = message.Seq
	return message, nil
}

// Messages returns the raw room log after afterSeq, for a current member only.
func (m *RoomManager) Messages(username, roomName string, afterSeq uint64) ([]chat.Message, error) {
	r, err := m.get(roomName)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	member := r.isMember(username)
	r.mu.Unlock()
	if !member {
		return nil, fmt.Errorf("%w: %q in %q", errors.ErrNotAMember, username, roomName)
	}
	return m.messages.GetMessages(roomName, afterSeq)
}

// History returns the whole room log regardless of membership.
func (m *RoomManager) History(roomName string) ([]chat.Message, error) {
	if _, err := m.get(roomName); err != nil {
		return nil, err
	}
	return m.messages.GetMessages(roomName, 0)
}

// ListRooms returns room names in creation order.
// The boolean is false when no room exists, which callers must tell
// apart from an empty result.
func (m *RoomManager) ListRooms() ([]string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.order) == 0 {
		return nil, false
	}
	rooms := make([]string, len(m.order))
	copy(rooms, m.order)
	return rooms, true
}

// ListUsers returns the members of a room in join order.
func (m *RoomManager) ListUsers(roomName string) ([]string, error) {
	r, err := m.get(roomName)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]string, len(r.members))
	copy(users, r.members)
	return users, nil
}
