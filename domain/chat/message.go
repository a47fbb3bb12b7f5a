// Package chat contains the core concepts of the chat broker.
// Messages are immutable once appended to a room log.
package chat

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// SystemAuthor is the origin of join/leave notices. It can't be registered.
	SystemAuthor = "System"
	// ExitSentinel sent as content is an alias for leaving the room.
	ExitSentinel = "!exit"
	// TimestampLayout has second granularity, display only.
	TimestampLayout = "2006-01-02 15:04:05"
)

type Kind string

const (
	Broadcast Kind = "broadcast"
	Unicast   Kind = "unicast"
)

// Message represents an immutable entry of a room log.
// Seq is the identity of the message inside its room, the timestamp is not.
type Message struct {
	Seq         uint64
	ID          uuid.UUID
	Room        string
	Kind        Kind
	Origin      string
	Destination string // empty for broadcast
	Content     string
	CreatedAt   time.Time
}

func NewMessage(room, origin, destination, content string, at time.Time) Message {
	kind := Broadcast
	if destination != "" {
		kind = Unicast
	}
	return Message{
		ID:          uuid.New(),
		Room:        room,
		Kind:        kind,
		Origin:      origin,
		Destination: destination,
		Content:     content,
		CreatedAt:   at,
	}
}

func JoinedNotice(room, username string, at time.Time) Message {
	return NewMessage(room, SystemAuthor, "", fmt.Sprintf("%s joined the room", username), at)
}

func LeftNotice(room, username string, at time.Time) Message {
	return NewMessage(room, SystemAuthor, "", fmt.Sprintf("%s left the room", username), at)
}

func (m Message) IsBroadcast() bool {
	return m.Destination == ""
}

// AddressedTo reports whether m is a broadcast or a unicast to username.
func (m Message) AddressedTo(username string) bool {
	return m.IsBroadcast() || m.Destination == username
}

// VisibleTo is what a member polls: addressed to them and not self-authored.
func (m Message) VisibleTo(username string) bool {
	return m.Origin != username && m.AddressedTo(username)
}

func (m Message) Timestamp() string {
	return m.CreatedAt.Format(TimestampLayout)
}

// Render formats the message as "[timestamp] origin -> destination: content",
// "All" standing for broadcast.
func (m Message) Render() string {
	destination := m.Destination
	if m.IsBroadcast() {
		destination = "All"
	}
	return fmt.Sprintf("[%s] %s -> %s: %s", m.Timestamp(), m.Origin, destination, m.Content)
}
