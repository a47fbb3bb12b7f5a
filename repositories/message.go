//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"chat-rpc/domain/chat"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

type IMessageRepository interface {
	StoreMessage(message chat.Message) error
	GetMessages(room string, afterSeq uint64) ([]chat.Message, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

// StoreMessage appends a message to its room log.
// The key is formatted as "msg:{hex(room)}:{seq_padded}" so that:
//  1. a prefix scan over one room never reaches another room, whatever its name;
//  2. the 20-digit zero padding keeps lexicographical order equal to append order.
//
// The caller owns the sequence: keys are never overwritten.
func (m MessageRepository) StoreMessage(message chat.Message) error {
	bytes, err := marshalMessage(message)
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set(messageKey(message.Room, message.Seq), bytes)
	})
}

// GetMessages returns the room log in append order, starting after afterSeq.
func (m MessageRepository) GetMessages(room string, afterSeq uint64) ([]chat.Message, error) {
	var messages []chat.Message
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := roomPrefix(room)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		seekKey := messageKey(room, afterSeq)
		it.Seek(seekKey)
		if afterSeq > 0 && it.ValidForPrefix(prefix) && string(it.Item().Key()) == string(seekKey) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				message, err := unmarshalMessage(val)
				if err != nil {
					return err
				}
				messages = append(messages, message)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	m.log.Debug("Room log scanned", "room", room, "after_seq", afterSeq, "count", len(messages))
	return messages, nil
}

func roomPrefix(room string) []byte {
	return []byte(fmt.Sprintf("msg:%s:", hex.EncodeToString([]byte(room))))
}

func messageKey(room string, seq uint64) []byte {
	return append(roomPrefix(room), []byte(fmt.Sprintf("%020d", seq))...)
}

func marshalMessage(message chat.Message) ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		"seq":         fmt.Sprintf("%d", message.Seq),
		"id":          message.ID.String(),
		"room":        message.Room,
		"kind":        string(message.Kind),
		"origin":      message.Origin,
		"destination": message.Destination,
		"content":     message.Content,
		"created_at":  message.CreatedAt.Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, fmt.Errorf("message encoding failed: %w", err)
	}
	return proto.Marshal(s)
}

func unmarshalMessage(val []byte) (chat.Message, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(val, &s); err != nil {
		return chat.Message{}, err
	}
	fields := s.GetFields()

	var seq uint64
	if _, err := fmt.Sscanf(fields["seq"].GetStringValue(), "%d", &seq); err != nil {
		return chat.Message{}, fmt.Errorf("message seq decoding failed: %w", err)
	}
	id, err := uuid.Parse(fields["id"].GetStringValue())
	if err != nil {
		return chat.Message{}, err
	}
	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"].GetStringValue())
	if err != nil {
		return chat.Message{}, err
	}
	return chat.Message{
		Seq:         seq,
		ID:          id,
		Room:        fields["room"].GetStringValue(),
		Kind:        chat.Kind(fields["kind"].GetStringValue()),
		Origin:      fields["origin"].GetStringValue(),
		Destination: fields["destination"].GetStringValue(),
		Content:     fields["content"].GetStringValue(),
		CreatedAt:   createdAt,
	}, nil
}
