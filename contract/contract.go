//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-rpc/domain/binder"
	"chat-rpc/domain/chat"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// It is only used for logging.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IUserDirectory is the read/write path the room manager needs on users.
type IUserDirectory interface {
	IsRegistered(username string) (bool, error)
	CurrentRoom(username string) (string, error)
	SetCurrentRoom(username, room string) error
}

type IRoomManager interface {
	CreateRoom(room string) bool
	Join(username, room string) error
	Leave(username, room string) error
	Post(room string, message chat.Message) (chat.Message, error)
	Messages(username, room string, afterSeq uint64) ([]chat.Message, error)
	History(room string) ([]chat.Message, error)
	ListRooms() ([]string, bool)
	ListUsers(room string) ([]string, error)
}

// IRegistrar publishes a procedure location to the binder.
type IRegistrar interface {
	Register(ctx context.Context, entry binder.Entry) (bool, string, error)
}
