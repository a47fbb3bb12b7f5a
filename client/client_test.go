package client

import (
	pbbinder "chat-rpc/api/binder"
	pbchat "chat-rpc/api/chat"
	"chat-rpc/errors"
	"chat-rpc/infrastructure/grpc/server"
	"chat-rpc/repositories"
	"chat-rpc/runtime"
	"chat-rpc/runtime/workers"
	"chat-rpc/services"
	"context"
	"fmt"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1024 * 1024

// network routes "host:port" targets to in-process listeners.
type network map[string]*bufconn.Listener

func (n network) dialer(ctx context.Context, addr string) (net.Conn, error) {
	lis, ok := n[addr]
	if !ok {
		return nil, fmt.Errorf("no listener for %s", addr)
	}
	return lis.DialContext(ctx)
}

func (n network) options() []grpc.DialOption {
	return []grpc.DialOption{
		grpc.WithContextDialer(n.dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
}

func serve(t *testing.T, register func(s *grpc.Server)) *bufconn.Listener {
	t.Helper()
	lis := bufconn.Listen(bufSize)
	s := grpc.NewServer()
	register(s)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)
	return lis
}

// startCluster runs a binder and a broker in process and returns a chat
// client resolving every call through the binder.
func startCluster(t *testing.T, publish bool) (*ChatClient, *Resolver) {
	t.Helper()
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelError)
	nodes := network{}

	binderDB, err := repositories.OpenInMemory(log)
	req.NoError(err)
	t.Cleanup(func() { _ = binderDB.Close() })
	binderService := services.NewBinderService(log, repositories.NewEntryRepository(binderDB))
	nodes["binder:5000"] = serve(t, func(s *grpc.Server) {
		pbbinder.RegisterBinderServiceServer(s, server.NewBinderServer(binderService))
	})

	brokerDB, err := repositories.OpenInMemory(log)
	req.NoError(err)
	t.Cleanup(func() { _ = brokerDB.Close() })
	users := services.NewUserDirectory(repositories.NewUserRepository(brokerDB))
	rooms := runtime.NewRoomManager(log, users, repositories.NewMessageRepository(brokerDB, log))
	chatService := services.NewChatService(log, users, rooms, services.DefaultHistoryLimit)
	nodes["broker:8000"] = serve(t, func(s *grpc.Server) {
		pbchat.RegisterChatServiceServer(s, server.NewChatServer(log, chatService))
	})

	binderConn, err := grpc.NewClient("passthrough:///binder:5000", nodes.options()...)
	req.NoError(err)
	t.Cleanup(func() { _ = binderConn.Close() })
	binderClient := NewBinderClient(binderConn)

	if publish {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		req.NoError(runtime.Bootstrap(ctx, log, binderClient, "broker", 8000, pbchat.Procedures))
	}

	resolver := NewResolver(binderClient, nodes.options()...)
	t.Cleanup(func() { _ = resolver.Close() })
	return NewChatClient(resolver), resolver
}

func TestChatClient_Scenario(t *testing.T) {
	req := require.New(t)
	chatClient, _ := startCluster(t, true)
	ctx := context.Background()

	// Given no room yet
	rooms, ok, err := chatClient.ListRooms(ctx)
	req.NoError(err)
	req.False(ok)
	req.Empty(rooms)

	// When alice and bob meet in the lobby
	for _, u := range []string{"alice", "bob"} {
		msg, err := chatClient.RegisterUser(ctx, u)
		req.NoError(err)
		req.Equal(fmt.Sprintf("user %s registered", u), msg)
	}
	created, _, err := chatClient.CreateRoom(ctx, "lobby")
	req.NoError(err)
	req.True(created)
	_, err = chatClient.JoinRoom(ctx, "alice", "lobby")
	req.NoError(err)
	joined, err := chatClient.JoinRoom(ctx, "bob", "lobby")
	req.NoError(err)
	req.Len(joined.Rendered, 2)
	req.Contains(joined.Rendered[0], "System -> All: alice joined the room")
	req.Equal("bob joined the room", joined.History[1].Content)
	req.Equal("lobby", joined.History[1].Room)

	_, err = chatClient.SendMessage(ctx, "alice", "lobby", "hi", "")
	req.NoError(err)

	// Then bob receives the broadcast after his join notice
	messages, err := chatClient.ReceiveMessages(ctx, "bob", "lobby", joined.History[1].Seq)
	req.NoError(err)
	req.Len(messages, 1)
	req.Equal("alice", messages[0].Origin)
	req.Equal("hi", messages[0].Content)
	req.Empty(messages[0].Destination)
	req.False(messages[0].CreatedAt.IsZero())

	users, err := chatClient.ListUsers(ctx, "lobby")
	req.NoError(err)
	req.Equal([]string{"alice", "bob"}, users)

	rooms, ok, err = chatClient.ListRooms(ctx)
	req.NoError(err)
	req.True(ok)
	req.Equal([]string{"lobby"}, rooms)

	msg, err := chatClient.LeaveRoom(ctx, "alice", "lobby")
	req.NoError(err)
	req.Equal("alice left lobby", msg)
}

func TestChatClient_DomainErrorsCrossTheWire(t *testing.T) {
	req := require.New(t)
	chatClient, _ := startCluster(t, true)
	ctx := context.Background()

	_, err := chatClient.RegisterUser(ctx, "alice")
	req.NoError(err)

	_, err = chatClient.RegisterUser(ctx, "alice")
	req.ErrorIs(err, errors.ErrDuplicateUser)

	_, err = chatClient.RegisterUser(ctx, "System")
	req.ErrorIs(err, errors.ErrReservedName)

	_, err = chatClient.JoinRoom(ctx, "alice", "nowhere")
	req.ErrorIs(err, errors.ErrRoomNotFound)

	_, _, _ = chatClient.CreateRoom(ctx, "lobby")
	_, err = chatClient.JoinRoom(ctx, "ghost", "lobby")
	req.ErrorIs(err, errors.ErrUserNotRegistered)

	_, err = chatClient.SendMessage(ctx, "alice", "lobby", "hi", "")
	req.ErrorIs(err, errors.ErrNotAMember)

	_, err = chatClient.ListUsers(ctx, "nowhere")
	req.ErrorIs(err, errors.ErrRoomNotFound)
}

func TestResolver_DiscoveryFailure(t *testing.T) {
	req := require.New(t)

	// Given a broker that never published its procedures
	chatClient, _ := startCluster(t, false)

	_, err := chatClient.RegisterUser(context.Background(), "alice")

	req.ErrorIs(err, errors.ErrProcedureNotFound)
}

func TestResolver_CachesConnectionPerAddress(t *testing.T) {
	req := require.New(t)
	_, resolver := startCluster(t, true)
	ctx := context.Background()

	conns := lo.Map(pbchat.Procedures, func(procedure string, _ int) *grpc.ClientConn {
		conn, err := resolver.Resolve(ctx, procedure)
		req.NoError(err)
		return conn
	})

	req.Len(lo.Uniq(conns), 1)
}

func TestPoller_UnderSupervisor(t *testing.T) {
	req := require.New(t)
	chatClient, _ := startCluster(t, true)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log := logs.GetLoggerFromLevel(slog.LevelError)

	// Given bob polling the lobby from a supervised worker
	for _, u := range []string{"alice", "bob"} {
		_, err := chatClient.RegisterUser(ctx, u)
		req.NoError(err)
	}
	_, _, err := chatClient.CreateRoom(ctx, "lobby")
	req.NoError(err)
	_, err = chatClient.JoinRoom(ctx, "alice", "lobby")
	req.NoError(err)
	joined, err := chatClient.JoinRoom(ctx, "bob", "lobby")
	req.NoError(err)

	poller := NewPoller(log, chatClient, "bob", "lobby", 20*time.Millisecond)
	poller.Skip(joined.History)
	sup := workers.NewSupervisor(log)
	done := make(chan struct{})
	go func() {
		sup.Add(poller).Run(ctx)
		close(done)
	}()

	// When alice writes twice within the same second
	_, err = chatClient.SendMessage(ctx, "alice", "lobby", "one", "")
	req.NoError(err)
	_, err = chatClient.SendMessage(ctx, "alice", "lobby", "two", "bob")
	req.NoError(err)

	// Then bob gets both, once, in order
	var received []string
	for len(received) < 2 {
		select {
		case m := <-poller.Messages():
			received = append(received, m.Content)
		case <-ctx.Done():
			req.FailNow("messages not delivered", "got %v", received)
		}
	}
	req.Equal([]string{"one", "two"}, received)
	req.Equal([]string{"alice", "bob"}, <-poller.Members())

	sup.Stop()
	<-done
}
