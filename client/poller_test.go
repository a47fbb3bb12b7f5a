package client

import (
	"chat-rpc/domain/chat"
	"chat-rpc/mocks"
	"context"
	goerrors "errors"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func message(seq uint64, origin, content string) chat.Message {
	m := chat.NewMessage("lobby", origin, "", content, time.Now().UTC())
	m.Seq = seq
	return m
}

func TestPoller_Poll_DeduplicatesAndAdvancesCursor(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	source := mocks.NewMockMessageSource(ctrl)
	poller := NewPoller(logs.GetLoggerFromLevel(slog.LevelError), source, "bob", "lobby", time.Second)
	ctx := context.Background()

	// Given the join history already displayed
	poller.Skip([]chat.Message{message(1, chat.SystemAuthor, "bob joined the room")})

	gomock.InOrder(
		source.EXPECT().ReceiveMessages(ctx, "bob", "lobby", uint64(1)).
			Return([]chat.Message{message(2, "alice", "hi"), message(3, "alice", "there")}, nil),
		source.EXPECT().ListUsers(ctx, "lobby").Return([]string{"alice", "bob"}, nil),
		// A stale answer replays seq 3
		source.EXPECT().ReceiveMessages(ctx, "bob", "lobby", uint64(3)).
			Return([]chat.Message{message(3, "alice", "there"), message(4, "alice", "bye")}, nil),
		source.EXPECT().ListUsers(ctx, "lobby").Return([]string{"alice", "bob"}, nil),
	)

	// When polling twice
	req.NoError(poller.Poll(ctx))
	req.NoError(poller.Poll(ctx))

	// Then each message is emitted once, in order
	var contents []string
	for len(poller.Messages()) > 0 {
		contents = append(contents, (<-poller.Messages()).Content)
	}
	req.Equal([]string{"hi", "there", "bye"}, contents)

	// And the unchanged member list is emitted once
	req.Len(poller.Members(), 1)
	req.Equal([]string{"alice", "bob"}, <-poller.Members())
}

func TestPoller_Poll_MemberChanges(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	source := mocks.NewMockMessageSource(ctrl)
	poller := NewPoller(logs.GetLoggerFromLevel(slog.LevelError), source, "bob", "lobby", time.Second)
	ctx := context.Background()

	source.EXPECT().ReceiveMessages(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	gomock.InOrder(
		source.EXPECT().ListUsers(ctx, "lobby").Return([]string{"alice", "bob"}, nil),
		source.EXPECT().ListUsers(ctx, "lobby").Return([]string{"bob"}, nil),
	)

	req.NoError(poller.Poll(ctx))
	req.NoError(poller.Poll(ctx))

	req.Equal([]string{"alice", "bob"}, <-poller.Members())
	req.Equal([]string{"bob"}, <-poller.Members())
}

func TestPoller_Run_SurvivesErrorsAndStops(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	source := mocks.NewMockMessageSource(ctrl)
	poller := NewPoller(logs.GetLoggerFromLevel(slog.LevelError), source, "bob", "lobby", 10*time.Millisecond)

	// Given a source failing on every call
	source.EXPECT().ReceiveMessages(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, goerrors.New("unavailable")).MinTimes(2)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	// Then Run keeps polling and returns cleanly once the context is done
	req.NoError(poller.Run(ctx))
}
