package e2e

import (
	"chat-rpc/client"
	"chat-rpc/domain/chat"
	"chat-rpc/errors"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type testChatSuite struct {
	BaseGrpcSuite
}

func TestChatSuite(t *testing.T) {
	suite.Run(t, &testChatSuite{})
}

func (s *testChatSuite) TestLobbyConversation() {
	// Unique names, the servers may outlive a single run
	suffix := uuid.NewString()[:8]
	alice, bob, room := "alice-"+suffix, "bob-"+suffix, "lobby-"+suffix
	var bobCursor uint64

	s.Run("Step 1: register both users", func() {
		s.WithChat("Register alice and bob", func(ctx context.Context, c *client.ChatClient) {
			for _, u := range []string{alice, bob} {
				_, err := c.RegisterUser(ctx, u)
				s.Require().NoError(err)
			}
			_, err := c.RegisterUser(ctx, alice)
			s.Require().ErrorIs(err, errors.ErrDuplicateUser)
		})
	})

	s.Run("Step 2: create and join the room", func() {
		s.WithChat("Alice creates the room, both join", func(ctx context.Context, c *client.ChatClient) {
			created, _, err := c.CreateRoom(ctx, room)
			s.Require().NoError(err)
			s.Require().True(created)

			_, err = c.JoinRoom(ctx, alice, room)
			s.Require().NoError(err)
			joined, err := c.JoinRoom(ctx, bob, room)
			s.Require().NoError(err)
			s.Require().NotEmpty(joined.History)
			bobCursor = joined.History[len(joined.History)-1].Seq

			users, err := c.ListUsers(ctx, room)
			s.Require().NoError(err)
			s.Require().Equal([]string{alice, bob}, users)
		})
	})

	s.Run("Step 3: broadcast and direct messages", func() {
		s.WithChat("Alice talks, bob polls", func(ctx context.Context, c *client.ChatClient) {
			_, err := c.SendMessage(ctx, alice, room, "hi", "")
			s.Require().NoError(err)
			_, err = c.SendMessage(ctx, alice, room, "psst", bob)
			s.Require().NoError(err)

			messages, err := c.ReceiveMessages(ctx, bob, room, bobCursor)
			s.Require().NoError(err)
			s.Require().Equal([]string{"hi", "psst"}, lo.Map(messages, func(m chat.Message, _ int) string { return m.Content }))

			own, err := c.ReceiveMessages(ctx, alice, room, 0)
			s.Require().NoError(err)
			s.Require().False(lo.ContainsBy(own, func(m chat.Message) bool { return m.Origin == alice }))
		})
	})

	s.Run("Step 4: leave", func() {
		s.WithChat("Alice leaves the room", func(ctx context.Context, c *client.ChatClient) {
			_, err := c.LeaveRoom(ctx, alice, room)
			s.Require().NoError(err)
			users, err := c.ListUsers(ctx, room)
			s.Require().NoError(err)
			s.Require().Equal([]string{bob}, users)
		})
	})
}
