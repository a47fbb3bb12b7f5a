// Package e2e drives a running binder and chat server through the client library.
package e2e

import (
	"chat-rpc/client"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

type BaseGrpcSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseGrpcSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.BinderAddr == "" {
		s.T().Skip("BINDER_ADDR not set, skipping end to end suite")
	}
}

// dialOptions logs every call with its status and duration, plus bodies when E2E_DEBUG_JSON is set.
func (s *BaseGrpcSuite) dialOptions(t *testing.T) []grpc.DialOption {
	return []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			start := time.Now()
			err := invoker(ctx, method, req, reply, cc, opts...)

			logBuilder := strings.Builder{}
			fmt.Fprintf(&logBuilder, "GRPC %s -> %s [%s] in %v", method, cc.Target(), status.Code(err), time.Since(start))
			if s.Config.DebugJSON {
				fmt.Fprintln(&logBuilder, "\nREQUEST:")
				fmt.Fprintln(&logBuilder, indent(req))
				if err != nil {
					fmt.Fprintln(&logBuilder, "ERROR:", err)
				} else {
					fmt.Fprintln(&logBuilder, "RESPONSE:")
					fmt.Fprintln(&logBuilder, indent(reply))
				}
			}
			t.Log(logBuilder.String())
			return err
		}),
	}
}

// WithChat provides a chat client resolving through the binder within a contextual test step
func (s *BaseGrpcSuite) WithChat(name string, fn func(ctx context.Context, chat *client.ChatClient)) {
	t := s.T()
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	options := s.dialOptions(t)
	binderConn, err := grpc.NewClient(s.Config.BinderAddr, options...)
	s.Require().NoError(err, "Failed to connect to binder at "+s.Config.BinderAddr)
	defer binderConn.Close()

	resolver := client.NewResolver(client.NewBinderClient(binderConn), options...)
	defer resolver.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fn(ctx, client.NewChatClient(resolver))
}

func indent(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(data)
}
