package server

import (
	pb "chat-rpc/api/binder"
	"chat-rpc/domain/binder"
	"chat-rpc/errors"
	"chat-rpc/mocks"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestBinderServer_Register(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIBinderService(ctrl)
	server := NewBinderServer(service)
	entry := binder.Entry{Procedure: "join_room", Address: "localhost", Port: 8000}

	service.EXPECT().Register(entry).Return(false, "procedure join_room already registered", nil)
	service.EXPECT().Register(binder.Entry{Procedure: "join_room"}).Return(false, "", fmt.Errorf("%w: port", errors.ErrInvalidArgument))

	resp, err := server.Register(context.Background(), &pb.RegisterRequest{Entry: pb.Entry{Procedure: "join_room", Address: "localhost", Port: 8000}})
	req.NoError(err)
	req.False(resp.Registered)
	req.Equal("procedure join_room already registered", resp.Message)

	_, err = server.Register(context.Background(), &pb.RegisterRequest{Entry: pb.Entry{Procedure: "join_room"}})
	req.Equal(codes.InvalidArgument, status.Code(err))
}

func TestBinderServer_Lookup(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIBinderService(ctrl)
	server := NewBinderServer(service)

	service.EXPECT().Lookup("join_room").Return(binder.Entry{Procedure: "join_room", Address: "10.0.0.1", Port: 8000}, true, nil)
	service.EXPECT().Lookup("missing").Return(binder.Entry{}, false, nil)

	resp, err := server.Lookup(context.Background(), &pb.LookupRequest{Procedure: "join_room"})
	req.NoError(err)
	req.True(resp.Found)
	req.Equal(&pb.Entry{Procedure: "join_room", Address: "10.0.0.1", Port: 8000}, resp.Entry)

	resp, err = server.Lookup(context.Background(), &pb.LookupRequest{Procedure: "missing"})
	req.NoError(err)
	req.False(resp.Found)
	req.Nil(resp.Entry)
}
