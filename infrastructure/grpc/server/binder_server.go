package server

import (
	pb "chat-rpc/api/binder"
	"chat-rpc/domain/binder"
	"chat-rpc/errors"
	"chat-rpc/services"
	"context"
)

type BinderServer struct {
	pb.UnimplementedBinderServiceServer
	binderService services.IBinderService
}

func NewBinderServer(binderService services.IBinderService) *BinderServer {
	return &BinderServer{binderService: binderService}
}

// Register reports a known procedure through Registered=false, not an error.
func (s *BinderServer) Register(_ context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	registered, message, err := s.binderService.Register(binder.Entry{
		Procedure: req.Entry.Procedure,
		Address:   req.Entry.Address,
		Port:      req.Entry.Port,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.RegisterResponse{Registered: registered, Message: message}, nil
}

func (s *BinderServer) Lookup(_ context.Context, req *pb.LookupRequest) (*pb.LookupResponse, error) {
	entry, found, err := s.binderService.Lookup(req.Procedure)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	if !found {
		return &pb.LookupResponse{Found: false}, nil
	}
	return &pb.LookupResponse{
		Found: true,
		Entry: &pb.Entry{Procedure: entry.Procedure, Address: entry.Address, Port: entry.Port},
	}, nil
}
