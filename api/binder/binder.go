// Package binder is the wire contract of the service registry.
package binder

import (
	"chat-rpc/api"
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	BinderService_Register_FullMethodName = "/chatrpc.binder.BinderService/Register"
	BinderService_Lookup_FullMethodName   = "/chatrpc.binder.BinderService/Lookup"
)

type Entry struct {
	Procedure string `json:"procedure"`
	Address   string `json:"address"`
	Port      int    `json:"port"`
}

type RegisterRequest struct {
	Entry Entry `json:"entry"`
}

type RegisterResponse struct {
	Registered bool   `json:"registered"`
	Message    string `json:"message"`
}

type LookupRequest struct {
	Procedure string `json:"procedure"`
}

// LookupResponse carries Found=false, not an error, for an unknown procedure.
type LookupResponse struct {
	Found bool   `json:"found"`
	Entry *Entry `json:"entry,omitempty"`
}

type BinderServiceServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Lookup(context.Context, *LookupRequest) (*LookupResponse, error)
}

type UnimplementedBinderServiceServer struct{}

func (UnimplementedBinderServiceServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}

func (UnimplementedBinderServiceServer) Lookup(context.Context, *LookupRequest) (*LookupResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Lookup not implemented")
}

var BinderService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "chatrpc.binder.BinderService",
	HandlerType: (*BinderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Register",
			Handler:    api.Unary(BinderService_Register_FullMethodName, BinderServiceServer.Register),
		},
		{
			MethodName: "Lookup",
			Handler:    api.Unary(BinderService_Lookup_FullMethodName, BinderServiceServer.Lookup),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "binder",
}

func RegisterBinderServiceServer(s grpc.ServiceRegistrar, srv BinderServiceServer) {
	s.RegisterService(&BinderService_ServiceDesc, srv)
}

type BinderServiceClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Lookup(ctx context.Context, in *LookupRequest, opts ...grpc.CallOption) (*LookupResponse, error)
}

type binderServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBinderServiceClient(cc grpc.ClientConnInterface) BinderServiceClient {
	return &binderServiceClient{cc: cc}
}

func (c *binderServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return api.Invoke[RegisterResponse](ctx, c.cc, BinderService_Register_FullMethodName, in, opts...)
}

func (c *binderServiceClient) Lookup(ctx context.Context, in *LookupRequest, opts ...grpc.CallOption) (*LookupResponse, error) {
	return api.Invoke[LookupResponse](ctx, c.cc, BinderService_Lookup_FullMethodName, in, opts...)
}
