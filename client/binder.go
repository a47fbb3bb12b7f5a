package client

import (
	pb "chat-rpc/api/binder"
	"chat-rpc/domain/binder"
	"chat-rpc/errors"
	"context"
	"fmt"

	"google.golang.org/grpc"
)

// BinderClient talks to the service registry.
type BinderClient struct {
	client pb.BinderServiceClient
}

func NewBinderClient(conn grpc.ClientConnInterface) *BinderClient {
	return &BinderClient{client: pb.NewBinderServiceClient(conn)}
}

// Register publishes an entry. false means the procedure was already taken,
// which is an outcome, not an error.
func (c *BinderClient) Register(ctx context.Context, entry binder.Entry) (bool, string, error) {
	resp, err := c.client.Register(ctx, &pb.RegisterRequest{Entry: pb.Entry{
		Procedure: entry.Procedure,
		Address:   entry.Address,
		Port:      entry.Port,
	}})
	if err != nil {
		return false, "", fmt.Errorf("client.Register %s: %w", entry.Procedure, errors.FromGRPCError(err))
	}
	return resp.Registered, resp.Message, nil
}

// Lookup resolves a procedure. An unknown procedure yields ErrProcedureNotFound,
// a discovery failure distinct from the transport errors of the binder itself.
func (c *BinderClient) Lookup(ctx context.Context, procedure string) (binder.Entry, error) {
	resp, err := c.client.Lookup(ctx, &pb.LookupRequest{Procedure: procedure})
	if err != nil {
		return binder.Entry{}, fmt.Errorf("client.Lookup %s: %w", procedure, errors.FromGRPCError(err))
	}
	if !resp.Found || resp.Entry == nil {
		return binder.Entry{}, fmt.Errorf("%w: %s", errors.ErrProcedureNotFound, procedure)
	}
	return binder.Entry{
		Procedure: resp.Entry.Procedure,
		Address:   resp.Entry.Address,
		Port:      resp.Entry.Port,
	}, nil
}
