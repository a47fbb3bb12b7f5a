package client

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Resolver asks the binder where a procedure lives on every call; only the
// connections to resolved addresses are cached, so an address already
// resolved stays usable while the binder is down.
type Resolver struct {
	binder      *BinderClient
	dialOptions []grpc.DialOption

	mu    sync.Mutex
	conns map[string]*grpc.ClientConn
}

func NewResolver(binder *BinderClient, dialOptions ...grpc.DialOption) *Resolver {
	if len(dialOptions) == 0 {
		dialOptions = []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	}
	return &Resolver{
		binder:      binder,
		dialOptions: dialOptions,
		conns:       make(map[string]*grpc.ClientConn),
	}
}

// Resolve looks the procedure up and returns a connection to its location.
func (r *Resolver) Resolve(ctx context.Context, procedure string) (*grpc.ClientConn, error) {
	entry, err := r.binder.Lookup(ctx, procedure)
	if err != nil {
		return nil, err
	}
	return r.conn(entry.Target())
}

func (r *Resolver) conn(target string) (*grpc.ClientConn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if conn, ok := r.conns[target]; ok {
		return conn, nil
	}
	// passthrough: the binder already gave us a dialable host:port.
	conn, err := grpc.NewClient("passthrough:///"+target, r.dialOptions...)
	if err != nil {
		return nil, fmt.Errorf("could not connect to %s: %w", target, err)
	}
	r.conns[target] = conn
	return conn, nil
}

// Close releases every cached connection.
func (r *Resolver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var firstErr error
	for target, conn := range r.conns {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(r.conns, target)
	}
	return firstErr
}
