package runtime

import (
	"chat-rpc/contract"
	"chat-rpc/domain/binder"
	"context"
	"fmt"
	"log/slog"
)

// Bootstrap publishes every procedure of the broker to the binder.
// It must complete before the broker starts serving; any failure aborts startup.
// A procedure already registered by someone else is kept as is and only logged.
func Bootstrap(ctx context.Context, log *slog.Logger, registrar contract.IRegistrar, address string, port int, procedures []string) error {
	for _, procedure := range procedures {
		entry := binder.Entry{Procedure: procedure, Address: address, Port: port}
		registered, msg, err := registrar.Register(ctx, entry)
		if err != nil {
			return fmt.Errorf("register %s: %w", procedure, err)
		}
		if !registered {
			log.Warn("Procedure not registered", "procedure", procedure, "reason", msg)
			continue
		}
		log.Debug("Procedure registered", "entry", entry.String())
	}
	log.Info("Broker procedures published", "count", len(procedures), "address", address, "port", port)
	return nil
}
