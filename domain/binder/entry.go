// Package binder contains the service registry model.
package binder

import (
	"fmt"
	"net"
	"strconv"
)

// Entry maps a procedure name to the location serving it.
// Entries are insert-only.
type Entry struct {
	Procedure string `validate:"required"`
	Address   string `validate:"required"`
	Port      int    `validate:"min=1,max=65535"`
}

// Target is the dialable "host:port" of the entry.
func (e Entry) Target() string {
	return net.JoinHostPort(e.Address, strconv.Itoa(e.Port))
}

func (e Entry) String() string {
	return fmt.Sprintf("%s@%s", e.Procedure, e.Target())
}
