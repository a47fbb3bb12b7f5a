package errors

import (
	goerrors "errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MapToGRPCError translates a domain error into a gRPC status.
// Errors that are already a status are returned unchanged.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case goerrors.Is(err, ErrDuplicateUser):
		return status.Error(codes.AlreadyExists, err.Error())
	case goerrors.Is(err, ErrReservedName):
		return status.Error(codes.PermissionDenied, err.Error())
	case goerrors.Is(err, ErrRoomNotFound), goerrors.Is(err, ErrProcedureNotFound):
		return status.Error(codes.NotFound, err.Error())
	case goerrors.Is(err, ErrUserNotRegistered), goerrors.Is(err, ErrNotAMember):
		return status.Error(codes.FailedPrecondition, err.Error())
	case goerrors.Is(err, ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// FromGRPCError is the client side of MapToGRPCError: it wraps the sentinel
// found in the status message so callers can rely on errors.Is.
// Transport failures (Unavailable, DeadlineExceeded...) are returned as is.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	for _, sentinel := range sentinelsFor(st.Code()) {
		if strings.Contains(st.Message(), sentinel.Error()) {
			return &remoteError{sentinel: sentinel, status: st}
		}
	}
	return err
}

func sentinelsFor(code codes.Code) []error {
	switch code {
	case codes.AlreadyExists:
		return []error{ErrDuplicateUser}
	case codes.PermissionDenied:
		return []error{ErrReservedName}
	case codes.NotFound:
		return []error{ErrRoomNotFound, ErrProcedureNotFound}
	case codes.FailedPrecondition:
		return []error{ErrUserNotRegistered, ErrNotAMember}
	case codes.InvalidArgument:
		return []error{ErrInvalidArgument}
	}
	return nil
}

// remoteError keeps the gRPC status reachable while unwrapping to the sentinel.
type remoteError struct {
	sentinel error
	status   *status.Status
}

func (e *remoteError) Error() string { return e.status.Message() }

func (e *remoteError) Unwrap() error { return e.sentinel }

func (e *remoteError) GRPCStatus() *status.Status { return e.status }
