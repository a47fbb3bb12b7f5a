package errors

import (
	goerrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMapToGRPCError_Codes(t *testing.T) {
	req := require.New(t)

	cases := map[error]codes.Code{
		ErrDuplicateUser:     codes.AlreadyExists,
		ErrReservedName:      codes.PermissionDenied,
		ErrRoomNotFound:      codes.NotFound,
		ErrProcedureNotFound: codes.NotFound,
		ErrUserNotRegistered: codes.FailedPrecondition,
		ErrNotAMember:        codes.FailedPrecondition,
		ErrInvalidArgument:   codes.InvalidArgument,
	}
	for sentinel, code := range cases {
		err := MapToGRPCError(fmt.Errorf("%w: %q", sentinel, "lobby"))
		req.Equal(code, status.Code(err), sentinel.Error())
	}

	req.Equal(codes.Internal, status.Code(MapToGRPCError(goerrors.New("disk on fire"))))
	req.NoError(MapToGRPCError(nil))
}

func TestMapToGRPCError_KeepsStatus(t *testing.T) {
	req := require.New(t)
	original := status.Error(codes.Unavailable, "binder down")

	req.Equal(original, MapToGRPCError(original))
}

func TestFromGRPCError_RoundTrip(t *testing.T) {
	req := require.New(t)

	// Given a domain error crossing the wire
	wire := MapToGRPCError(fmt.Errorf("%w: %q in %q", ErrNotAMember, "bob", "lobby"))

	// When the client decodes it
	err := FromGRPCError(wire)

	// Then the sentinel and the status are both reachable
	req.ErrorIs(err, ErrNotAMember)
	req.NotErrorIs(err, ErrUserNotRegistered)
	req.Equal(codes.FailedPrecondition, status.Code(err))
	req.Contains(err.Error(), "bob")
}

func TestFromGRPCError_TransportErrorUntouched(t *testing.T) {
	req := require.New(t)
	wire := status.Error(codes.Unavailable, "connection refused")

	err := FromGRPCError(wire)

	req.Equal(wire, err)
	req.NotErrorIs(err, ErrRoomNotFound)
	req.NoError(FromGRPCError(nil))
}
