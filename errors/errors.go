package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	ErrDuplicateUser     = fmt.Errorf("username already registered")
	ErrReservedName      = fmt.Errorf("username is reserved")
	ErrRoomNotFound      = fmt.Errorf("room not found")
	ErrUserNotRegistered = fmt.Errorf("user not registered")
	ErrNotAMember        = fmt.Errorf("user is not a member of the room")
	ErrProcedureNotFound = fmt.Errorf("procedure not registered in binder")
	ErrInvalidArgument   = fmt.Errorf("invalid argument")
)
