package models

import "errors"

// Expected, recoverable error kinds reported synchronously to the caller.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidState       = errors.New("invalid room state")
	ErrRoomFull           = errors.New("room is full")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrValidation         = errors.New("invalid input")
)
