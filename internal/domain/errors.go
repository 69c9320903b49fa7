package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrNoActiveSession = errors.New("no active session")
	ErrAmountMismatch  = errors.New("payment amount does not match rent")
	ErrInvalidArgument = errors.New("invalid argument")
)
