package user

import "errors"

var (
	ErrNotFound     = errors.New("user not found")
	ErrInvalidAuth  = errors.New("invalid credentials")
	ErrSuspended    = errors.New("account suspended")
	ErrEmailTaken   = errors.New("email already in use")
	ErrInvalidInput = errors.New("invalid input")
)
