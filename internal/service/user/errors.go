package user

import "errors"

var (
	ErrInvalidUserID  = errors.New("invalid user id")
	ErrInvalidEmail   = errors.New("invalid email")
	ErrInvalidName    = errors.New("invalid name")
	ErrInvalidAddress = errors.New("invalid address")
	ErrInvalidRole    = errors.New("invalid role")
	ErrAccessDenied   = errors.New("access denied")

	ErrUserNotFound = errors.New("user not found")
	ErrConflict     = errors.New("user with this mobile number or email already exists")
)
