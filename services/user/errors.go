package user

import "errors"

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidRole        = errors.New("role must be admin or user")
)
