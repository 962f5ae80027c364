package auth

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
