package journal

import "errors"

var (
	ErrUnknownKind   = errors.New("unknown transaction kind")
	ErrEmptyUsername = errors.New("username cannot be empty")
)
