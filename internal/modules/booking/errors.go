package booking

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("booking not found")

	// ErrJournalAppend wraps a journal failure after the booking change
	// already committed. The domain result stays authoritative.
	ErrJournalAppend = errors.New("transaction journal append failed")
)
