package lesson

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrInstructorNotFound = errors.New("instructor not found")
	ErrInstructorBusy     = errors.New("instructor unavailable")

	// ErrJournalAppend wraps a journal failure after the lesson already
	// committed. The domain result stays authoritative.
	ErrJournalAppend = errors.New("transaction journal append failed")
)
