package inventory

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("equipment not found")
	ErrNoneAvailable = errors.New("none available")
	ErrAlreadyRented = errors.New("equipment already rented by this user")
	ErrNoActiveRent  = errors.New("no active rental for this equipment and renter")

	// ErrJournalAppend wraps a journal failure after the rental state
	// already committed. The domain result stays authoritative.
	ErrJournalAppend = errors.New("transaction journal append failed")
)
