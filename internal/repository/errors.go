package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNoneAvailable means the conditional decrement matched zero rows:
	// the pool exists but every unit is already rented out.
	ErrNoneAvailable = errors.New("none available")

	// ErrAlreadyRented means the (equipment, renter) unique index
	// rejected a second active rental for the same pair.
	ErrAlreadyRented = errors.New("equipment already rented by this user")

	// ErrInstructorTaken means the (instructor, time) unique index
	// rejected the insert.
	ErrInstructorTaken = errors.New("instructor slot already taken")

	// ErrUsernameTaken means the username unique index rejected the insert.
	ErrUsernameTaken = errors.New("username already taken")
)

// isUniqueConstraintError recognizes duplicate-key failures across the
// drivers we run on (gorm translation, raw postgres, raw sqlite).
func isUniqueConstraintError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "unique failed")
}
