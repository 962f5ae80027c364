package lesson

import (
	"context"
	"time"

	"skiresort/internal/domain"
)

// LessonRepository defines the store operations the service needs.
// Create relies on the (instructor, time) unique index to arbitrate
// concurrent bookings.
type LessonRepository interface {
	Create(ctx context.Context, l *domain.Lesson) error
	ListAll(ctx context.Context) ([]domain.Lesson, error)
	ListFor(ctx context.Context, username string) ([]domain.Lesson, error)
}

// InstructorRepository is the roster read accessor.
type InstructorRepository interface {
	ListNames(ctx context.Context) ([]string, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// JournalAppender records the financial entry after a mutation commits.
type JournalAppender interface {
	Append(ctx context.Context, username string, kind domain.TransactionKind, when time.Time) (*domain.Transaction, error)
}
