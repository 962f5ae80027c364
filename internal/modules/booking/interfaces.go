package booking

import (
	"context"
	"time"

	"skiresort/internal/domain"
)

// BookingRepository defines the store operations the service needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, id int64, slot domain.Slot, when time.Time) error
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]domain.Booking, error)
	ListFor(ctx context.Context, username string) ([]domain.Booking, error)
}

// JournalAppender records the financial entry after a mutation commits.
type JournalAppender interface {
	Append(ctx context.Context, username string, kind domain.TransactionKind, when time.Time) (*domain.Transaction, error)
}
