package reporting

import (
	"context"

	"skiresort/internal/domain"
)

// JournalReader is the read side of the financial journal.
type JournalReader interface {
	ListAll(ctx context.Context) ([]domain.Transaction, error)
	ListFor(ctx context.Context, username string) ([]domain.Transaction, error)
	BalanceFor(ctx context.Context, username string) (float64, error)
}

// BookingCounter exposes booking tallies.
type BookingCounter interface {
	CountFor(ctx context.Context, username string) (int64, error)
}

// RentalCounter exposes active-rental tallies.
type RentalCounter interface {
	CountRentalsFor(ctx context.Context, username string) (int64, error)
}

// LessonCounter exposes lesson tallies.
type LessonCounter interface {
	CountFor(ctx context.Context, username string) (int64, error)
}
