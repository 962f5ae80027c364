package journal

import (
	"context"

	"skiresort/internal/domain"
)

// TransactionRepository is the append-only store behind the journal.
type TransactionRepository interface {
	Append(ctx context.Context, t *domain.Transaction) error
	ListAll(ctx context.Context) ([]domain.Transaction, error)
	ListFor(ctx context.Context, username string) ([]domain.Transaction, error)
}
