package journal

import (
	"context"
	"strings"
	"time"

	"skiresort/internal/domain"

	"github.com/oklog/ulid/v2"
)

// Service is the single write path into the financial journal. One
// entry is appended per successful mutating operation elsewhere;
// nothing ever updates or deletes an entry.
type Service struct {
	transactions TransactionRepository
}

func NewService(transactions TransactionRepository) *Service {
	return &Service{transactions: transactions}
}

// Append records one entry with the fixed amount for its kind. The
// reference ULID lets reporting correlate entries exported elsewhere.
func (s *Service) Append(ctx context.Context, username string, kind domain.TransactionKind, when time.Time) (*domain.Transaction, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrEmptyUsername
	}
	if !isValidKind(kind) {
		return nil, ErrUnknownKind
	}

	t := &domain.Transaction{
		Reference: ulid.Make().String(),
		Username:  username,
		Kind:      kind,
		Amount:    kind.Amount(),
		Time:      when,
	}
	if err := s.transactions.Append(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Transaction, error) {
	return s.transactions.ListAll(ctx)
}

func (s *Service) ListFor(ctx context.Context, username string) ([]domain.Transaction, error) {
	return s.transactions.ListFor(ctx, username)
}

// BalanceFor sums the display amounts of a renter's entries. A booking
// followed by its cancellation nets to zero.
func (s *Service) BalanceFor(ctx context.Context, username string) (float64, error) {
	entries, err := s.transactions.ListFor(ctx, username)
	if err != nil {
		return 0, err
	}

	var balance float64
	for _, e := range entries {
		balance += e.Kind.DisplayAmount()
	}
	return balance, nil
}

func isValidKind(kind domain.TransactionKind) bool {
	for _, k := range domain.ValidTransactionKinds() {
		if k == kind {
			return true
		}
	}
	return false
}
