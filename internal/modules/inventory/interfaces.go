package inventory

import (
	"context"
	"time"

	"skiresort/internal/domain"
)

// EquipmentRepository defines the store operations the service needs.
// RentOne and ReturnOne are the atomic mutations; everything else is a
// read.
type EquipmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	ListAll(ctx context.Context) ([]domain.Equipment, error)
	RentOne(ctx context.Context, equipmentID int64, username string) (int64, error)
	ReturnOne(ctx context.Context, equipmentID int64, username string) error
	ListRentalsFor(ctx context.Context, username string) ([]domain.RentalDetails, error)
	ListAllRentals(ctx context.Context) ([]domain.RentalDetails, error)
	CountRentalsFor(ctx context.Context, username string) (int64, error)
}

// JournalAppender records the financial entry after a mutation commits.
type JournalAppender interface {
	Append(ctx context.Context, username string, kind domain.TransactionKind, when time.Time) (*domain.Transaction, error)
}
