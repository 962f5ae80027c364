package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"skiresort/internal/domain"
	"skiresort/internal/repository"
	"skiresort/internal/rules"

	"gorm.io/gorm"
)

type Service struct {
	equipment  EquipmentRepository
	journal    JournalAppender
	maxRentals int
}

func NewService(equipment EquipmentRepository, journal JournalAppender, maxRentals int) *Service {
	if maxRentals <= 0 {
		maxRentals = rules.DefaultMaxRentals
	}
	return &Service{
		equipment:  equipment,
		journal:    journal,
		maxRentals: maxRentals,
	}
}

// Rent claims one unit of the equipment pool for the renter. The
// availability check and decrement happen in one conditional write in
// the repository, so concurrent renters of the last unit cannot both
// succeed. The rules checks before it are advisory: they produce
// friendly messages but never substitute for the atomic claim.
func (s *Service) Rent(ctx context.Context, equipmentID int64, username string) (int64, error) {
	eq, err := s.equipment.GetByID(ctx, equipmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	if r := rules.CheckRentalRequest(eq.Type, eq.Size, username); !r.Valid {
		return 0, fmt.Errorf("%w: %s", ErrValidation, r.Message)
	}

	active, err := s.equipment.CountRentalsFor(ctx, username)
	if err != nil {
		return 0, err
	}
	if r := rules.CheckRentalLimit(active, s.maxRentals); !r.Valid {
		return 0, fmt.Errorf("%w: %s", ErrValidation, r.Message)
	}

	rentalID, err := s.equipment.RentOne(ctx, equipmentID, username)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return 0, ErrNotFound
		case errors.Is(err, repository.ErrNoneAvailable):
			return 0, ErrNoneAvailable
		case errors.Is(err, repository.ErrAlreadyRented):
			return 0, ErrAlreadyRented
		default:
			return 0, err
		}
	}

	if _, err := s.journal.Append(ctx, username, domain.KindRentEquipment, time.Now()); err != nil {
		return rentalID, fmt.Errorf("%w: %v", ErrJournalAppend, err)
	}
	return rentalID, nil
}

// Return hands one unit back. The rental lookup and delete plus the
// availability increment commit together; a missing rental leaves the
// counters untouched. The rules check up front is advisory, the keyed
// delete in ReturnOne is what enforces ownership.
func (s *Service) Return(ctx context.Context, equipmentID int64, username string) error {
	var rental *domain.RentalDetails
	if strings.TrimSpace(username) != "" {
		rentals, err := s.equipment.ListRentalsFor(ctx, username)
		if err != nil {
			return err
		}
		for i := range rentals {
			if rentals[i].EquipmentID == equipmentID {
				rental = &rentals[i]
				break
			}
		}
	}

	if r := rules.CheckReturnRequest(rental, username); !r.Valid {
		if rental == nil && strings.TrimSpace(username) != "" {
			return ErrNoActiveRent
		}
		return fmt.Errorf("%w: %s", ErrValidation, r.Message)
	}

	if err := s.equipment.ReturnOne(ctx, equipmentID, username); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoActiveRent
		}
		return err
	}

	if _, err := s.journal.Append(ctx, username, domain.KindReturnEq, time.Now()); err != nil {
		return fmt.Errorf("%w: %v", ErrJournalAppend, err)
	}
	return nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Equipment, error) {
	return s.equipment.ListAll(ctx)
}

// ListAvailable filters the catalog down to pools with free units.
func (s *Service) ListAvailable(ctx context.Context) ([]domain.Equipment, error) {
	all, err := s.equipment.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]domain.Equipment, 0, len(all))
	for _, eq := range all {
		if eq.Available > 0 {
			available = append(available, eq)
		}
	}
	return available, nil
}

func (s *Service) ListRentalsFor(ctx context.Context, username string) ([]domain.RentalDetails, error) {
	return s.equipment.ListRentalsFor(ctx, username)
}

func (s *Service) ListAllRentals(ctx context.Context) ([]domain.RentalDetails, error) {
	return s.equipment.ListAllRentals(ctx)
}
