package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skiresort/internal/domain"
	"skiresort/internal/rules"

	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	journal  JournalAppender
	now      func() time.Time
}

func NewService(bookings BookingRepository, journal JournalAppender) *Service {
	return &Service{
		bookings: bookings,
		journal:  journal,
		now:      time.Now,
	}
}

// Book places a ski-pass reservation on the slot window of the given
// day. Slots have no capacity cap, so once the preconditions pass the
// booking always lands; the +50 charge is journaled after the insert
// commits.
func (s *Service) Book(ctx context.Context, username string, slot domain.Slot, day time.Time) (*domain.Booking, error) {
	when := slot.StartTime(day)

	if r := rules.CheckBookingRequest(slot, when, username, s.now()); !r.Valid {
		return nil, fmt.Errorf("%w: %s", ErrValidation, r.Message)
	}

	b := &domain.Booking{
		Username: username,
		Slot:     slot,
		Time:     when,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if _, err := s.journal.Append(ctx, username, domain.KindBooking, when); err != nil {
		return b, fmt.Errorf("%w: %v", ErrJournalAppend, err)
	}
	return b, nil
}

// Cancel deletes the booking and journals the mirroring -50 entry. Only
// the owner may cancel; anyone else gets a validation failure and the
// booking is left untouched.
func (s *Service) Cancel(ctx context.Context, bookingID int64, actor string) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if r := rules.CheckCancellationRequest(b, actor); !r.Valid {
		return fmt.Errorf("%w: %s", ErrValidation, r.Message)
	}

	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if _, err := s.journal.Append(ctx, actor, domain.KindCancelBooking, s.now()); err != nil {
		return fmt.Errorf("%w: %v", ErrJournalAppend, err)
	}
	return nil
}

// Transfer moves the booking to a new slot and day in place. Transfers
// are free, so nothing is journaled. Moving to the identical slot and
// day is rejected as a no-op.
func (s *Service) Transfer(ctx context.Context, bookingID int64, actor string, newSlot domain.Slot, newDay time.Time) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	newWhen := newSlot.StartTime(newDay)
	if r := rules.CheckTransferRequest(b, newSlot, newWhen, actor, s.now()); !r.Valid {
		return nil, fmt.Errorf("%w: %s", ErrValidation, r.Message)
	}

	if err := s.bookings.Update(ctx, bookingID, newSlot, newWhen); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	b.Slot = newSlot
	b.Time = newWhen
	return b, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.ListAll(ctx)
}

func (s *Service) ListFor(ctx context.Context, username string) ([]domain.Booking, error) {
	return s.bookings.ListFor(ctx, username)
}

// ListForActor returns everything for admins and only the actor's own
// bookings otherwise.
func (s *Service) ListForActor(ctx context.Context, username string, role domain.UserRole) ([]domain.Booking, error) {
	if role == domain.RoleAdmin {
		return s.bookings.ListAll(ctx)
	}
	return s.bookings.ListFor(ctx, username)
}

func (s *Service) AvailableSlots() []domain.Slot {
	return domain.ValidSlots()
}
