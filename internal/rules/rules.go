// Package rules holds the pure precondition checks run before any store
// mutation. Every check returns a Result instead of an error so callers
// can show the message as user-facing feedback. The checks are advisory:
// the repositories still enforce availability and exclusivity atomically,
// because a check here can always go stale before the write lands.
package rules

import (
	"fmt"
	"strings"
	"time"

	"skiresort/internal/domain"
)

// DefaultMaxRentals is the fallback cap on simultaneous rentals per
// renter when config does not override it.
const DefaultMaxRentals = 5

type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

func ok(message string) Result {
	return Result{Valid: true, Message: message}
}

func fail(message string) Result {
	return Result{Valid: false, Message: message}
}

// CheckBookingRequest validates a slot reservation before it is placed.
func CheckBookingRequest(slot domain.Slot, when time.Time, username string, now time.Time) Result {
	if strings.TrimSpace(string(slot)) == "" {
		return fail("Please select a time slot")
	}
	if !isValidSlot(slot) {
		return fail("Invalid time slot selected")
	}
	if when.IsZero() {
		return fail("Please select a date")
	}
	if strings.TrimSpace(username) == "" {
		return fail("User must be logged in")
	}
	if when.Before(now) {
		return fail("Cannot book time slots in the past")
	}
	return ok("Valid booking request")
}

// CheckTransferRequest validates moving an existing booking to a new
// slot and day. A transfer to the identical slot and day is rejected as
// a pointless no-op.
func CheckTransferRequest(b *domain.Booking, newSlot domain.Slot, newWhen time.Time, actor string, now time.Time) Result {
	if b == nil {
		return fail("Please select a booking to transfer")
	}
	if b.Username != actor {
		return fail("You can only transfer your own bookings")
	}
	if strings.TrimSpace(string(newSlot)) == "" {
		return fail("Please select a new time slot")
	}
	if !isValidSlot(newSlot) {
		return fail("Invalid time slot selected")
	}
	if newWhen.IsZero() {
		return fail("Please select a new date")
	}
	if newWhen.Before(now) {
		return fail("Cannot transfer to time slots in the past")
	}
	if b.Slot == newSlot && sameDay(b.Time, newWhen) {
		return fail("New slot and date are the same as current booking")
	}
	return ok("Valid transfer request")
}

// CheckCancellationRequest validates that the actor owns the booking.
func CheckCancellationRequest(b *domain.Booking, actor string) Result {
	if b == nil {
		return fail("Please select a booking to cancel")
	}
	if b.Username != actor {
		return fail("You can only cancel your own bookings")
	}
	return ok("Valid cancellation request")
}

// CheckLessonRequest validates an instructor lesson booking. Lessons
// start on the hour, between LessonFirstHour and LessonLastHour.
func CheckLessonRequest(instructor, username string, when time.Time, now time.Time) Result {
	if strings.TrimSpace(instructor) == "" {
		return fail("Please select an instructor")
	}
	if strings.TrimSpace(username) == "" {
		return fail("User must be logged in")
	}
	if when.IsZero() {
		return fail("Please select a lesson time")
	}
	if when.Before(now) {
		return fail("Cannot book lessons in the past")
	}
	if when.Hour() < domain.LessonFirstHour || when.Hour() > domain.LessonLastHour {
		return fail(fmt.Sprintf("Lessons run between %d:00 and %d:00", domain.LessonFirstHour, domain.LessonLastHour))
	}
	return ok("Valid lesson request")
}

// CheckRentalRequest validates an equipment rental before the atomic
// claim is attempted.
func CheckRentalRequest(eqType, size, username string) Result {
	if strings.TrimSpace(username) == "" {
		return fail("User must be logged in")
	}
	if strings.TrimSpace(eqType) == "" {
		return fail("Please select equipment type")
	}
	if strings.TrimSpace(size) == "" {
		return fail("Please select equipment size")
	}
	if !containsFold(domain.ValidEquipmentTypes(), eqType) {
		return fail("Invalid equipment type selected")
	}
	if !contains(domain.ValidEquipmentSizes(), size) {
		return fail("Invalid size selected")
	}
	return ok("Valid rental request")
}

// CheckReturnRequest validates that the actor holds the rental.
func CheckReturnRequest(rental *domain.RentalDetails, username string) Result {
	if strings.TrimSpace(username) == "" {
		return fail("User must be logged in")
	}
	if rental == nil {
		return fail("Please select equipment to return")
	}
	if rental.Username != username {
		return fail("You can only return equipment you have rented")
	}
	return ok("Valid return request")
}

// CheckRentalLimit enforces the per-renter cap on simultaneous rentals.
func CheckRentalLimit(active int64, max int) Result {
	if max <= 0 {
		max = DefaultMaxRentals
	}
	if active >= int64(max) {
		return fail(fmt.Sprintf("Rental limit reached: at most %d items at a time", max))
	}
	return ok("Within rental limit")
}

func isValidSlot(slot domain.Slot) bool {
	for _, s := range domain.ValidSlots() {
		if s == slot {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsFold(list []string, v string) bool {
	for _, s := range list {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
