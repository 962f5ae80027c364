package rules

import (
	"testing"
	"time"

	"skiresort/internal/domain"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func TestCheckBookingRequest(t *testing.T) {
	future := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		slot     domain.Slot
		when     time.Time
		username string
		valid    bool
	}{
		{"valid morning slot", domain.SlotMorning, future, "alice", true},
		{"valid evening slot", domain.SlotEvening, future, "alice", true},
		{"empty slot", "", future, "alice", false},
		{"unknown slot", "10-12", future, "alice", false},
		{"zero date", domain.SlotMorning, time.Time{}, "alice", false},
		{"empty username", domain.SlotMorning, future, "", false},
		{"past date", domain.SlotMorning, testNow.AddDate(0, 0, -1), "alice", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CheckBookingRequest(tt.slot, tt.when, tt.username, testNow)
			assert.Equal(t, tt.valid, r.Valid, r.Message)
		})
	}
}

func TestCheckTransferRequest(t *testing.T) {
	current := &domain.Booking{
		ID:       1,
		Username: "alice",
		Slot:     domain.SlotMorning,
		Time:     time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC),
	}
	newDay := time.Date(2026, 1, 21, 13, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		booking *domain.Booking
		slot    domain.Slot
		when    time.Time
		actor   string
		valid   bool
	}{
		{"valid transfer", current, domain.SlotDay, newDay, "alice", true},
		{"nil booking", nil, domain.SlotDay, newDay, "alice", false},
		{"not the owner", current, domain.SlotDay, newDay, "bob", false},
		{"unknown slot", current, "10-12", newDay, "alice", false},
		{"past target", current, domain.SlotDay, testNow.AddDate(0, 0, -2), "alice", false},
		{"same slot and day", current, domain.SlotMorning, current.Time, "alice", false},
		{"same slot different day", current, domain.SlotMorning, current.Time.AddDate(0, 0, 1), "alice", true},
		{"same day different slot", current, domain.SlotDay, time.Date(2026, 1, 20, 13, 0, 0, 0, time.UTC), "alice", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CheckTransferRequest(tt.booking, tt.slot, tt.when, tt.actor, testNow)
			assert.Equal(t, tt.valid, r.Valid, r.Message)
		})
	}
}

func TestCheckCancellationRequest(t *testing.T) {
	b := &domain.Booking{ID: 1, Username: "alice"}

	assert.True(t, CheckCancellationRequest(b, "alice").Valid)
	assert.False(t, CheckCancellationRequest(b, "bob").Valid)
	assert.False(t, CheckCancellationRequest(nil, "alice").Valid)
}

func TestCheckLessonRequest(t *testing.T) {
	day := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		instructor string
		username   string
		when       time.Time
		valid      bool
	}{
		{"valid mid-day lesson", "Ivan", "alice", day.Add(10 * time.Hour), true},
		{"first hour ok", "Ivan", "alice", day.Add(8 * time.Hour), true},
		{"last hour ok", "Ivan", "alice", day.Add(18 * time.Hour), true},
		{"before opening", "Ivan", "alice", day.Add(7 * time.Hour), false},
		{"after closing", "Ivan", "alice", day.Add(19 * time.Hour), false},
		{"empty instructor", "", "alice", day.Add(10 * time.Hour), false},
		{"empty username", "Ivan", "", day.Add(10 * time.Hour), false},
		{"in the past", "Ivan", "alice", testNow.AddDate(0, 0, -1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CheckLessonRequest(tt.instructor, tt.username, tt.when, testNow)
			assert.Equal(t, tt.valid, r.Valid, r.Message)
		})
	}
}

func TestCheckRentalRequest(t *testing.T) {
	tests := []struct {
		name     string
		eqType   string
		size     string
		username string
		valid    bool
	}{
		{"valid ski", "ski", "42", "alice", true},
		{"valid snowboard", "snowboard", "M", "alice", true},
		{"type case insensitive", "Ski", "42", "alice", true},
		{"empty username", "ski", "42", "", false},
		{"empty type", "", "42", "alice", false},
		{"empty size", "ski", "", "alice", false},
		{"unknown type", "sledge", "42", "alice", false},
		{"unknown size", "ski", "99", "alice", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CheckRentalRequest(tt.eqType, tt.size, tt.username)
			assert.Equal(t, tt.valid, r.Valid, r.Message)
		})
	}
}

func TestCheckReturnRequest(t *testing.T) {
	rental := &domain.RentalDetails{RentalID: 1, Username: "alice"}

	assert.True(t, CheckReturnRequest(rental, "alice").Valid)
	assert.False(t, CheckReturnRequest(rental, "bob").Valid)
	assert.False(t, CheckReturnRequest(nil, "alice").Valid)
	assert.False(t, CheckReturnRequest(rental, "").Valid)
}

func TestCheckRentalLimit(t *testing.T) {
	assert.True(t, CheckRentalLimit(0, 5).Valid)
	assert.True(t, CheckRentalLimit(4, 5).Valid)
	assert.False(t, CheckRentalLimit(5, 5).Valid)
	assert.False(t, CheckRentalLimit(7, 5).Valid)

	// non-positive max falls back to the default cap
	assert.True(t, CheckRentalLimit(4, 0).Valid)
	assert.False(t, CheckRentalLimit(DefaultMaxRentals, 0).Valid)
}
