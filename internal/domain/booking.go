package domain

import "time"

type Slot string

const (
	SlotMorning Slot = "9-13"
	SlotDay     Slot = "13-17"
	SlotEvening Slot = "17-20"
)

func ValidSlots() []Slot {
	return []Slot{SlotMorning, SlotDay, SlotEvening}
}

// StartHour is the hour of day the slot window opens.
func (s Slot) StartHour() int {
	switch s {
	case SlotDay:
		return 13
	case SlotEvening:
		return 17
	default:
		return 9
	}
}

// StartTime anchors the slot on the given calendar day.
func (s Slot) StartTime(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), s.StartHour(), 0, 0, 0, day.Location())
}

// Booking is a ski-pass reservation for one slot window. Slots carry no
// capacity cap: any number of bookings may share a slot and day.
type Booking struct {
	ID       int64     `json:"id"`
	Username string    `json:"username"`
	Slot     Slot      `json:"slot"`
	Time     time.Time `json:"time"`
}
