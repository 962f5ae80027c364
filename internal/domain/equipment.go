package domain

// Equipment is a countable rental unit pool, one row per (type, size).
// Invariant: 0 <= Available <= Total. Available moves only through
// rent/return, never by direct assignment.
type Equipment struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Size      string `json:"size"`
	Total     int    `json:"total"`
	Available int    `json:"available"`
}

// Rental is one active checkout of a single unit. At most one active
// rental exists per (equipment, renter) pair.
type Rental struct {
	ID          int64  `json:"id"`
	EquipmentID int64  `json:"equipment_id"`
	Username    string `json:"username"`
}

// RentalDetails joins a rental with the equipment metadata callers
// display. Read-only view, never written back.
type RentalDetails struct {
	RentalID    int64  `json:"rental_id"`
	EquipmentID int64  `json:"equipment_id"`
	Type        string `json:"type"`
	Size        string `json:"size"`
	Username    string `json:"username"`
}

func ValidEquipmentTypes() []string {
	return []string{"ski", "snowboard"}
}

func ValidEquipmentSizes() []string {
	return []string{"S", "M", "L", "XL", "36", "37", "38", "39", "40", "41", "42", "43", "44", "45"}
}
