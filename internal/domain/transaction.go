package domain

import "time"

type TransactionKind string

const (
	KindBooking       TransactionKind = "booking"
	KindCancelBooking TransactionKind = "cancel_booking"
	KindRentEquipment TransactionKind = "rent_eq"
	KindReturnEq      TransactionKind = "return_eq"
	KindLesson        TransactionKind = "lesson"
)

func ValidTransactionKinds() []TransactionKind {
	return []TransactionKind{KindBooking, KindCancelBooking, KindRentEquipment, KindReturnEq, KindLesson}
}

// Amount is the fixed charge recorded for this kind of operation.
func (k TransactionKind) Amount() float64 {
	switch k {
	case KindBooking:
		return 50
	case KindCancelBooking:
		return -50
	case KindRentEquipment:
		return 20
	case KindReturnEq:
		return -20
	case KindLesson:
		return 30
	default:
		return 0
	}
}

// DisplayAmount is the amount shown on statements. Equipment returns are
// charged as a stock movement but the renter keeps no credit, so they
// show as zero.
func (k TransactionKind) DisplayAmount() float64 {
	if k == KindReturnEq {
		return 0
	}
	return k.Amount()
}

// Transaction is one immutable ledger entry. Entries are only ever
// appended, exactly one per successful mutating operation.
type Transaction struct {
	ID        int64           `json:"id"`
	Reference string          `json:"reference"`
	Username  string          `json:"username"`
	Kind      TransactionKind `json:"type"`
	Amount    float64         `json:"amount"`
	Time      time.Time       `json:"time"`
}
