package booking

const dateLayout = "2006-01-02"

type BookRequest struct {
	Slot string `json:"slot" binding:"required" validate:"required,slot"`
	Date string `json:"date" binding:"required" validate:"required"`
}

type TransferRequest struct {
	Slot string `json:"slot" binding:"required" validate:"required,slot"`
	Date string `json:"date" binding:"required" validate:"required"`
}
