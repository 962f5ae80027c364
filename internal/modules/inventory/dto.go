package inventory

type RentRequest struct {
	EquipmentID int64 `json:"equipment_id" binding:"required"`
}

type ReturnRequest struct {
	EquipmentID int64 `json:"equipment_id" binding:"required"`
}
