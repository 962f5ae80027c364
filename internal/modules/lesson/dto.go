package lesson

type BookRequest struct {
	Instructor string `json:"instructor" binding:"required" validate:"required"`
	Date       string `json:"date" binding:"required" validate:"required"`
	Hour       int    `json:"hour" binding:"required" validate:"min=0,max=23"`
}
