package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"skiresort/internal/domain"
	"skiresort/internal/pkg/response"
	"skiresort/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/slots", h.ListSlots)
	rg.GET("/bookings", h.List)
	rg.POST("/bookings", h.Book)
	rg.DELETE("/bookings/:id", h.Cancel)
	rg.PUT("/bookings/:id", h.Transfer)
}

func (h *Handler) ListSlots(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"slots": h.service.AvailableSlots()})
}

func (h *Handler) List(c *gin.Context) {
	username := c.GetString("username")
	role := domain.UserRole(c.GetString("role"))

	bookings, err := h.service.ListForActor(c.Request.Context(), username, role)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) Book(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request", errs)
		return
	}

	day, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date, expected YYYY-MM-DD")
		return
	}

	username := c.GetString("username")
	b, err := h.service.Book(c.Request.Context(), username, domain.Slot(req.Slot), day)
	if err != nil {
		switch {
		case errors.Is(err, ErrJournalAppend):
			response.SuccessWithWarning(c, http.StatusCreated, gin.H{"booking": b}, err.Error())
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	username := c.GetString("username")
	if err := h.service.Cancel(c.Request.Context(), id, username); err != nil {
		switch {
		case errors.Is(err, ErrJournalAppend):
			response.SuccessWithWarning(c, http.StatusOK, gin.H{"cancelled": true}, err.Error())
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cancelled": true})
}

func (h *Handler) Transfer(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid transfer request", errs)
		return
	}

	day, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date, expected YYYY-MM-DD")
		return
	}

	username := c.GetString("username")
	b, err := h.service.Transfer(c.Request.Context(), id, username, domain.Slot(req.Slot), day)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to transfer booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return 0, false
	}
	return id, true
}
