package lesson

import (
	"errors"
	"net/http"
	"time"

	"skiresort/internal/pkg/response"
	"skiresort/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	rg.GET("/instructors", h.ListInstructors)
	rg.GET("/lessons/me", h.ListMine)
	rg.GET("/lessons", adminOnly, h.ListAll)
	rg.POST("/lessons", h.Book)
}

func (h *Handler) ListInstructors(c *gin.Context) {
	names, err := h.service.ListInstructors(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load instructors")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"instructors": names})
}

func (h *Handler) Book(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid lesson request", errs)
		return
	}

	day, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date, expected YYYY-MM-DD")
		return
	}
	when := time.Date(day.Year(), day.Month(), day.Day(), req.Hour, 0, 0, 0, time.UTC)

	username := c.GetString("username")
	l, err := h.service.Book(c.Request.Context(), req.Instructor, username, when)
	if err != nil {
		switch {
		case errors.Is(err, ErrJournalAppend):
			response.SuccessWithWarning(c, http.StatusCreated, gin.H{"lesson": l}, err.Error())
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrInstructorNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Instructor not found")
		case errors.Is(err, ErrInstructorBusy):
			response.Error(c, http.StatusConflict, "INSTRUCTOR_BUSY", "Instructor is not available at this time")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to book lesson")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"lesson": l})
}

func (h *Handler) ListMine(c *gin.Context) {
	lessons, err := h.service.ListFor(c.Request.Context(), c.GetString("username"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load lessons")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lessons": lessons})
}

func (h *Handler) ListAll(c *gin.Context) {
	lessons, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load lessons")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lessons": lessons})
}
