package inventory

import (
	"errors"
	"net/http"

	"skiresort/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	rg.GET("/equipment", h.ListEquipment)
	rg.GET("/rentals/me", h.ListMyRentals)
	rg.GET("/rentals", adminOnly, h.ListAllRentals)
	rg.POST("/rentals", h.Rent)
	rg.DELETE("/rentals", h.Return)
}

func (h *Handler) ListEquipment(c *gin.Context) {
	var (
		err  error
		rows any
	)
	if c.Query("available") == "true" {
		rows, err = h.service.ListAvailable(c.Request.Context())
	} else {
		rows, err = h.service.ListAll(c.Request.Context())
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load equipment")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"equipment": rows})
}

func (h *Handler) Rent(c *gin.Context) {
	var req RentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	username := c.GetString("username")
	rentalID, err := h.service.Rent(c.Request.Context(), req.EquipmentID, username)
	if err != nil {
		switch {
		case errors.Is(err, ErrJournalAppend):
			// rental committed; only the journal entry is missing
			response.SuccessWithWarning(c, http.StatusCreated, gin.H{"rental_id": rentalID}, err.Error())
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Equipment not found")
		case errors.Is(err, ErrNoneAvailable):
			response.Error(c, http.StatusConflict, "NONE_AVAILABLE", "No units of this equipment are available")
		case errors.Is(err, ErrAlreadyRented):
			response.Error(c, http.StatusConflict, "ALREADY_RENTED", "You already rent a unit of this equipment")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to rent equipment")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"rental_id": rentalID})
}

func (h *Handler) Return(c *gin.Context) {
	var req ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	username := c.GetString("username")
	if err := h.service.Return(c.Request.Context(), req.EquipmentID, username); err != nil {
		switch {
		case errors.Is(err, ErrJournalAppend):
			response.SuccessWithWarning(c, http.StatusOK, gin.H{"returned": true}, err.Error())
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrNoActiveRent):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "No active rental for this equipment")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to return equipment")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"returned": true})
}

func (h *Handler) ListMyRentals(c *gin.Context) {
	rentals, err := h.service.ListRentalsFor(c.Request.Context(), c.GetString("username"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load rentals")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rentals": rentals})
}

func (h *Handler) ListAllRentals(c *gin.Context) {
	rentals, err := h.service.ListAllRentals(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load rentals")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rentals": rentals})
}
