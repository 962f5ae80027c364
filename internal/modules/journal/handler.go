package journal

import (
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

// RegisterRoutes mounts the read-only journal endpoints. There is no
// write endpoint: entries are appended internally by the domain
// services.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	rg.GET("/transactions/me", h.ListMine)
	rg.GET("/transactions", adminOnly, h.ListAll)
}

func (h *Handler) ListMine(c *gin.Context) {
	username := c.GetString("username")

	entries, err := h.service.ListFor(c.Request.Context(), username)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load transactions")
		return
	}

	balance, err := h.service.BalanceFor(c.Request.Context(), username)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute balance")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"transactions": entries,
		"balance":      balance,
	})
}

func (h *Handler) ListAll(c *gin.Context) {
	entries, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load transactions")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"transactions": entries})
}
