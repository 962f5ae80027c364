package reporting

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	rg.GET("/reports/summary/me", h.MySummary)
	rg.GET("/reports/revenue/weekly", adminOnly, h.WeeklyRevenue)
	rg.GET("/reports/revenue/monthly", adminOnly, h.MonthlyCategories)
}

func (h *Handler) MySummary(c *gin.Context) {
	username := c.GetString("username")

	summary, err := h.service.SummaryFor(c.Request.Context(), username)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build summary")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"summary": summary})
}

func (h *Handler) WeeklyRevenue(c *gin.Context) {
	rows, err := h.service.WeeklyRevenue(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build revenue report")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"revenue": rows})
}

func (h *Handler) MonthlyCategories(c *gin.Context) {
	report, err := h.service.MonthlyCategories(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build monthly report")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"report": report})
}
