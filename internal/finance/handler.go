package finance

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /finance/summary (COMPANY)
// --------------------------------------------------
func (h *Handler) GetSummary(c *gin.Context) {
	summary, err := h.service.Summarize(
		c.Request.Context(),
		c.GetString("companyID"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
