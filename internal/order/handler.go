package order

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mathdino/mb-cardapionline/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /orders (COMPANY)
// --------------------------------------------------
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.service.ListByCompany(
		c.Request.Context(),
		c.GetString("companyID"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// --------------------------------------------------
// PATCH /orders/:id/status (COMPANY)
// --------------------------------------------------
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status Status `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		if core.IsValidationFailure(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, order)
}
