package coupon

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
// POST /coupons (COMPANY)
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var coupon Coupon
	if err := c.ShouldBindJSON(&coupon); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	coupon.CompanyID = c.GetString("companyID")

	if err := h.service.Create(c.Request.Context(), &coupon); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, coupon)
}

// --------------------------------------------------
// GET /coupons (COMPANY)
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	coupons, err := h.service.ListByCompany(
		c.Request.Context(),
		c.GetString("companyID"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, coupons)
}

// --------------------------------------------------
// DELETE /coupons/:id (COMPANY)
// --------------------------------------------------
func (h *Handler) Deactivate(c *gin.Context) {
	if err := h.service.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "coupon deactivated"})
}
