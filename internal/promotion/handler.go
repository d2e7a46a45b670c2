package promotion

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
// POST /promotions (COMPANY)
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var promotion Promotion
	if err := c.ShouldBindJSON(&promotion); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	promotion.CompanyID = c.GetString("companyID")

	if err := h.service.Create(c.Request.Context(), &promotion); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, promotion)
}

// --------------------------------------------------
// GET /promotions (COMPANY)
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	promotions, err := h.service.ListByCompany(
		c.Request.Context(),
		c.GetString("companyID"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, promotions)
}

// --------------------------------------------------
// PATCH /promotions/:id (COMPANY) — toggle active
// --------------------------------------------------
func (h *Handler) SetActive(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id"`
		IsActive  bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.SetActive(
		c.Request.Context(),
		c.Param("id"),
		req.ProductID,
		req.IsActive,
	); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "promotion updated"})
}

// --------------------------------------------------
// DELETE /promotions/:id (COMPANY)
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.Delete(
		c.Request.Context(),
		c.Param("id"),
		req.ProductID,
	); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "promotion deleted"})
}
