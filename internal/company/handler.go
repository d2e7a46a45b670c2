package company

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
// GET /companies/slug/:slug (PUBLIC)
// --------------------------------------------------
func (h *Handler) GetBySlug(c *gin.Context) {
	company, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "estabelecimento não encontrado"})
		return
	}
	c.JSON(http.StatusOK, company)
}

// --------------------------------------------------
// GET /companies/me (COMPANY)
// --------------------------------------------------
func (h *Handler) GetMine(c *gin.Context) {
	company, err := h.service.GetByID(c.Request.Context(), c.GetString("companyID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
		return
	}
	c.JSON(http.StatusOK, company)
}

// --------------------------------------------------
// PUT /companies/me (COMPANY)
// --------------------------------------------------
func (h *Handler) UpdateMine(c *gin.Context) {
	var company Company
	if err := c.ShouldBindJSON(&company); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	company.ID = c.GetString("companyID")

	if err := h.service.Update(c.Request.Context(), &company); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, company)
}

// --------------------------------------------------
// POST /companies/me/images (COMPANY)
// --------------------------------------------------
func (h *Handler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	defer file.Close()

	url, err := h.service.UploadImage(
		c.Request.Context(),
		c.GetString("companyID"),
		c.PostForm("kind"),
		file,
		header.Filename,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// --------------------------------------------------
// ADMIN
// --------------------------------------------------

// POST /admin/companies
func (h *Handler) Create(c *gin.Context) {
	var company Company
	if err := c.ShouldBindJSON(&company); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.Create(c.Request.Context(), &company); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, company)
}

// GET /admin/companies
func (h *Handler) ListAll(c *gin.Context) {
	companies, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, companies)
}
