package catalog

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
// GET /companies/:id/catalog (PUBLIC)
// --------------------------------------------------
func (h *Handler) GetCatalog(c *gin.Context) {
	companyID := c.Param("id")

	categories, err := h.service.ListCategories(c.Request.Context(), companyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load categories"})
		return
	}

	products, err := h.service.ListProducts(c.Request.Context(), companyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"products":   products,
	})
}

// --------------------------------------------------
// POST /catalog/categories (COMPANY)
// --------------------------------------------------
func (h *Handler) CreateCategory(c *gin.Context) {
	companyID := c.GetString("companyID")

	var req struct {
		Name  string `json:"name"`
		Order int    `json:"order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	category, err := h.service.CreateCategory(
		c.Request.Context(),
		companyID,
		req.Name,
		req.Order,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, category)
}

// --------------------------------------------------
// PUT /catalog/categories/:id (COMPANY)
// --------------------------------------------------
func (h *Handler) UpdateCategory(c *gin.Context) {
	var category Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	category.ID = c.Param("id")
	category.CompanyID = c.GetString("companyID")

	if err := h.service.UpdateCategory(c.Request.Context(), &category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, category)
}

// --------------------------------------------------
// DELETE /catalog/categories/:id (COMPANY)
// --------------------------------------------------
func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.service.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}

// --------------------------------------------------
// POST /catalog/products (COMPANY)
// --------------------------------------------------
func (h *Handler) CreateProduct(c *gin.Context) {
	var product Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	product.CompanyID = c.GetString("companyID")

	if err := h.service.CreateProduct(c.Request.Context(), &product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// --------------------------------------------------
// PUT /catalog/products/:id (COMPANY)
// --------------------------------------------------
func (h *Handler) UpdateProduct(c *gin.Context) {
	var product Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	product.ID = c.Param("id")
	product.CompanyID = c.GetString("companyID")

	if err := h.service.UpdateProduct(c.Request.Context(), &product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

// --------------------------------------------------
// DELETE /catalog/products/:id (COMPANY)
// --------------------------------------------------
func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.service.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// --------------------------------------------------
// POST /catalog/products/image (COMPANY)
// --------------------------------------------------
func (h *Handler) UploadProductImage(c *gin.Context) {
	companyID := c.GetString("companyID")

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	defer file.Close()

	url, err := h.service.UploadProductImage(
		c.Request.Context(),
		companyID,
		file,
		header.Filename,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
