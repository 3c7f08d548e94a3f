package handlers

import (
	"net/http"

	"thawaqa-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryHandler struct {
	DB *gorm.DB
}

// GetCategories returns all categories ordered by sort order, each annotated
// with its current menu item count.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := h.DB.Order("sort_order asc").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}

	for i := range categories {
		if err := h.DB.Model(&models.MenuItem{}).
			Where("category_id = ?", categories[i].ID).
			Count(&categories[i].ItemCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req struct {
		Name      string `json:"name" binding:"required"`
		NameAr    string `json:"nameAr" binding:"required"`
		Icon      string `json:"icon"`
		SortOrder int    `json:"sortOrder"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category data"})
		return
	}

	category := models.Category{
		ID:        uuid.New(),
		Name:      req.Name,
		NameAr:    req.NameAr,
		Icon:      req.Icon,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}

	if err := h.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req struct {
		ID        uuid.UUID `json:"id" binding:"required"`
		Name      string    `json:"name" binding:"required"`
		NameAr    string    `json:"nameAr" binding:"required"`
		Icon      string    `json:"icon"`
		SortOrder *int      `json:"sortOrder"`
		IsActive  *bool     `json:"isActive"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category data"})
		return
	}

	var category models.Category
	if err := h.DB.Where("id = ?", req.ID).First(&category).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	category.Name = req.Name
	category.NameAr = req.NameAr
	category.Icon = req.Icon
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := h.DB.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory removes a category that has no menu items. A category with
// items cannot be deleted; the items must be deleted or moved first.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category ID is required"})
		return
	}

	var category models.Category
	if err := h.DB.Where("id = ?", id).First(&category).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var itemCount int64
	if err := h.DB.Model(&models.MenuItem{}).Where("category_id = ?", id).Count(&itemCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check category dependencies"})
		return
	}

	if itemCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cannot delete category with items. Please delete or move items first.",
		})
		return
	}

	if err := h.DB.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
