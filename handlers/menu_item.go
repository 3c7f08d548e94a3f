package handlers

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"thawaqa-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MenuItemHandler struct {
	DB *gorm.DB
}

type menuItemRequest struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name" binding:"required"`
	NameAr        string          `json:"nameAr" binding:"required"`
	Description   string          `json:"description"`
	DescriptionAr string          `json:"descriptionAr"`
	Price         json.RawMessage `json:"price"`
	Image         string          `json:"image"`
	CategoryID    uuid.UUID       `json:"categoryId"`
	SortOrder     *int            `json:"sortOrder"`
	IsActive      *bool           `json:"isActive"`
	IsAvailable   *bool           `json:"isAvailable"`
}

// parsePrice accepts the price as either a JSON number or a numeric string
// (clients post both). Anything that does not parse as a non-negative number
// is rejected rather than silently stored as zero.
func parsePrice(raw json.RawMessage) (float64, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0, fmt.Errorf("price is required")
	}
	s = strings.Trim(s, `"`)
	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("price must be a valid number")
	}
	// ParseFloat accepts "NaN" and "Inf" without error
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("price must be a valid number")
	}
	if price < 0 {
		return 0, fmt.Errorf("price cannot be negative")
	}
	return price, nil
}

// GetMenuItems returns menu items with their owning category, ordered by sort
// order then creation time (newest first). Supports filtering by category,
// free-text search across both languages, and activeOnly for the public menu.
func (h *MenuItemHandler) GetMenuItems(c *gin.Context) {
	var items []models.MenuItem
	query := h.DB.Preload("Category")

	if categoryID := c.Query("categoryId"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	// Public menu only shows items that are published AND in stock
	if c.Query("activeOnly") == "true" {
		query = query.Where("is_active = ? AND is_available = ?", true, true)
	}

	if search := c.Query("search"); search != "" {
		// Escape LIKE metacharacters so a term like "100%" matches literally
		escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(search)
		pattern := "%" + escaped + "%"
		query = query.Where(
			`LOWER(name) LIKE LOWER(?) ESCAPE '\' OR LOWER(name_ar) LIKE LOWER(?) ESCAPE '\' OR LOWER(description) LIKE LOWER(?) ESCAPE '\' OR LOWER(description_ar) LIKE LOWER(?) ESCAPE '\'`,
			pattern, pattern, pattern, pattern,
		)
	}

	if err := query.Order("sort_order asc").Order("created_at desc").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu items"})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *MenuItemHandler) CreateMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item data"})
		return
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.CategoryID == uuid.Nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category ID is required"})
		return
	}

	// Validate that the owning category exists
	if err := h.DB.First(&models.Category{}, "id = ?", req.CategoryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	item := models.MenuItem{
		ID:            uuid.New(),
		Name:          req.Name,
		NameAr:        req.NameAr,
		Description:   req.Description,
		DescriptionAr: req.DescriptionAr,
		Price:         price,
		Image:         req.Image,
		CategoryID:    req.CategoryID,
		IsActive:      true,
		IsAvailable:   true,
	}
	if req.SortOrder != nil {
		item.SortOrder = *req.SortOrder
	}

	if err := h.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}

	// Return the item with its category preloaded
	if err := h.DB.Preload("Category").First(&item, "id = ?", item.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch created menu item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *MenuItemHandler) UpdateMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item data"})
		return
	}

	if req.ID == uuid.Nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item ID is required"})
		return
	}

	var item models.MenuItem
	if err := h.DB.Where("id = ?", req.ID).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Validate the owning category if it is being changed
	if req.CategoryID != uuid.Nil && req.CategoryID != item.CategoryID {
		if err := h.DB.First(&models.Category{}, "id = ?", req.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}
		item.CategoryID = req.CategoryID
	}

	item.Name = req.Name
	item.NameAr = req.NameAr
	item.Description = req.Description
	item.DescriptionAr = req.DescriptionAr
	item.Price = price
	item.Image = req.Image
	if req.SortOrder != nil {
		item.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := h.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}

	if err := h.DB.Preload("Category").First(&item, "id = ?", item.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated menu item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *MenuItemHandler) DeleteMenuItem(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item ID is required"})
		return
	}

	var item models.MenuItem
	if err := h.DB.Where("id = ?", id).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	if err := h.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
