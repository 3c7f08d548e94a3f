package handlers

import (
	"errors"
	"net/http"

	"thawaqa-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SettingsHandler struct {
	DB *gorm.DB
}

// GetSettings returns the settings row, creating it with default branding the
// first time it is read.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	var settings models.Settings
	err := h.DB.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.Settings{
			ID:               uuid.New(),
			RestaurantName:   models.DefaultRestaurantName,
			RestaurantNameEn: models.DefaultRestaurantNameEn,
		}
		if err := h.DB.Create(&settings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create settings"})
			return
		}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings upserts the settings row: it creates the row when none
// exists yet, so calling it before GetSettings is safe. An omitted logo key
// keeps the stored logo.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req struct {
		RestaurantName   string  `json:"restaurantName" binding:"required"`
		RestaurantNameEn string  `json:"restaurantNameEn" binding:"required"`
		Logo             *string `json:"logo"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid settings data"})
		return
	}

	var settings models.Settings
	err := h.DB.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.Settings{
			ID:               uuid.New(),
			RestaurantName:   req.RestaurantName,
			RestaurantNameEn: req.RestaurantNameEn,
			Logo:             req.Logo,
		}
		if err := h.DB.Create(&settings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}

	settings.RestaurantName = req.RestaurantName
	settings.RestaurantNameEn = req.RestaurantNameEn
	if req.Logo != nil {
		settings.Logo = req.Logo
	}

	if err := h.DB.Save(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}
