package routes

import (
	"thawaqa-backend/handlers"
	"thawaqa-backend/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize handlers
	authHandler := &handlers.AuthHandler{DB: db}
	categoryHandler := &handlers.CategoryHandler{DB: db}
	menuItemHandler := &handlers.MenuItemHandler{DB: db}
	settingsHandler := &handlers.SettingsHandler{DB: db}
	seedHandler := &handlers.SeedHandler{DB: db}

	// Public routes
	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		api.GET("/categories", categoryHandler.GetCategories)
		api.GET("/menu-items", menuItemHandler.GetMenuItems)
		api.GET("/settings", settingsHandler.GetSettings)
	}

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/auth/profile", authHandler.GetProfile)
	}

	// Admin routes (require admin role); same paths as the public reads,
	// gated per HTTP method
	admin := api.Group("")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		// Category management
		admin.POST("/categories", categoryHandler.CreateCategory)
		admin.PUT("/categories", categoryHandler.UpdateCategory)
		admin.DELETE("/categories", categoryHandler.DeleteCategory)

		// Menu item management
		admin.POST("/menu-items", menuItemHandler.CreateMenuItem)
		admin.PUT("/menu-items", menuItemHandler.UpdateMenuItem)
		admin.DELETE("/menu-items", menuItemHandler.DeleteMenuItem)

		// Settings management
		admin.PUT("/settings", settingsHandler.UpdateSettings)

		// Fixture loading
		admin.GET("/seed", seedHandler.SeedDatabase)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
