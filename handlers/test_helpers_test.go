package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"thawaqa-backend/middleware"
	"thawaqa-backend/models"
	"thawaqa-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret-key-for-unit-tests")

	var err error
	testDB, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect to test database: " + err.Error())
	}
	// Limit to 1 open connection to prevent SQLite concurrent access issues
	// with in-memory databases.
	sqlDB, _ := testDB.DB()
	sqlDB.SetMaxOpenConns(1)

	// Create tables using raw SQLite-compatible SQL instead of AutoMigrate,
	// because the GORM model tags use PostgreSQL-specific defaults like gen_random_uuid().
	if err := createSQLiteTables(testDB); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	code := m.Run()
	os.Exit(code)
}

// freshDB returns a clean database for each test by deleting all rows.
func freshDB() *gorm.DB {
	// Delete in correct order to respect foreign keys
	testDB.Exec("DELETE FROM menu_items")
	testDB.Exec("DELETE FROM categories")
	testDB.Exec("DELETE FROM settings")
	testDB.Exec("DELETE FROM users")
	return testDB
}

// createSQLiteTables creates all tables with SQLite-compatible DDL.
func createSQLiteTables(db *gorm.DB) error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS "users" (
			"id" TEXT PRIMARY KEY,
			"email" TEXT NOT NULL UNIQUE,
			"password" TEXT NOT NULL,
			"name" TEXT,
			"role" TEXT DEFAULT 'admin',
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME
		)`,
		`CREATE INDEX IF NOT EXISTS idx_users_deleted_at ON "users"("deleted_at")`,

		`CREATE TABLE IF NOT EXISTS "categories" (
			"id" TEXT PRIMARY KEY,
			"name" TEXT NOT NULL,
			"name_ar" TEXT NOT NULL,
			"icon" TEXT,
			"sort_order" INTEGER DEFAULT 0,
			"is_active" INTEGER DEFAULT 1,
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME
		)`,
		`CREATE INDEX IF NOT EXISTS idx_categories_deleted_at ON "categories"("deleted_at")`,
		`CREATE INDEX IF NOT EXISTS idx_categories_sort_order ON "categories"("sort_order")`,

		`CREATE TABLE IF NOT EXISTS "menu_items" (
			"id" TEXT PRIMARY KEY,
			"name" TEXT NOT NULL,
			"name_ar" TEXT NOT NULL,
			"description" TEXT,
			"description_ar" TEXT,
			"price" REAL NOT NULL,
			"image" TEXT,
			"category_id" TEXT NOT NULL,
			"is_active" INTEGER DEFAULT 1,
			"is_available" INTEGER DEFAULT 1,
			"sort_order" INTEGER DEFAULT 0,
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME,
			CONSTRAINT fk_menu_items_category FOREIGN KEY ("category_id") REFERENCES "categories"("id")
		)`,
		`CREATE INDEX IF NOT EXISTS idx_menu_items_deleted_at ON "menu_items"("deleted_at")`,
		`CREATE INDEX IF NOT EXISTS idx_menu_items_category_id ON "menu_items"("category_id")`,

		`CREATE TABLE IF NOT EXISTS "settings" (
			"id" TEXT PRIMARY KEY,
			"restaurant_name" TEXT NOT NULL,
			"restaurant_name_en" TEXT NOT NULL,
			"logo" TEXT,
			"created_at" DATETIME,
			"updated_at" DATETIME
		)`,
	}

	for _, sql := range tables {
		if err := db.Exec(sql).Error; err != nil {
			return err
		}
	}
	return nil
}

// seedTestUser creates a user with the given role and returns it along with a valid JWT token.
func seedTestUser(db *gorm.DB, email, role string) (models.User, string) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := models.User{
		ID:       uuid.New(),
		Email:    email,
		Password: string(hashed),
		Name:     "Test User",
		Role:     role,
	}
	db.Create(&user)

	token, _ := utils.GenerateToken(user.ID, user.Email, user.Role)
	return user, token
}

// seedCategory creates a test category.
func seedCategory(db *gorm.DB, name, nameAr string, sortOrder int) models.Category {
	cat := models.Category{
		ID:        uuid.New(),
		Name:      name,
		NameAr:    nameAr,
		SortOrder: sortOrder,
		IsActive:  true,
	}
	db.Create(&cat)
	return cat
}

// seedMenuItem creates a test menu item that is published and in stock.
func seedMenuItem(db *gorm.DB, name, nameAr string, categoryID uuid.UUID, price float64) models.MenuItem {
	item := models.MenuItem{
		ID:          uuid.New(),
		Name:        name,
		NameAr:      nameAr,
		Price:       price,
		CategoryID:  categoryID,
		IsActive:    true,
		IsAvailable: true,
	}
	db.Create(&item)
	return item
}

// setFlags explicitly updates the visibility flags of a menu item. Creating the
// row with a false flag is not enough because GORM skips zero-value bools and
// the column default (true) takes effect.
func setFlags(db *gorm.DB, item models.MenuItem, active, available bool) {
	db.Model(&models.MenuItem{}).Where("id = ?", item.ID).
		Updates(map[string]interface{}{"is_active": active, "is_available": available})
}

// ==================== Router Setup Helpers ====================

// setupAuthRouter sets up routes for auth handler tests.
func setupAuthRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	authHandler := &AuthHandler{DB: db}

	api := r.Group("/api")
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	protected.GET("/auth/profile", authHandler.GetProfile)

	return r
}

// setupCategoryRouter sets up routes for category handler tests.
func setupCategoryRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	categoryHandler := &CategoryHandler{DB: db}

	api := r.Group("/api")
	api.GET("/categories", categoryHandler.GetCategories)

	admin := api.Group("")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	admin.POST("/categories", categoryHandler.CreateCategory)
	admin.PUT("/categories", categoryHandler.UpdateCategory)
	admin.DELETE("/categories", categoryHandler.DeleteCategory)

	return r
}

// setupMenuItemRouter sets up routes for menu item handler tests.
func setupMenuItemRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	menuItemHandler := &MenuItemHandler{DB: db}

	api := r.Group("/api")
	api.GET("/menu-items", menuItemHandler.GetMenuItems)

	admin := api.Group("")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	admin.POST("/menu-items", menuItemHandler.CreateMenuItem)
	admin.PUT("/menu-items", menuItemHandler.UpdateMenuItem)
	admin.DELETE("/menu-items", menuItemHandler.DeleteMenuItem)

	return r
}

// setupSettingsRouter sets up routes for settings handler tests.
func setupSettingsRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	settingsHandler := &SettingsHandler{DB: db}

	api := r.Group("/api")
	api.GET("/settings", settingsHandler.GetSettings)

	admin := api.Group("")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	admin.PUT("/settings", settingsHandler.UpdateSettings)

	return r
}

// setupSeedRouter sets up routes for seed handler tests.
func setupSeedRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	seedHandler := &SeedHandler{DB: db}

	admin := r.Group("/api")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	admin.GET("/seed", seedHandler.SeedDatabase)

	return r
}

// setupCombinedRouter wires every resource like routes.SetupRoutes does, for
// cross-resource scenarios.
func setupCombinedRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	categoryHandler := &CategoryHandler{DB: db}
	menuItemHandler := &MenuItemHandler{DB: db}

	api := r.Group("/api")
	api.GET("/categories", categoryHandler.GetCategories)
	api.GET("/menu-items", menuItemHandler.GetMenuItems)

	admin := api.Group("")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	admin.POST("/categories", categoryHandler.CreateCategory)
	admin.PUT("/categories", categoryHandler.UpdateCategory)
	admin.DELETE("/categories", categoryHandler.DeleteCategory)
	admin.POST("/menu-items", menuItemHandler.CreateMenuItem)
	admin.PUT("/menu-items", menuItemHandler.UpdateMenuItem)
	admin.DELETE("/menu-items", menuItemHandler.DeleteMenuItem)

	return r
}

// ==================== Request Helpers ====================

// jsonRequest creates an HTTP request with JSON body.
func jsonRequest(method, url string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// authRequest creates an HTTP request with JSON body and Authorization header.
func authRequest(method, url string, body interface{}, token string) *http.Request {
	req := jsonRequest(method, url, body)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// ==================== Response Helpers ====================

// parseResponse reads the response body into a map.
func parseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

// parseResponseArray reads the response body into a slice of maps.
func parseResponseArray(w *httptest.ResponseRecorder) []interface{} {
	var result []interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}
