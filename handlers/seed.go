package handlers

import (
	"net/http"

	"thawaqa-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SeedHandler struct {
	DB *gorm.DB
}

type seedItem struct {
	Name          string
	NameAr        string
	Description   string
	DescriptionAr string
	Price         float64
	Image         string
	SortOrder     int
}

var seedCategories = []models.Category{
	{Name: "Main Dishes", NameAr: "الأطباق الرئيسية", Icon: "🍽️", SortOrder: 1},
	{Name: "Appetizers", NameAr: "المقبلات", Icon: "🥗", SortOrder: 2},
	{Name: "Drinks", NameAr: "المشروبات", Icon: "🥤", SortOrder: 3},
	{Name: "Desserts", NameAr: "الحلويات", Icon: "🍰", SortOrder: 4},
	{Name: "Grills", NameAr: "المشاوي", Icon: "🍢", SortOrder: 5},
}

// seedItems holds the fixture items grouped per category, in the same order
// as seedCategories.
var seedItems = [][]seedItem{
	{
		{"Grilled Chicken", "دجاج مشوي", "Tender grilled chicken served with rice and vegetables", "دجاج طري مشوي يقدم مع الأرز والخضروات", 45.00, "https://images.unsplash.com/photo-1598103442097-8b74394b95c6?w=400&h=300&fit=crop", 1},
		{"Lamb Mandi", "مندي لحم ضأن", "Traditional Yemeni lamb dish with fragrant rice", "طبق يمني تقليدي من لحم الضأن مع أرز عطري", 65.00, "https://images.unsplash.com/photo-1544025162-d76694265947?w=400&h=300&fit=crop", 2},
		{"Fish Fillet", "فيليه سمك", "Fresh fish fillet with lemon butter sauce", "فيليه سمك طازج مع صلصة الليمون والزبدة", 55.00, "https://images.unsplash.com/photo-1519708227418-c8fd9a32b7a2?w=400&h=300&fit=crop", 3},
		{"Kabsa", "كبسة", "Saudi traditional rice dish with meat", "طبق أرز سعودي تقليدي مع اللحم", 50.00, "https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8?w=400&h=300&fit=crop", 4},
	},
	{
		{"Hummus", "حمص", "Creamy chickpea dip with olive oil and pita bread", "غمس الحمص الكريمي مع زيت الزيتون والخبز", 15.00, "https://images.unsplash.com/photo-1577805947697-89340a0c4d75?w=400&h=300&fit=crop", 1},
		{"Tabbouleh", "تبولة", "Fresh parsley salad with tomatoes and bulgur", "سلطة بقدونس طازجة مع الطماطم والبرغل", 18.00, "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=400&h=300&fit=crop", 2},
		{"Fattoush", "فتوش", "Lebanese bread salad with fresh vegetables", "سلطة خبز لبنانية مع الخضروات الطازجة", 16.00, "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=400&h=300&fit=crop", 3},
		{"Moutabal", "متبل", "Smoky eggplant dip with tahini", "غمس باذنجان مدخن مع الطحينة", 17.00, "https://images.unsplash.com/photo-1623428187969-5da2dcea5ebf?w=400&h=300&fit=crop", 4},
	},
	{
		{"Fresh Orange Juice", "عصير برتقال طازج", "Freshly squeezed orange juice", "عصير برتقال معصور طازج", 12.00, "https://images.unsplash.com/photo-1621506289937-a8e4df240d0b?w=400&h=300&fit=crop", 1},
		{"Mango Smoothie", "سموذي مانجو", "Creamy mango smoothie with yogurt", "سموذي مانجو كريمي مع الزبادي", 18.00, "https://images.unsplash.com/photo-1546173159-315724a31696?w=400&h=300&fit=crop", 2},
		{"Arabic Coffee", "قهوة عربية", "Traditional Arabic coffee with cardamom", "قهوة عربية تقليدية مع الهيل", 8.00, "https://images.unsplash.com/photo-1514432324607-a09d9b4aefdd?w=400&h=300&fit=crop", 3},
		{"Iced Latte", "لاتيه مثلج", "Cold coffee latte with milk", "قهوة لاتيه باردة مع الحليب", 15.00, "https://images.unsplash.com/photo-1461023058943-07fcbe16d735?w=400&h=300&fit=crop", 4},
	},
	{
		{"Kunafa", "كنافة", "Sweet cheese pastry with syrup", "معجنات جبن حلوة مع القطر", 25.00, "https://images.unsplash.com/photo-1579888944880-d98341245702?w=400&h=300&fit=crop", 1},
		{"Baklava", "بقلاوة", "Layers of phyllo pastry with nuts and honey", "طبقات من العجين مع المكسرات والعسل", 20.00, "https://images.unsplash.com/photo-1519676867240-f03562e64548?w=400&h=300&fit=crop", 2},
		{"Chocolate Cake", "كيكة شوكولاتة", "Rich chocolate layer cake", "كيكة شوكولاتة غنية بالطبقات", 22.00, "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=400&h=300&fit=crop", 3},
		{"Ice Cream", "آيس كريم", "Assorted flavors of premium ice cream", "نكهات متنوعة من الآيس كريم الفاخر", 15.00, "https://images.unsplash.com/photo-1497034825429-c343d7c6a68f?w=400&h=300&fit=crop", 4},
	},
	{
		{"Mixed Grill", "مشكل مشاوي", "Assorted grilled meats with rice", "مجموعة مشاوي متنوعة مع الأرز", 75.00, "https://images.unsplash.com/photo-1544025162-d76694265947?w=400&h=300&fit=crop", 1},
		{"Lamb Chops", "ريش لحم", "Grilled lamb chops with herbs", "ريش لحم ضأن مشوية مع الأعشاب", 85.00, "https://images.unsplash.com/photo-1432139555190-58524dae6a55?w=400&h=300&fit=crop", 2},
		{"Shish Tawook", "شيش طاووق", "Grilled marinated chicken skewers", "أسياخ دجاج متبل مشوية", 45.00, "https://images.unsplash.com/photo-1603360946369-dc9bb6258143?w=400&h=300&fit=crop", 3},
		{"Kebab", "كباب", "Grilled minced meat skewers", "أسياخ لحم مفروم مشوية", 50.00, "https://images.unsplash.com/photo-1599487488170-d11ec9c172f0?w=400&h=300&fit=crop", 4},
	},
}

// SeedDatabase loads the sample menu into an empty catalog. It does nothing
// when any category already exists.
func (h *SeedHandler) SeedDatabase(c *gin.Context) {
	var existing int64
	if err := h.DB.Model(&models.Category{}).Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed database"})
		return
	}
	if existing > 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Database already seeded"})
		return
	}

	// Create categories first and capture their generated ids; items must
	// reference the ids actually stored, not positions in the fixture.
	itemCount := 0
	for i := range seedCategories {
		category := seedCategories[i]
		category.ID = uuid.New()
		category.IsActive = true
		if err := h.DB.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed database"})
			return
		}

		for _, si := range seedItems[i] {
			item := models.MenuItem{
				ID:            uuid.New(),
				Name:          si.Name,
				NameAr:        si.NameAr,
				Description:   si.Description,
				DescriptionAr: si.DescriptionAr,
				Price:         si.Price,
				Image:         si.Image,
				CategoryID:    category.ID,
				SortOrder:     si.SortOrder,
				IsActive:      true,
				IsAvailable:   true,
			}
			if err := h.DB.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed database"})
				return
			}
			itemCount++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Database seeded successfully",
		"categories": len(seedCategories),
		"items":      itemCount,
	})
}
