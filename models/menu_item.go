package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuItem is a single dish or drink. IsActive means the admin has published
// the item; IsAvailable means it is currently in stock. Both must be true for
// the item to appear on the public menu.
type MenuItem struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	NameAr        string         `gorm:"not null" json:"nameAr"`
	Description   string         `json:"description"`
	DescriptionAr string         `json:"descriptionAr"`
	Price         float64        `gorm:"not null" json:"price"`
	Image         string         `json:"image"` // External image URL
	CategoryID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"categoryId"`
	Category      Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	IsActive      bool           `gorm:"default:true" json:"isActive"`
	IsAvailable   bool           `gorm:"default:true" json:"isAvailable"`
	SortOrder     int            `gorm:"default:0" json:"sortOrder"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
