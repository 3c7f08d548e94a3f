package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	NameAr    string         `gorm:"not null" json:"nameAr"`
	Icon      string         `json:"icon"` // Short icon token or emoji
	SortOrder int            `gorm:"default:0" json:"sortOrder"`
	IsActive  bool           `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Items     []MenuItem     `gorm:"foreignKey:CategoryID" json:"items,omitempty"`

	// ItemCount is filled by the list endpoint; it is not a column.
	ItemCount int64 `gorm:"-" json:"itemCount"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
