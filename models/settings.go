package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Settings is a single-row table holding restaurant branding. The row is
// created lazily with defaults on first read and updated in place afterwards.
type Settings struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RestaurantName   string    `gorm:"not null" json:"restaurantName"`
	RestaurantNameEn string    `gorm:"not null" json:"restaurantNameEn"`
	Logo             *string   `json:"logo"` // External logo URL, nil when unset
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// DefaultRestaurantName and DefaultRestaurantNameEn are used when the
// settings row is created on first read.
const (
	DefaultRestaurantName   = "مطعم الذواقة"
	DefaultRestaurantNameEn = "Restaurant"
)

func (s *Settings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
