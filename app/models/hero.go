package models

import (
	"time"
)

// Hero is a banner slot on the public home page
type Hero struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title" validate:"required,min=2,max=255"`
	Subtitle  string    `gorm:"type:varchar(500)" json:"subtitle" validate:"max=500"`
	ImageURL  string    `gorm:"type:varchar(255)" json:"image_url"`
	LinkURL   string    `gorm:"type:varchar(255)" json:"link_url"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Hero model
func (Hero) TableName() string {
	return "heroes"
}
