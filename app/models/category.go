package models

import (
	"time"
)

// Category groups articles into sections of the site
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_category_name_slug" json:"name" validate:"required,min=2,max=100"`
	Slug        string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_category_name_slug" json:"slug"`
	Description string    `gorm:"type:text" json:"description" validate:"max=500"`
	Color       string    `gorm:"type:varchar(20)" json:"color"`
	Icon        string    `gorm:"type:varchar(50)" json:"icon"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	SortOrder   int       `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
