package models

import (
	"time"
)

// Media is an uploaded file (image or document). For images the
// ingestion pipeline writes fixed-width variants next to the original;
// the record always references the original path.
type Media struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FileName     string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"file_name"`
	OriginalName string    `gorm:"type:varchar(255)" json:"original_name"`
	MimeType     string    `gorm:"type:varchar(100)" json:"mime_type"`
	Size         int64     `gorm:"type:bigint" json:"size"`
	URL          string    `gorm:"type:varchar(255)" json:"url"`
	AltText      string    `gorm:"type:varchar(255)" json:"alt_text" validate:"max=255"`
	Caption      string    `gorm:"type:varchar(500)" json:"caption" validate:"max=500"`
	Folder       string    `gorm:"type:varchar(100);default:general" json:"folder"`
	UploadedBy   uint      `gorm:"index" json:"uploaded_by"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Media model
func (Media) TableName() string {
	return "media"
}
