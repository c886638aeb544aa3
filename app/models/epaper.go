package models

import (
	"time"
)

// Issue visibility states.
const (
	EpaperStatusPublished = "published"
	EpaperStatusArchived  = "archived"
)

// ValidEpaperStatus reports whether s is one of the known statuses.
func ValidEpaperStatus(s string) bool {
	return s == EpaperStatusPublished || s == EpaperStatusArchived
}

// EpaperIssue is one day's digital edition. Only one issue may exist
// per calendar day; the repository enforces it with a day-boundary
// range query before insert.
type EpaperIssue struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	IssueDate     time.Time `gorm:"index;not null" json:"issue_date" validate:"required"`
	PdfURL        string    `gorm:"type:varchar(255);not null" json:"pdf_url" validate:"required"`
	PageCount     int       `gorm:"default:0" json:"page_count" validate:"min=0"`
	Title         string    `gorm:"type:varchar(255)" json:"title" validate:"max=255"`
	Description   string    `gorm:"type:text" json:"description"`
	Status        string    `gorm:"type:varchar(20);default:published" json:"status"`
	DownloadCount uint64    `gorm:"default:0" json:"download_count"`
	ViewCount     uint64    `gorm:"default:0" json:"view_count"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the EpaperIssue model
func (EpaperIssue) TableName() string {
	return "epaper_issues"
}
