package models

import (
	"time"

	"gorm.io/gorm"
)

// ArticleStatus is the publication state of an article. The set is flat:
// any status may be written over any other, only published_at is sticky.
type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusReview    ArticleStatus = "review"
	ArticleStatusPublished ArticleStatus = "published"
	ArticleStatusArchived  ArticleStatus = "archived"
)

// ValidArticleStatus reports whether s is one of the known statuses.
func ValidArticleStatus(s ArticleStatus) bool {
	switch s {
	case ArticleStatusDraft, ArticleStatusReview, ArticleStatusPublished, ArticleStatusArchived:
		return true
	}
	return false
}

// Article represents a news article in the system
type Article struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Title        string        `gorm:"type:varchar(255);not null" json:"title" validate:"required,min=3,max=255"`
	Slug         string        `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Excerpt      string        `gorm:"type:text" json:"excerpt" validate:"max=500"`
	Content      string        `gorm:"type:longtext" json:"content" validate:"required"`
	Status       ArticleStatus `gorm:"type:varchar(20);index;default:draft" json:"status"`
	IsFeatured   bool          `gorm:"default:false" json:"is_featured"`
	IsBreaking   bool          `gorm:"default:false" json:"is_breaking"`
	Views        uint64        `gorm:"default:0" json:"views"`
	CategoryID   uint          `gorm:"index;not null" json:"category_id" validate:"required"`
	Category     Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	AuthorID     uint          `gorm:"index;not null" json:"author_id" validate:"required"`
	Author       Author        `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Images       []Media       `gorm:"many2many:article_images;" json:"images,omitempty"`
	PublishedAt  *time.Time    `gorm:"index" json:"published_at"`
	ScheduledFor *time.Time    `json:"scheduled_for"`
	CreatedAt    time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Article model
func (Article) TableName() string {
	return "articles"
}

// IsPublished reports whether the article is visible to the public site.
func (a *Article) IsPublished() bool {
	return a.Status == ArticleStatusPublished
}

// MarkPublished sets published_at on the first transition into the
// published status. Later edits never clear or move the timestamp.
func (a *Article) MarkPublished(now time.Time) {
	a.Status = ArticleStatusPublished
	if a.PublishedAt == nil {
		a.PublishedAt = &now
	}
}

// FindArticleBySlug finds a published article by its slug
func FindArticleBySlug(db *gorm.DB, slug string) (*Article, error) {
	var article Article
	err := db.Preload("Category").Preload("Author").
		Where("slug = ? AND status = ?", slug, ArticleStatusPublished).
		First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}
