package models

import (
	"time"
)

// CommentStatus is the moderation state of a comment. Every comment
// enters the queue as pending; moderators may move it to any state.
type CommentStatus string

const (
	CommentStatusPending  CommentStatus = "pending"
	CommentStatusApproved CommentStatus = "approved"
	CommentStatusRejected CommentStatus = "rejected"
	CommentStatusSpam     CommentStatus = "spam"
)

// ValidCommentStatus reports whether s is one of the known statuses.
func ValidCommentStatus(s CommentStatus) bool {
	switch s {
	case CommentStatusPending, CommentStatusApproved, CommentStatusRejected, CommentStatusSpam:
		return true
	}
	return false
}

// Comment is a reader comment on a published article. A comment with a
// ParentID is a reply; a reply's parent must belong to the same article.
// Comments are hard-deleted so the one-level reply cascade removes rows
// for real instead of leaving soft-deleted orphans behind.
type Comment struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	ArticleID   uint          `gorm:"index;not null" json:"article_id" validate:"required"`
	Article     Article       `gorm:"foreignKey:ArticleID" json:"article,omitempty"`
	ParentID    *uint         `gorm:"index" json:"parent_id"`
	Content     string        `gorm:"type:text;not null" json:"content" validate:"required,min=5,max=1000"`
	AuthorName  string        `gorm:"type:varchar(100);not null" json:"author_name" validate:"required,min=2,max=100"`
	AuthorEmail string        `gorm:"type:varchar(255);not null;index" json:"author_email" validate:"required,email"`
	AuthorIP    string        `gorm:"type:varchar(45)" json:"-"` // captured at creation for abuse review
	Status      CommentStatus `gorm:"type:varchar(20);index;default:pending" json:"status"`
	Replies     []Comment     `gorm:"-" json:"replies"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Comment model
func (Comment) TableName() string {
	return "comments"
}

// IsReply reports whether the comment is nested under another comment.
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}
