package repository

import (
	"gorm.io/gorm"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/models"
)

// commentRepository implements the CommentRepository interface
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository instance
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create creates a new comment in the database
func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID retrieves a comment by its ID
func (r *commentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Update saves changes to an existing comment
func (r *commentRepository) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

// UpdateStatus sets the moderation status directly
func (r *commentRepository) UpdateStatus(id uint, status models.CommentStatus) error {
	return r.db.Model(&models.Comment{}).Where("id = ?", id).
		Update("status", status).Error
}

// Delete removes the comment and every comment whose parent_id equals
// it. The cascade is exactly one level; grandchildren are left alone.
func (r *commentRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Comment{}, id).Error
	})
}

func (r *commentRepository) articleQuery(articleID uint, status *models.CommentStatus) *gorm.DB {
	q := r.db.Model(&models.Comment{}).
		Where("article_id = ? AND parent_id IS NULL", articleID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	return q
}

// ListByArticle returns top-level comments for an article, newest first
func (r *commentRepository) ListByArticle(articleID uint, status *models.CommentStatus, offset, limit int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.articleQuery(articleID, status).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&comments).Error
	return comments, err
}

// CountByArticle returns the number of top-level comments matching the filter
func (r *commentRepository) CountByArticle(articleID uint, status *models.CommentStatus) (int64, error) {
	var count int64
	err := r.articleQuery(articleID, status).Count(&count).Error
	return count, err
}

// AttachApprovedReplies loads the replies of each comment in a single
// query. The reply list is always approved-only, whatever the parent's
// own status or the requester's privilege: the moderation queue must
// not leak through the reply channel.
func (r *commentRepository) AttachApprovedReplies(comments []models.Comment) ([]models.Comment, error) {
	if len(comments) == 0 {
		return comments, nil
	}

	ids := make([]uint, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
	}

	var replies []models.Comment
	err := r.db.Where("parent_id IN ? AND status = ?", ids, models.CommentStatusApproved).
		Order("created_at ASC").Find(&replies).Error
	if err != nil {
		return nil, err
	}

	byParent := make(map[uint][]models.Comment, len(comments))
	for _, reply := range replies {
		byParent[*reply.ParentID] = append(byParent[*reply.ParentID], reply)
	}

	for i := range comments {
		comments[i].Replies = byParent[comments[i].ID]
		if comments[i].Replies == nil {
			comments[i].Replies = []models.Comment{}
		}
	}
	return comments, nil
}

// ListByStatus returns comments in one moderation state across all
// articles, newest first (the moderation queue view).
func (r *commentRepository) ListByStatus(status models.CommentStatus, offset, limit int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("Article").Where("status = ?", status).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&comments).Error
	return comments, err
}

// CountByStatus returns the number of comments in one moderation state
func (r *commentRepository) CountByStatus(status models.CommentStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
