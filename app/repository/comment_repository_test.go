package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/models"
)

func seedComment(t *testing.T, db *gorm.DB, articleID uint, parentID *uint, status models.CommentStatus, content string) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		ArticleID:   articleID,
		ParentID:    parentID,
		Content:     content,
		AuthorName:  "Reader",
		AuthorEmail: "reader@example.com",
		Status:      status,
	}
	require.NoError(t, db.Create(comment).Error)
	return comment
}

func TestCommentRepository_DeleteCascadesOneLevel(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)

	article := seedArticle(t, db, &models.Article{
		Title: "Story", Slug: "story", Content: "body",
		Status: models.ArticleStatusPublished, PublishedAt: publishedAt(0),
	})

	parent := seedComment(t, db, article.ID, nil, models.CommentStatusApproved, "parent comment")
	reply := seedComment(t, db, article.ID, &parent.ID, models.CommentStatusApproved, "direct reply")
	// Should not exist under normal flow, but the cascade must still stop
	// at one level if it does.
	grandchild := seedComment(t, db, article.ID, &reply.ID, models.CommentStatusApproved, "nested reply")
	unrelated := seedComment(t, db, article.ID, nil, models.CommentStatusApproved, "another thread")

	require.NoError(t, repo.Delete(parent.ID))

	_, err := repo.GetByID(parent.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = repo.GetByID(reply.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.GetByID(grandchild.ID)
	assert.NoError(t, err, "cascade stops after one level")
	_, err = repo.GetByID(unrelated.ID)
	assert.NoError(t, err)
}

func TestCommentRepository_ListByArticleTopLevelOnly(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)

	article := seedArticle(t, db, &models.Article{
		Title: "Story", Slug: "story", Content: "body",
		Status: models.ArticleStatusPublished, PublishedAt: publishedAt(0),
	})

	top := seedComment(t, db, article.ID, nil, models.CommentStatusApproved, "top level")
	seedComment(t, db, article.ID, &top.ID, models.CommentStatusApproved, "a reply")
	seedComment(t, db, article.ID, nil, models.CommentStatusPending, "awaiting moderation")

	all, err := repo.ListByArticle(article.ID, nil, 0, 10)
	require.NoError(t, err)
	assert.Len(t, all, 2, "replies never appear as top-level entries")

	approved := models.CommentStatusApproved
	visible, err := repo.ListByArticle(article.ID, &approved, 0, 10)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "top level", visible[0].Content)

	count, err := repo.CountByArticle(article.ID, &approved)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCommentRepository_AttachApprovedReplies(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)

	article := seedArticle(t, db, &models.Article{
		Title: "Story", Slug: "story", Content: "body",
		Status: models.ArticleStatusPublished, PublishedAt: publishedAt(0),
	})

	first := seedComment(t, db, article.ID, nil, models.CommentStatusApproved, "first thread")
	seedComment(t, db, article.ID, nil, models.CommentStatusApproved, "second thread")
	seedComment(t, db, article.ID, &first.ID, models.CommentStatusApproved, "approved reply")
	seedComment(t, db, article.ID, &first.ID, models.CommentStatusPending, "pending reply")
	seedComment(t, db, article.ID, &first.ID, models.CommentStatusRejected, "rejected reply")

	comments, err := repo.ListByArticle(article.ID, nil, 0, 10)
	require.NoError(t, err)
	comments, err = repo.AttachApprovedReplies(comments)
	require.NoError(t, err)

	byContent := make(map[string]models.Comment, len(comments))
	for _, c := range comments {
		byContent[c.Content] = c
	}

	require.Len(t, byContent["first thread"].Replies, 1, "only the approved reply is embedded")
	assert.Equal(t, "approved reply", byContent["first thread"].Replies[0].Content)

	require.NotNil(t, byContent["second thread"].Replies)
	assert.Empty(t, byContent["second thread"].Replies, "empty slice, not null, for threads without replies")
}

func TestCommentRepository_AttachApprovedRepliesEmptyInput(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)

	comments, err := repo.AttachApprovedReplies([]models.Comment{})
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCommentRepository_StatusQueue(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)

	article := seedArticle(t, db, &models.Article{
		Title: "Story", Slug: "story", Content: "body",
		Status: models.ArticleStatusPublished, PublishedAt: publishedAt(0),
	})
	other := seedArticle(t, db, &models.Article{
		Title: "Other", Slug: "other", Content: "body",
		Status: models.ArticleStatusPublished, PublishedAt: publishedAt(0),
	})

	seedComment(t, db, article.ID, nil, models.CommentStatusPending, "pending one")
	seedComment(t, db, other.ID, nil, models.CommentStatusPending, "pending two")
	seedComment(t, db, article.ID, nil, models.CommentStatusApproved, "already approved")

	pending, err := repo.ListByStatus(models.CommentStatusPending, 0, 10)
	require.NoError(t, err)
	assert.Len(t, pending, 2, "the queue spans all articles")

	count, err := repo.CountByStatus(models.CommentStatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByStatus(models.CommentStatusSpam)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestCommentRepository_UpdateStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)

	article := seedArticle(t, db, &models.Article{
		Title: "Story", Slug: "story", Content: "body",
		Status: models.ArticleStatusPublished, PublishedAt: publishedAt(0),
	})
	comment := seedComment(t, db, article.ID, nil, models.CommentStatusPending, "to approve")

	require.NoError(t, repo.UpdateStatus(comment.ID, models.CommentStatusApproved))

	got, err := repo.GetByID(comment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CommentStatusApproved, got.Status)
}
