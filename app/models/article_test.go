package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidArticleStatus(t *testing.T) {
	assert.True(t, ValidArticleStatus(ArticleStatusDraft))
	assert.True(t, ValidArticleStatus(ArticleStatusPublished))
	assert.False(t, ValidArticleStatus("live"))
	assert.False(t, ValidArticleStatus(""))
}

func TestMarkPublishedIsSticky(t *testing.T) {
	article := &Article{Status: ArticleStatusDraft}

	first := time.Now().Add(-time.Hour)
	article.MarkPublished(first)
	assert.Equal(t, ArticleStatusPublished, article.Status)
	require.NotNil(t, article.PublishedAt)
	assert.Equal(t, first, *article.PublishedAt)

	// Re-publishing later must not move the original timestamp.
	article.Status = ArticleStatusArchived
	article.MarkPublished(time.Now())
	assert.Equal(t, first, *article.PublishedAt)
}
