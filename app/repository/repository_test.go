package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Author{},
		&models.Media{},
		&models.Article{},
		&models.Comment{},
		&models.EpaperIssue{},
		&models.Hero{},
		&models.Setting{},
		&models.User{},
	))
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name, slug string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, Slug: slug, IsActive: true}
	require.NoError(t, db.Create(category).Error)
	return category
}

func seedAuthor(t *testing.T, db *gorm.DB, name, email string) *models.Author {
	t.Helper()
	author := &models.Author{Name: name, Email: email, Role: models.RoleAuthor, Status: models.AuthorStatusActive}
	require.NoError(t, db.Create(author).Error)
	return author
}

func seedArticle(t *testing.T, db *gorm.DB, article *models.Article) *models.Article {
	t.Helper()
	if article.CategoryID == 0 {
		article.CategoryID = seedCategory(t, db, "General "+article.Title, "general-"+article.Slug).ID
	}
	if article.AuthorID == 0 {
		article.AuthorID = seedAuthor(t, db, "Reporter "+article.Title, article.Slug+"@example.com").ID
	}
	require.NoError(t, db.Create(article).Error)
	return article
}

func publishedAt(offset time.Duration) *time.Time {
	ts := time.Now().Add(offset)
	return &ts
}
