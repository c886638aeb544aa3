package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/models"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/repository"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/router"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/usercontext"
)

// newTestApp builds the full routed application against an in-memory
// database, exactly as main wires it minus the listener.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
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

	app := fiber.New(fiber.Config{ErrorHandler: router.ErrorHandler})
	router.InstallRouter(app, repository.NewRepositories(db))
	return app, db
}

// envelope mirrors the response contract {success, data?, message?,
// pagination?, errors?}.
type envelope struct {
	Success    bool                   `json:"success"`
	Message    string                 `json:"message"`
	Data       json.RawMessage        `json:"data"`
	Pagination map[string]interface{} `json:"pagination"`
	Errors     json.RawMessage        `json:"errors"`
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body interface{}, headers map[string]string) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func asRole(role, email string) map[string]string {
	return map[string]string{
		usercontext.HeaderUserID:    "1",
		usercontext.HeaderUserRole:  role,
		usercontext.HeaderUserEmail: email,
	}
}

func asReader(email string) map[string]string {
	return map[string]string{usercontext.HeaderUserEmail: email}
}

func seedPublishedArticle(t *testing.T, db *gorm.DB, title, slugStr string) *models.Article {
	t.Helper()

	category := &models.Category{Name: "News " + slugStr, Slug: "news-" + slugStr, IsActive: true}
	require.NoError(t, db.Create(category).Error)
	author := &models.Author{Name: "Desk", Email: slugStr + "@example.com", Role: models.RoleAuthor, Status: models.AuthorStatusActive}
	require.NoError(t, db.Create(author).Error)

	now := time.Now()
	article := &models.Article{
		Title:       title,
		Slug:        slugStr,
		Content:     "article body",
		Status:      models.ArticleStatusPublished,
		CategoryID:  category.ID,
		AuthorID:    author.ID,
		PublishedAt: &now,
	}
	require.NoError(t, db.Create(article).Error)
	return article
}

func seedDraftArticle(t *testing.T, db *gorm.DB, title, slugStr string) *models.Article {
	t.Helper()

	article := seedPublishedArticle(t, db, title, slugStr)
	require.NoError(t, db.Model(article).Updates(map[string]interface{}{
		"status":       models.ArticleStatusDraft,
		"published_at": nil,
	}).Error)
	article.Status = models.ArticleStatusDraft
	article.PublishedAt = nil
	return article
}
