package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/controllers"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/repository"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/env"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/usercontext"
)

// ApiRouter installs the /api resource routes
type ApiRouter struct {
	repos *repository.Repositories
}

// NewApiRouter creates a new API router instance
func NewApiRouter(repos *repository.Repositories) *ApiRouter {
	return &ApiRouter{repos: repos}
}

func (h *ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api",
		limiter.New(limiter.Config{Max: env.GetEnvInt("API_RATE_LIMIT_MAX", 300)}),
		usercontext.Middleware(),
	)

	articles := controllers.NewArticleController(h.repos)
	comments := controllers.NewCommentController(h.repos)
	categories := controllers.NewCategoryController(h.repos)
	authors := controllers.NewAuthorController(h.repos)
	media := controllers.NewMediaController(h.repos)
	epaper := controllers.NewEpaperController(h.repos)
	hero := controllers.NewHeroController(h.repos)
	admin := controllers.NewAdminController(h.repos)

	articleGroup := api.Group("/articles")
	articleGroup.Get("/", articles.HandleList)
	articleGroup.Post("/", articles.HandleCreate)
	articleGroup.Get("/featured/list", articles.HandleFeatured)
	articleGroup.Get("/breaking/list", articles.HandleBreaking)
	articleGroup.Get("/trending/list", articles.HandleTrending)
	articleGroup.Get("/search", articles.HandleSearch)
	articleGroup.Get("/:id", articles.HandleGet)
	articleGroup.Put("/:id", articles.HandleUpdate)
	articleGroup.Delete("/:id", articles.HandleDelete)

	commentGroup := api.Group("/comments")
	commentGroup.Get("/", comments.HandleList)
	commentGroup.Post("/", comments.HandleSubmit)
	commentGroup.Get("/moderation/pending", comments.HandlePendingQueue)
	commentGroup.Put("/:id/status", comments.HandleUpdateStatus)
	commentGroup.Put("/:id", comments.HandleEdit)
	commentGroup.Delete("/:id", comments.HandleDelete)

	categoryGroup := api.Group("/categories")
	categoryGroup.Get("/", categories.HandleList)
	categoryGroup.Post("/", categories.HandleCreate)
	categoryGroup.Get("/slug/:slug", categories.HandleGetBySlug)
	categoryGroup.Get("/:id", categories.HandleGet)
	categoryGroup.Put("/:id", categories.HandleUpdate)
	categoryGroup.Delete("/:id", categories.HandleDelete)

	authorGroup := api.Group("/authors")
	authorGroup.Get("/", authors.HandleList)
	authorGroup.Post("/", authors.HandleCreate)
	authorGroup.Get("/:id/stats", authors.HandleStats)
	authorGroup.Get("/:id", authors.HandleGet)
	authorGroup.Put("/:id", authors.HandleUpdate)
	authorGroup.Delete("/:id", authors.HandleDelete)

	mediaGroup := api.Group("/media")
	mediaGroup.Get("/", media.HandleList)
	mediaGroup.Post("/upload", media.HandleUpload)
	mediaGroup.Post("/upload-multiple", media.HandleUploadMultiple)
	mediaGroup.Get("/:id", media.HandleGet)
	mediaGroup.Put("/:id", media.HandleUpdate)
	mediaGroup.Delete("/:id", media.HandleDelete)

	epaperGroup := api.Group("/epaper")
	epaperGroup.Get("/", epaper.HandleList)
	epaperGroup.Post("/", epaper.HandleCreate)
	epaperGroup.Get("/:id/download", epaper.HandleDownload)
	epaperGroup.Get("/:id", epaper.HandleGet)
	epaperGroup.Delete("/:id", epaper.HandleDelete)

	heroGroup := api.Group("/hero")
	heroGroup.Get("/", hero.HandleList)
	heroGroup.Post("/", hero.HandleCreate)
	heroGroup.Put("/:id", hero.HandleUpdate)
	heroGroup.Delete("/:id", hero.HandleDelete)

	adminGroup := api.Group("/admin")
	adminGroup.Get("/dashboard", admin.HandleDashboard)
	adminGroup.Get("/analytics/articles", admin.HandleArticleAnalytics)
	adminGroup.Get("/moderation", admin.HandleModeration)
	adminGroup.Get("/users", admin.HandleUserList)
	adminGroup.Post("/users", admin.HandleUserCreate)
	adminGroup.Delete("/users/:id", admin.HandleUserDelete)
	adminGroup.Get("/settings", admin.HandleSettingsGet)
	adminGroup.Put("/settings", admin.HandleSettingsUpdate)
}
