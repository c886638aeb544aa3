package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/models"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/repository"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/apperr"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/cache"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/policy"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/slug"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/usercontext"
)

const (
	trendingCacheKey = "articles:trending"
	trendingCacheTTL = 60 * time.Second
)

// ArticleController handles article CRUD, listing and aggregation
type ArticleController struct {
	articles repository.ArticleRepository
}

// NewArticleController creates a new article controller instance
func NewArticleController(repos *repository.Repositories) *ArticleController {
	return &ArticleController{articles: repos.Article}
}

type articleRequest struct {
	Title        string               `json:"title" validate:"required,min=3,max=255"`
	Excerpt      string               `json:"excerpt" validate:"max=500"`
	Content      string               `json:"content" validate:"required"`
	Status       models.ArticleStatus `json:"status"`
	IsFeatured   bool                 `json:"is_featured"`
	IsBreaking   bool                 `json:"is_breaking"`
	CategoryID   uint                 `json:"category_id" validate:"required"`
	AuthorID     uint                 `json:"author_id" validate:"required"`
	ScheduledFor *time.Time           `json:"scheduled_for"`
}

// HandleList returns articles. Staff may filter by any status; public
// requests only ever see published articles.
// GET /api/articles?status=&categoryId=&authorId=&page=&limit=
func (ctl *ArticleController) HandleList(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	filter := repository.ArticleFilter{
		CategoryID: uint(c.QueryInt("categoryId", 0)),
		AuthorID:   uint(c.QueryInt("authorId", 0)),
	}

	actor := usercontext.GetActor(c)
	if actor.IsPrivileged() {
		if raw := c.Query("status"); raw != "" {
			status := models.ArticleStatus(raw)
			if !models.ValidArticleStatus(status) {
				return apperr.Validation("Unknown article status")
			}
			filter.Status = status
		}
	} else {
		filter.Status = models.ArticleStatusPublished
	}

	total, err := ctl.articles.Count(filter)
	if err != nil {
		return apperr.Wrap("Could not count articles", err)
	}
	articles, err := ctl.articles.List(filter, (page-1)*limit, limit)
	if err != nil {
		return apperr.Wrap("Could not load articles", err)
	}

	return respondList(c, articles, buildPagination(page, limit, total, "totalArticles"))
}

// HandleGet returns one article and counts the view when it is served
// to a reader. The increment is a single atomic UPDATE guarded by the
// published status, fired after the fetch; a lost race under-counts at
// worst by nothing now that the database does the addition.
// GET /api/articles/:id
func (ctl *ArticleController) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	article, err := ctl.articles.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Article not found")
	}
	if err != nil {
		return apperr.Wrap("Could not load article", err)
	}

	actor := usercontext.GetActor(c)
	if !article.IsPublished() && !actor.IsPrivileged() {
		// Hidden articles are indistinguishable from missing ones.
		return apperr.NotFound("Article not found")
	}

	if article.IsPublished() {
		if err := ctl.articles.IncrementViews(article.ID); err != nil {
			log.Warnf("Could not record view for article %d: %v", article.ID, err)
		}
	}

	return respondData(c, fiber.StatusOK, article)
}

// HandleCreate creates a new article, in draft unless a status is given.
// POST /api/articles
func (ctl *ArticleController) HandleCreate(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionWriteContent) {
		return apperr.Forbidden("Staff role required")
	}

	var req articleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	status := req.Status
	if status == "" {
		status = models.ArticleStatusDraft
	}
	if !models.ValidArticleStatus(status) {
		return apperr.Validation("Unknown article status")
	}

	articleSlug, err := slug.Unique(req.Title, ctl.articles.SlugExists)
	if err != nil {
		return apperr.Wrap("Could not generate slug", err)
	}

	article := models.Article{
		Title:        req.Title,
		Slug:         articleSlug,
		Excerpt:      req.Excerpt,
		Content:      req.Content,
		Status:       status,
		IsFeatured:   req.IsFeatured,
		IsBreaking:   req.IsBreaking,
		CategoryID:   req.CategoryID,
		AuthorID:     req.AuthorID,
		ScheduledFor: req.ScheduledFor,
	}
	if status == models.ArticleStatusPublished {
		article.MarkPublished(time.Now())
	}

	if err := ctl.articles.Create(&article); err != nil {
		return apperr.Wrap("Could not save article", err)
	}
	return respondData(c, fiber.StatusCreated, article)
}

// HandleUpdate edits an article. The slug is regenerated (and
// re-checked for uniqueness) only when the title changes; published_at
// is set on the first transition into published and never cleared.
// PUT /api/articles/:id
func (ctl *ArticleController) HandleUpdate(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionWriteContent) {
		return apperr.Forbidden("Staff role required")
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	article, err := ctl.articles.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Article not found")
	}
	if err != nil {
		return apperr.Wrap("Could not load article", err)
	}

	var req articleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	if req.Title != article.Title {
		newSlug, err := slug.Unique(req.Title, func(s string) (bool, error) {
			return ctl.articles.SlugExistsExceptID(s, article.ID)
		})
		if err != nil {
			return apperr.Wrap("Could not generate slug", err)
		}
		article.Slug = newSlug
	}

	article.Title = req.Title
	article.Excerpt = req.Excerpt
	article.Content = req.Content
	article.IsFeatured = req.IsFeatured
	article.IsBreaking = req.IsBreaking
	article.CategoryID = req.CategoryID
	article.AuthorID = req.AuthorID
	article.ScheduledFor = req.ScheduledFor

	if req.Status != "" {
		if !models.ValidArticleStatus(req.Status) {
			return apperr.Validation("Unknown article status")
		}
		if req.Status == models.ArticleStatusPublished {
			article.MarkPublished(time.Now())
		} else {
			article.Status = req.Status
		}
	}

	if err := ctl.articles.Update(article); err != nil {
		return apperr.Wrap("Could not update article", err)
	}
	return respondData(c, fiber.StatusOK, article)
}

// HandleDelete removes an article. Its comments are left in place;
// they simply lose their parent article.
// DELETE /api/articles/:id
func (ctl *ArticleController) HandleDelete(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionManageContent) {
		return apperr.Forbidden("Moderator role required")
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if _, err := ctl.articles.GetByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Article not found")
	} else if err != nil {
		return apperr.Wrap("Could not load article", err)
	}

	if err := ctl.articles.Delete(id); err != nil {
		return apperr.Wrap("Could not delete article", err)
	}
	return respondMessage(c, fiber.StatusOK, "Article deleted")
}

// HandleFeatured lists published featured articles.
// GET /api/articles/featured/list
func (ctl *ArticleController) HandleFeatured(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	articles, err := ctl.articles.GetFeatured(limit)
	if err != nil {
		return apperr.Wrap("Could not load featured articles", err)
	}
	return respondData(c, fiber.StatusOK, articles)
}

// HandleBreaking lists published breaking-news articles.
// GET /api/articles/breaking/list
func (ctl *ArticleController) HandleBreaking(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	articles, err := ctl.articles.GetBreaking(limit)
	if err != nil {
		return apperr.Wrap("Could not load breaking articles", err)
	}
	return respondData(c, fiber.StatusOK, articles)
}

// HandleTrending lists published articles by views descending. The
// result is cached for a minute per limit; view counters move too fast
// to be worth hitting the database on every home page render.
// GET /api/articles/trending/list
func (ctl *ArticleController) HandleTrending(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)

	cacheKey := fmt.Sprintf("%s:%d", trendingCacheKey, limit)
	if cached, err := cache.Get(cacheKey); err == nil && cached != "" {
		var articles []models.Article
		if err := json.Unmarshal([]byte(cached), &articles); err == nil {
			return respondData(c, fiber.StatusOK, articles)
		}
	}

	articles, err := ctl.articles.GetTrending(limit)
	if err != nil {
		return apperr.Wrap("Could not load trending articles", err)
	}

	if payload, err := json.Marshal(articles); err == nil {
		if err := cache.Set(cacheKey, payload, trendingCacheTTL); err != nil {
			log.Debugf("Trending cache write failed: %v", err)
		}
	}
	return respondData(c, fiber.StatusOK, articles)
}

// HandleSearch finds published articles matching the term in title,
// excerpt or content.
// GET /api/articles/search?q=&page=&limit=
func (ctl *ArticleController) HandleSearch(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return apperr.Validation("Search term q is required")
	}
	page, limit := parsePagination(c)

	total, err := ctl.articles.CountSearch(term)
	if err != nil {
		return apperr.Wrap("Could not count search results", err)
	}
	articles, err := ctl.articles.Search(term, (page-1)*limit, limit)
	if err != nil {
		return apperr.Wrap("Could not search articles", err)
	}

	return respondList(c, articles, buildPagination(page, limit, total, "totalArticles"))
}
