package statistics

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/models"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/repository"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/cache"
)

const (
	dashboardCacheKey = "statistics:dashboard"
	cacheExpiration   = 5 * time.Minute
)

// DashboardStats holds the aggregate counts shown on the admin
// dashboard home.
type DashboardStats struct {
	TotalArticles     int64  `json:"total_articles"`
	PublishedArticles int64  `json:"published_articles"`
	DraftArticles     int64  `json:"draft_articles"`
	PendingComments   int64  `json:"pending_comments"`
	TotalCategories   int64  `json:"total_categories"`
	TotalAuthors      int64  `json:"total_authors"`
	TotalViews        uint64 `json:"total_views"`
}

// GetDashboardStats returns the dashboard aggregates, from cache when
// fresh enough. Cache failures fall through to the database.
func GetDashboardStats(repos *repository.Repositories) (*DashboardStats, error) {
	if cached, err := cache.Get(dashboardCacheKey); err == nil && cached != "" {
		var stats DashboardStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	stats, err := computeDashboardStats(repos)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := cache.Set(dashboardCacheKey, payload, cacheExpiration); err != nil {
			log.Debugf("Dashboard stats cache write failed: %v", err)
		}
	}
	return stats, nil
}

func computeDashboardStats(repos *repository.Repositories) (*DashboardStats, error) {
	var stats DashboardStats
	var err error

	if stats.TotalArticles, err = repos.Article.Count(repository.ArticleFilter{}); err != nil {
		return nil, err
	}
	if stats.PublishedArticles, err = repos.Article.CountByStatus(models.ArticleStatusPublished); err != nil {
		return nil, err
	}
	if stats.DraftArticles, err = repos.Article.CountByStatus(models.ArticleStatusDraft); err != nil {
		return nil, err
	}
	if stats.PendingComments, err = repos.Comment.CountByStatus(models.CommentStatusPending); err != nil {
		return nil, err
	}
	if stats.TotalCategories, err = repos.Category.Count(); err != nil {
		return nil, err
	}
	if stats.TotalAuthors, err = repos.Author.Count(); err != nil {
		return nil, err
	}
	if stats.TotalViews, err = repos.Article.TotalViews(); err != nil {
		return nil, err
	}
	return &stats, nil
}

// InvalidateDashboard drops the cached aggregates after bulk changes.
func InvalidateDashboard() {
	if err := cache.Delete(dashboardCacheKey); err != nil {
		log.Debugf("Dashboard stats cache invalidation failed: %v", err)
	}
}
