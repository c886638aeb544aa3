package repository

import (
	"gorm.io/gorm"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/models"
)

// articleRepository implements the ArticleRepository interface
type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository instance
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) withRelations() *gorm.DB {
	return r.db.Preload("Category").Preload("Author")
}

func applyFilter(q *gorm.DB, filter ArticleFilter) *gorm.DB {
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.CategoryID != 0 {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if filter.AuthorID != 0 {
		q = q.Where("author_id = ?", filter.AuthorID)
	}
	return q
}

// Create creates a new article in the database
func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

// GetByID retrieves an article by its ID
func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.withRelations().First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// GetBySlug retrieves an article by its slug
func (r *articleRepository) GetBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.withRelations().Where("slug = ?", slug).First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Update saves changes to an existing article
func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

// Delete removes an article. Comments keep their article_id; only the
// referenced row disappears.
func (r *articleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}

// List retrieves articles matching the filter, newest published first.
func (r *articleRepository) List(filter ArticleFilter, offset, limit int) ([]models.Article, error) {
	var articles []models.Article
	err := applyFilter(r.withRelations(), filter).
		Order("published_at DESC, created_at DESC").
		Offset(offset).Limit(limit).Find(&articles).Error
	return articles, err
}

// Count returns the number of articles matching the filter
func (r *articleRepository) Count(filter ArticleFilter) (int64, error) {
	var count int64
	err := applyFilter(r.db.Model(&models.Article{}), filter).Count(&count).Error
	return count, err
}

// GetFeatured retrieves published featured articles, newest first
func (r *articleRepository) GetFeatured(limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.withRelations().
		Where("status = ? AND is_featured = ?", models.ArticleStatusPublished, true).
		Order("published_at DESC").Limit(limit).Find(&articles).Error
	return articles, err
}

// GetBreaking retrieves published breaking-news articles, newest first
func (r *articleRepository) GetBreaking(limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.withRelations().
		Where("status = ? AND is_breaking = ?", models.ArticleStatusPublished, true).
		Order("published_at DESC").Limit(limit).Find(&articles).Error
	return articles, err
}

// GetTrending retrieves published articles ordered by views descending
func (r *articleRepository) GetTrending(limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.withRelations().
		Where("status = ?", models.ArticleStatusPublished).
		Order("views DESC").Limit(limit).Find(&articles).Error
	return articles, err
}

func searchFilter(q *gorm.DB, term string) *gorm.DB {
	like := "%" + term + "%"
	return q.Where("status = ?", models.ArticleStatusPublished).
		Where("title LIKE ? OR excerpt LIKE ? OR content LIKE ?", like, like, like)
}

// Search finds published articles whose title, excerpt or content
// contains the term, newest published first.
func (r *articleRepository) Search(term string, offset, limit int) ([]models.Article, error) {
	var articles []models.Article
	err := searchFilter(r.withRelations(), term).
		Order("published_at DESC").Offset(offset).Limit(limit).Find(&articles).Error
	return articles, err
}

// CountSearch mirrors the Search filter as a separate count query
func (r *articleRepository) CountSearch(term string) (int64, error) {
	var count int64
	err := searchFilter(r.db.Model(&models.Article{}), term).Count(&count).Error
	return count, err
}

// IncrementViews bumps the view counter by one with a single atomic
// UPDATE, guarded so only published articles ever count views.
func (r *articleRepository) IncrementViews(id uint) error {
	return r.db.Model(&models.Article{}).
		Where("id = ? AND status = ?", id, models.ArticleStatusPublished).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

// SlugExists checks if a slug already exists
func (r *articleRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// SlugExistsExceptID checks if a slug exists excluding a specific ID
func (r *articleRepository) SlugExistsExceptID(slug string, id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("slug = ? AND id != ?", slug, id).Count(&count).Error
	return count > 0, err
}

// CountByStatus returns the number of articles in one status
func (r *articleRepository) CountByStatus(status models.ArticleStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// TotalViews sums the view counters across all articles
func (r *articleRepository) TotalViews() (uint64, error) {
	var total *uint64
	err := r.db.Model(&models.Article{}).Select("SUM(views)").Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

// CountPerCategory returns article counts keyed by category ID
func (r *articleRepository) CountPerCategory() (map[uint]int64, error) {
	type row struct {
		CategoryID uint
		N          int64
	}
	var rows []row
	err := r.db.Model(&models.Article{}).
		Select("category_id, COUNT(*) AS n").
		Group("category_id").Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, rw := range rows {
		counts[rw.CategoryID] = rw.N
	}
	return counts, nil
}

// StatsByAuthor aggregates article count, total views and the latest
// publication time for one author.
func (r *articleRepository) StatsByAuthor(authorID uint) (*AuthorStats, error) {
	var stats AuthorStats
	err := r.db.Model(&models.Article{}).
		Select("COUNT(*) AS article_count, COALESCE(SUM(views), 0) AS total_views, MAX(published_at) AS last_published").
		Where("author_id = ?", authorID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
