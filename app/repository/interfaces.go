package repository

import (
	"time"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/models"
)

// ArticleFilter narrows article listings. Nil/zero fields are ignored.
type ArticleFilter struct {
	Status     models.ArticleStatus
	CategoryID uint
	AuthorID   uint
}

// AuthorStats provides aggregated counts for a single author.
type AuthorStats struct {
	ArticleCount  int64      `json:"article_count"`
	TotalViews    uint64     `json:"total_views"`
	LastPublished *time.Time `json:"last_published"`
}

// ArticleRepository defines the interface for article-related database operations
type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetBySlug(slug string) (*models.Article, error)
	Update(article *models.Article) error
	Delete(id uint) error
	List(filter ArticleFilter, offset, limit int) ([]models.Article, error)
	Count(filter ArticleFilter) (int64, error)
	GetFeatured(limit int) ([]models.Article, error)
	GetBreaking(limit int) ([]models.Article, error)
	GetTrending(limit int) ([]models.Article, error)
	Search(term string, offset, limit int) ([]models.Article, error)
	CountSearch(term string) (int64, error)
	IncrementViews(id uint) error
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uint) (bool, error)
	CountByStatus(status models.ArticleStatus) (int64, error)
	TotalViews() (uint64, error)
	CountPerCategory() (map[uint]int64, error)
	StatsByAuthor(authorID uint) (*AuthorStats, error)
}

// CommentRepository defines the interface for comment-related database operations
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id uint) (*models.Comment, error)
	Update(comment *models.Comment) error
	UpdateStatus(id uint, status models.CommentStatus) error
	// Delete removes the comment and every direct reply (one level).
	Delete(id uint) error
	// ListByArticle returns top-level comments newest first; status nil
	// means all statuses. Replies are not loaded here.
	ListByArticle(articleID uint, status *models.CommentStatus, offset, limit int) ([]models.Comment, error)
	CountByArticle(articleID uint, status *models.CommentStatus) (int64, error)
	// AttachApprovedReplies loads each comment's replies, always
	// filtered to approved regardless of the requester's privilege.
	AttachApprovedReplies(comments []models.Comment) ([]models.Comment, error)
	ListByStatus(status models.CommentStatus, offset, limit int) ([]models.Comment, error)
	CountByStatus(status models.CommentStatus) (int64, error)
}

// CategoryRepository defines the interface for category-related database operations
type CategoryRepository interface {
	Create(category *models.Category) error
	GetByID(id uint) (*models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	GetAll() ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uint) error
	Count() (int64, error)
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uint) (bool, error)
}

// AuthorRepository defines the interface for author-related database operations
type AuthorRepository interface {
	Create(author *models.Author) error
	GetByID(id uint) (*models.Author, error)
	GetByEmail(email string) (*models.Author, error)
	List(offset, limit int) ([]models.Author, error)
	Count() (int64, error)
	Update(author *models.Author) error
	Delete(id uint) error
	EmailExists(email string) (bool, error)
	EmailExistsExceptID(email string, id uint) (bool, error)
}

// MediaRepository defines the interface for media-related database operations
type MediaRepository interface {
	Create(media *models.Media) error
	GetByID(id uint) (*models.Media, error)
	List(folder string, offset, limit int) ([]models.Media, error)
	Count(folder string) (int64, error)
	Update(media *models.Media) error
	Delete(id uint) error
}

// EpaperRepository defines the interface for e-paper issue operations
type EpaperRepository interface {
	Create(issue *models.EpaperIssue) error
	GetByID(id uint) (*models.EpaperIssue, error)
	List(offset, limit int) ([]models.EpaperIssue, error)
	Count() (int64, error)
	Delete(id uint) error
	// ExistsForDay checks the one-issue-per-calendar-day constraint with
	// a [dayStart, nextDay) range query.
	ExistsForDay(date time.Time) (bool, error)
	IncrementDownloads(id uint) error
	IncrementViews(id uint) error
}

// HeroRepository defines the interface for hero banner operations
type HeroRepository interface {
	Create(hero *models.Hero) error
	GetByID(id uint) (*models.Hero, error)
	GetActive() ([]models.Hero, error)
	GetAll() ([]models.Hero, error)
	Update(hero *models.Hero) error
	Delete(id uint) error
}

// SettingRepository defines the interface for site settings
type SettingRepository interface {
	GetAll() ([]models.Setting, error)
	GetValue(key string) (string, error)
	SetValue(key, value string) error
}

// UserRepository defines the interface for dashboard user management
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	List(offset, limit int) ([]models.User, error)
	Count() (int64, error)
	Update(user *models.User) error
	Delete(id uint) error
	EmailExists(email string) (bool, error)
}
