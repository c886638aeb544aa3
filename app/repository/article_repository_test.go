package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/models"
)

func TestArticleRepository_IncrementViews(t *testing.T) {
	db := newTestDB(t)
	repo := NewArticleRepository(db)

	published := seedArticle(t, db, &models.Article{
		Title: "Published", Slug: "published", Content: "body",
		Status: models.ArticleStatusPublished, PublishedAt: publishedAt(0),
	})
	draft := seedArticle(t, db, &models.Article{
		Title: "Draft", Slug: "draft", Content: "body",
		Status: models.ArticleStatusDraft,
	})

	require.NoError(t, repo.IncrementViews(published.ID))
	require.NoError(t, repo.IncrementViews(published.ID))
	require.NoError(t, repo.IncrementViews(draft.ID))

	got, err := repo.GetByID(published.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), got.Views)

	got, err = repo.GetByID(draft.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), got.Views, "drafts never count views")
}

func TestArticleRepository_GetTrending(t *testing.T) {
	db := newTestDB(t)
	repo := NewArticleRepository(db)

	seedArticle(t, db, &models.Article{
		Title: "Mid", Slug: "mid", Content: "body", Views: 50,
		Status: models.ArticleStatusPublished, PublishedAt: publishedAt(0),
	})
	seedArticle(t, db, &models.Article{
		Title: "Top", Slug: "top", Content: "body", Views: 100,
		Status: models.ArticleStatusPublished, PublishedAt: publishedAt(0),
	})
	seedArticle(t, db, &models.Article{
		Title: "Low", Slug: "low", Content: "body", Views: 10,
		Status: models.ArticleStatusPublished, PublishedAt: publishedAt(0),
	})
	// Highest counter of all, but hidden: must not appear.
	seedArticle(t, db, &models.Article{
		Title: "Hidden", Slug: "hidden", Content: "body", Views: 999,
		Status: models.ArticleStatusDraft,
	})

	trending, err := repo.GetTrending(2)
	require.NoError(t, err)
	require.Len(t, trending, 2)
	assert.Equal(t, "Top", trending[0].Title)
	assert.Equal(t, "Mid", trending[1].Title)
}

func TestArticleRepository_SearchPublishedOnly(t *testing.T) {
	db := newTestDB(t)
	repo := NewArticleRepository(db)

	seedArticle(t, db, &models.Article{
		Title: "Metro water supply restored", Slug: "metro-water", Content: "body",
		Status: models.ArticleStatusPublished, PublishedAt: publishedAt(0),
	})
	seedArticle(t, db, &models.Article{
		Title: "Unrelated headline", Slug: "unrelated", Content: "the water table is dropping",
		Status: models.ArticleStatusPublished, PublishedAt: publishedAt(-time.Hour),
	})
	seedArticle(t, db, &models.Article{
		Title: "Water crisis draft", Slug: "water-draft", Content: "body",
		Status: models.ArticleStatusDraft,
	})

	results, err := repo.Search("water", 0, 10)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	count, err := repo.CountSearch("water")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountSearch("nothing-matches-this")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestArticleRepository_ListFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewArticleRepository(db)

	cat := seedCategory(t, db, "Sports", "sports")
	other := seedCategory(t, db, "City", "city")
	author := seedAuthor(t, db, "Priya", "priya@example.com")

	seedArticle(t, db, &models.Article{
		Title: "Match report", Slug: "match-report", Content: "body",
		CategoryID: cat.ID, AuthorID: author.ID,
		Status: models.ArticleStatusPublished, PublishedAt: publishedAt(0),
	})
	seedArticle(t, db, &models.Article{
		Title: "Council meeting", Slug: "council-meeting", Content: "body",
		CategoryID: other.ID, AuthorID: author.ID,
		Status: models.ArticleStatusDraft,
	})

	list, err := repo.List(ArticleFilter{CategoryID: cat.ID}, 0, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Match report", list[0].Title)
	assert.Equal(t, "Sports", list[0].Category.Name, "relations are preloaded")

	count, err := repo.Count(ArticleFilter{Status: models.ArticleStatusDraft})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = repo.Count(ArticleFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestArticleRepository_SlugExists(t *testing.T) {
	db := newTestDB(t)
	repo := NewArticleRepository(db)

	existing := seedArticle(t, db, &models.Article{
		Title: "Taken", Slug: "taken", Content: "body", Status: models.ArticleStatusDraft,
	})

	exists, err := repo.SlugExists("taken")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.SlugExists("free")
	require.NoError(t, err)
	assert.False(t, exists)

	// The row itself does not collide with its own slug on update.
	exists, err = repo.SlugExistsExceptID("taken", existing.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestArticleRepository_CountPerCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewArticleRepository(db)

	sports := seedCategory(t, db, "Sports", "sports")
	city := seedCategory(t, db, "City", "city")
	author := seedAuthor(t, db, "Priya", "priya@example.com")

	for _, slug := range []string{"a", "b"} {
		seedArticle(t, db, &models.Article{
			Title: "Sports " + slug, Slug: "sports-" + slug, Content: "body",
			CategoryID: sports.ID, AuthorID: author.ID,
			Status: models.ArticleStatusDraft,
		})
	}
	seedArticle(t, db, &models.Article{
		Title: "City a", Slug: "city-a", Content: "body",
		CategoryID: city.ID, AuthorID: author.ID,
		Status: models.ArticleStatusDraft,
	})

	counts, err := repo.CountPerCategory()
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[sports.ID])
	assert.Equal(t, int64(1), counts[city.ID])
}

func TestArticleRepository_StatsByAuthor(t *testing.T) {
	db := newTestDB(t)
	repo := NewArticleRepository(db)

	author := seedAuthor(t, db, "Priya", "priya@example.com")
	cat := seedCategory(t, db, "City", "city")

	early := publishedAt(-2 * time.Hour)
	late := publishedAt(-time.Hour)
	seedArticle(t, db, &models.Article{
		Title: "First", Slug: "first", Content: "body", Views: 5,
		CategoryID: cat.ID, AuthorID: author.ID,
		Status: models.ArticleStatusPublished, PublishedAt: early,
	})
	seedArticle(t, db, &models.Article{
		Title: "Second", Slug: "second", Content: "body", Views: 7,
		CategoryID: cat.ID, AuthorID: author.ID,
		Status: models.ArticleStatusPublished, PublishedAt: late,
	})

	stats, err := repo.StatsByAuthor(author.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.ArticleCount)
	assert.Equal(t, uint64(12), stats.TotalViews)
	require.NotNil(t, stats.LastPublished)
	assert.WithinDuration(t, *late, *stats.LastPublished, time.Second)
}

func TestArticleRepository_TotalViews(t *testing.T) {
	db := newTestDB(t)
	repo := NewArticleRepository(db)

	total, err := repo.TotalViews()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), total, "empty table sums to zero")

	seedArticle(t, db, &models.Article{
		Title: "A", Slug: "a", Content: "body", Views: 3, Status: models.ArticleStatusPublished, PublishedAt: publishedAt(0),
	})
	seedArticle(t, db, &models.Article{
		Title: "B", Slug: "b", Content: "body", Views: 4, Status: models.ArticleStatusDraft,
	})

	total, err = repo.TotalViews()
	require.NoError(t, err)
	assert.Equal(t, uint64(7), total)
}
