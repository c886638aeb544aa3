package repository

import (
	"gorm.io/gorm"
)

// Repositories holds all repository instances. It is constructed once
// in main with the shared connection handle and injected into the
// controllers; there is no process-global database state.
type Repositories struct {
	Article  ArticleRepository
	Comment  CommentRepository
	Category CategoryRepository
	Author   AuthorRepository
	Media    MediaRepository
	Epaper   EpaperRepository
	Hero     HeroRepository
	Setting  SettingRepository
	User     UserRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Article:  NewArticleRepository(db),
		Comment:  NewCommentRepository(db),
		Category: NewCategoryRepository(db),
		Author:   NewAuthorRepository(db),
		Media:    NewMediaRepository(db),
		Epaper:   NewEpaperRepository(db),
		Hero:     NewHeroRepository(db),
		Setting:  NewSettingRepository(db),
		User:     NewUserRepository(db),
	}
}
