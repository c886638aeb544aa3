package repository

import (
	"gorm.io/gorm"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/models"
)

// heroRepository implements the HeroRepository interface
type heroRepository struct {
	db *gorm.DB
}

// NewHeroRepository creates a new hero repository instance
func NewHeroRepository(db *gorm.DB) HeroRepository {
	return &heroRepository{db: db}
}

// Create creates a new hero banner in the database
func (r *heroRepository) Create(hero *models.Hero) error {
	return r.db.Create(hero).Error
}

// GetByID retrieves a hero banner by its ID
func (r *heroRepository) GetByID(id uint) (*models.Hero, error) {
	var hero models.Hero
	err := r.db.First(&hero, id).Error
	if err != nil {
		return nil, err
	}
	return &hero, nil
}

// GetActive retrieves active banners in display order
func (r *heroRepository) GetActive() ([]models.Hero, error) {
	var heroes []models.Hero
	err := r.db.Where("is_active = ?", true).
		Order("sort_order ASC, created_at DESC").Find(&heroes).Error
	return heroes, err
}

// GetAll retrieves every banner in display order
func (r *heroRepository) GetAll() ([]models.Hero, error) {
	var heroes []models.Hero
	err := r.db.Order("sort_order ASC, created_at DESC").Find(&heroes).Error
	return heroes, err
}

// Update saves changes to an existing hero banner
func (r *heroRepository) Update(hero *models.Hero) error {
	return r.db.Save(hero).Error
}

// Delete removes a hero banner
func (r *heroRepository) Delete(id uint) error {
	return r.db.Delete(&models.Hero{}, id).Error
}
