package repository

import (
	"gorm.io/gorm"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/models"
)

// mediaRepository implements the MediaRepository interface
type mediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository creates a new media repository instance
func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

// Create creates a new media record in the database
func (r *mediaRepository) Create(media *models.Media) error {
	return r.db.Create(media).Error
}

// GetByID retrieves a media record by its ID
func (r *mediaRepository) GetByID(id uint) (*models.Media, error) {
	var media models.Media
	err := r.db.First(&media, id).Error
	if err != nil {
		return nil, err
	}
	return &media, nil
}

// List retrieves media records, optionally filtered by folder, newest first
func (r *mediaRepository) List(folder string, offset, limit int) ([]models.Media, error) {
	var media []models.Media
	q := r.db.Order("created_at DESC").Offset(offset).Limit(limit)
	if folder != "" {
		q = q.Where("folder = ?", folder)
	}
	err := q.Find(&media).Error
	return media, err
}

// Count returns the number of media records, optionally per folder
func (r *mediaRepository) Count(folder string) (int64, error) {
	var count int64
	q := r.db.Model(&models.Media{})
	if folder != "" {
		q = q.Where("folder = ?", folder)
	}
	err := q.Count(&count).Error
	return count, err
}

// Update saves changes to an existing media record
func (r *mediaRepository) Update(media *models.Media) error {
	return r.db.Save(media).Error
}

// Delete removes a media record
func (r *mediaRepository) Delete(id uint) error {
	return r.db.Delete(&models.Media{}, id).Error
}
