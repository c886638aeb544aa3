package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/models"
)

// epaperRepository implements the EpaperRepository interface
type epaperRepository struct {
	db *gorm.DB
}

// NewEpaperRepository creates a new e-paper repository instance
func NewEpaperRepository(db *gorm.DB) EpaperRepository {
	return &epaperRepository{db: db}
}

// Create creates a new e-paper issue in the database
func (r *epaperRepository) Create(issue *models.EpaperIssue) error {
	return r.db.Create(issue).Error
}

// GetByID retrieves an issue by its ID
func (r *epaperRepository) GetByID(id uint) (*models.EpaperIssue, error) {
	var issue models.EpaperIssue
	err := r.db.First(&issue, id).Error
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

// List retrieves issues newest first with pagination
func (r *epaperRepository) List(offset, limit int) ([]models.EpaperIssue, error) {
	var issues []models.EpaperIssue
	err := r.db.Order("issue_date DESC").Offset(offset).Limit(limit).Find(&issues).Error
	return issues, err
}

// Count returns the total number of issues
func (r *epaperRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.EpaperIssue{}).Count(&count).Error
	return count, err
}

// Delete removes an issue
func (r *epaperRepository) Delete(id uint) error {
	return r.db.Delete(&models.EpaperIssue{}, id).Error
}

// ExistsForDay checks whether an issue already exists on the calendar
// day of date, using a [dayStart, nextDay) range query.
func (r *epaperRepository) ExistsForDay(date time.Time) (bool, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nextDay := dayStart.AddDate(0, 0, 1)

	var count int64
	err := r.db.Model(&models.EpaperIssue{}).
		Where("issue_date >= ? AND issue_date < ?", dayStart, nextDay).
		Count(&count).Error
	return count > 0, err
}

// IncrementDownloads bumps the download counter with one atomic UPDATE
func (r *epaperRepository) IncrementDownloads(id uint) error {
	return r.db.Model(&models.EpaperIssue{}).Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + ?", 1)).Error
}

// IncrementViews bumps the view counter with one atomic UPDATE
func (r *epaperRepository) IncrementViews(id uint) error {
	return r.db.Model(&models.EpaperIssue{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}
