package repository

import (
	"gorm.io/gorm"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/models"
)

// authorRepository implements the AuthorRepository interface
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository creates a new author repository instance
func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &authorRepository{db: db}
}

// Create creates a new author in the database
func (r *authorRepository) Create(author *models.Author) error {
	return r.db.Create(author).Error
}

// GetByID retrieves an author by their ID
func (r *authorRepository) GetByID(id uint) (*models.Author, error) {
	var author models.Author
	err := r.db.First(&author, id).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// GetByEmail retrieves an author by their email
func (r *authorRepository) GetByEmail(email string) (*models.Author, error) {
	var author models.Author
	err := r.db.Where("email = ?", email).First(&author).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// List retrieves authors with pagination
func (r *authorRepository) List(offset, limit int) ([]models.Author, error) {
	var authors []models.Author
	err := r.db.Order("name ASC").Offset(offset).Limit(limit).Find(&authors).Error
	return authors, err
}

// Count returns the total number of authors
func (r *authorRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Author{}).Count(&count).Error
	return count, err
}

// Update saves changes to an existing author
func (r *authorRepository) Update(author *models.Author) error {
	return r.db.Save(author).Error
}

// Delete removes an author. Reference checks happen in the controller.
func (r *authorRepository) Delete(id uint) error {
	return r.db.Delete(&models.Author{}, id).Error
}

// EmailExists checks if an email is already taken
func (r *authorRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Author{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// EmailExistsExceptID checks if an email is taken excluding a specific ID
func (r *authorRepository) EmailExistsExceptID(email string, id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Author{}).Where("email = ? AND id != ?", email, id).Count(&count).Error
	return count > 0, err
}
