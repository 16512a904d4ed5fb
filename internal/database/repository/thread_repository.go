package repository

import (
	"errors"

	"github.com/threadforgehq/thread-generator-backend/internal/models"
	"gorm.io/gorm"
)

// ThreadRepository handles database operations for ThreadRecord entities
type ThreadRepository struct {
	db *gorm.DB
}

// NewThreadRepository creates a new ThreadRepository instance
func NewThreadRepository(db *gorm.DB) *ThreadRepository {
	return &ThreadRepository{db: db}
}

// Create adds a new thread record
func (r *ThreadRepository) Create(record *models.ThreadRecord) error {
	return r.db.Create(record).Error
}

// GetByID retrieves a thread record by its ID
func (r *ThreadRepository) GetByID(id string) (*models.ThreadRecord, error) {
	var record models.ThreadRecord
	if err := r.db.Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Return nil, nil when not found
		}
		return nil, err
	}
	return &record, nil
}

// List retrieves thread records ordered by newest first, with the total count
func (r *ThreadRepository) List(limit, offset int) ([]models.ThreadRecord, int64, error) {
	var records []models.ThreadRecord
	var total int64

	if err := r.db.Model(&models.ThreadRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// ListByVideoID retrieves all thread records generated for a video
func (r *ThreadRepository) ListByVideoID(videoID string) ([]models.ThreadRecord, error) {
	var records []models.ThreadRecord
	if err := r.db.Where("video_id = ?", videoID).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
