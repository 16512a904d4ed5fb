package repository

import (
	"errors"
	"time"

	"github.com/threadforgehq/thread-generator-backend/internal/models"
	"gorm.io/gorm"
)

// APIKeyRepository handles database operations for APIKey entities
type APIKeyRepository struct {
	db *gorm.DB
}

// NewAPIKeyRepository creates a new APIKeyRepository instance
func NewAPIKeyRepository(db *gorm.DB) *APIKeyRepository {
	return &APIKeyRepository{db: db}
}

// Create adds a new API key
func (r *APIKeyRepository) Create(apiKey *models.APIKey) error {
	return r.db.Create(apiKey).Error
}

// GetByPrefix retrieves an API key by its public prefix
func (r *APIKeyRepository) GetByPrefix(prefix string) (*models.APIKey, error) {
	var apiKey models.APIKey
	if err := r.db.Where("prefix = ?", prefix).First(&apiKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Return nil, nil when not found
		}
		return nil, err
	}
	return &apiKey, nil
}

// GetByID retrieves an API key by its ID
func (r *APIKeyRepository) GetByID(id string) (*models.APIKey, error) {
	var apiKey models.APIKey
	if err := r.db.Where("id = ?", id).First(&apiKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &apiKey, nil
}

// List retrieves all API keys
func (r *APIKeyRepository) List() ([]models.APIKey, error) {
	var apiKeys []models.APIKey
	if err := r.db.Order("created_at DESC").Find(&apiKeys).Error; err != nil {
		return nil, err
	}
	return apiKeys, nil
}

// Count returns the number of API keys
func (r *APIKeyRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.APIKey{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateLastUsed updates the last used timestamp for an API key
func (r *APIKeyRepository) UpdateLastUsed(id string) error {
	now := time.Now()
	return r.db.Model(&models.APIKey{}).Where("id = ?", id).Update("last_used_at", now).Error
}

// Deactivate disables an API key without deleting it
func (r *APIKeyRepository) Deactivate(id string) (bool, error) {
	result := r.db.Model(&models.APIKey{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
