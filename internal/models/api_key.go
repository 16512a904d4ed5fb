package models

import (
	"time"
)

// APIKey represents an API key for the management endpoints.
// Only the bcrypt hash is stored; the plaintext key is shown once at creation.
type APIKey struct {
	ID         string     `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	Name       string     `json:"name" gorm:"type:varchar(255);not null"`
	Prefix     string     `json:"prefix" gorm:"type:varchar(16);not null;unique;index"`
	KeyHash    string     `json:"-" gorm:"type:varchar(255);not null"`
	IsActive   bool       `json:"is_active" gorm:"default:true;index"`
	LastUsedAt *time.Time `json:"last_used_at"`
}

// TableName specifies the table name for the APIKey model
func (APIKey) TableName() string {
	return "api_keys"
}

// CreateAPIKeyRequest is the request body for creating an API key
type CreateAPIKeyRequest struct {
	Name string `json:"name" binding:"required" example:"ci-pipeline"`
}

// CreateAPIKeyResponse returns the plaintext key exactly once
type CreateAPIKeyResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	APIKey string `json:"api_key"`
}
