package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/threadforgehq/thread-generator-backend/internal/database/repository"
	"github.com/threadforgehq/thread-generator-backend/internal/models"
	"github.com/threadforgehq/thread-generator-backend/internal/services/auth"
)

// APIKeyHandler serves the API key management endpoints
type APIKeyHandler struct {
	authService *auth.AuthService
	apiKeyRepo  *repository.APIKeyRepository
}

// NewAPIKeyHandler creates a new API key handler
func NewAPIKeyHandler(authService *auth.AuthService, apiKeyRepo *repository.APIKeyRepository) *APIKeyHandler {
	return &APIKeyHandler{
		authService: authService,
		apiKeyRepo:  apiKeyRepo,
	}
}

// CreateAPIKey godoc
// @Summary Create a new API key
// @Description The plaintext key is returned once and never stored
// @Tags api-keys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateAPIKeyRequest true "Create API key request"
// @Success 200 {object} models.CreateAPIKeyResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/api-keys [post]
func (h *APIKeyHandler) CreateAPIKey(c *gin.Context) {
	var req models.CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	plaintext, apiKey, err := h.authService.IssueAPIKey(req.Name)
	if err != nil {
		logrus.Errorf("Failed to create API key: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create API key", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.CreateAPIKeyResponse{
		ID:     apiKey.ID,
		Name:   apiKey.Name,
		APIKey: plaintext,
	})
}

// ListAPIKeys godoc
// @Summary List API keys
// @Tags api-keys
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.APIKey
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/api-keys [get]
func (h *APIKeyHandler) ListAPIKeys(c *gin.Context) {
	apiKeys, err := h.apiKeyRepo.List()
	if err != nil {
		logrus.Errorf("Failed to list API keys: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list API keys", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, apiKeys)
}

// DeleteAPIKey godoc
// @Summary Deactivate an API key
// @Tags api-keys
// @Produce json
// @Security BearerAuth
// @Param id path string true "API key ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/api-keys/{id} [delete]
func (h *APIKeyHandler) DeleteAPIKey(c *gin.Context) {
	id := c.Param("id")

	found, err := h.apiKeyRepo.Deactivate(id)
	if err != nil {
		logrus.Errorf("Failed to deactivate API key %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate API key", "details": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "API key not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
