package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/threadforgehq/thread-generator-backend/internal/models"
	"github.com/threadforgehq/thread-generator-backend/internal/services/auth"
)

// AuthHandler serves the token exchange endpoint
type AuthHandler struct {
	authService *auth.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Token godoc
// @Summary Exchange an API key for a short-lived bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.TokenRequest true "Token request"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/v1/auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	response, err := h.authService.IssueToken(req.APIKey)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
		return
	}

	c.JSON(http.StatusOK, response)
}
