package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/threadforgehq/thread-generator-backend/internal/models"
)

// ContentGenerator is the slice of the thread service the standalone
// tweet/bio endpoints need
type ContentGenerator interface {
	GenerateTweet(ctx context.Context, req *models.GenerateTweetRequest) (*models.GenerateTweetResponse, error)
	GenerateBio(ctx context.Context, req *models.GenerateBioRequest) (*models.GenerateBioResponse, error)
}

// GenerateHandler serves the single-tweet and bio endpoints
type GenerateHandler struct {
	contentService ContentGenerator
}

// NewGenerateHandler creates a new generate handler
func NewGenerateHandler(contentService ContentGenerator) *GenerateHandler {
	return &GenerateHandler{
		contentService: contentService,
	}
}

// GenerateTweet godoc
// @Summary Generate a single tweet about a topic
// @Tags generate
// @Accept json
// @Produce json
// @Param request body models.GenerateTweetRequest true "Generate tweet request"
// @Success 200 {object} models.GenerateTweetResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/generate-tweet [post]
func (h *GenerateHandler) GenerateTweet(c *gin.Context) {
	var req models.GenerateTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "reason": "invalid_request", "details": err.Error()})
		return
	}

	response, err := h.contentService.GenerateTweet(c.Request.Context(), &req)
	if err != nil {
		status, reason := classifyGenerationError(err)
		logrus.Errorf("Failed to generate tweet for topic %q: %v", req.Topic, err)
		c.JSON(status, gin.H{"error": "Failed to generate tweet", "reason": reason, "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GenerateBio godoc
// @Summary Generate a profile bio
// @Tags generate
// @Accept json
// @Produce json
// @Param request body models.GenerateBioRequest true "Generate bio request"
// @Success 200 {object} models.GenerateBioResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/generate-bio [post]
func (h *GenerateHandler) GenerateBio(c *gin.Context) {
	var req models.GenerateBioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "reason": "invalid_request", "details": err.Error()})
		return
	}

	response, err := h.contentService.GenerateBio(c.Request.Context(), &req)
	if err != nil {
		status, reason := classifyGenerationError(err)
		logrus.Errorf("Failed to generate bio for %s: %v", req.Name, err)
		c.JSON(status, gin.H{"error": "Failed to generate bio", "reason": reason, "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}
