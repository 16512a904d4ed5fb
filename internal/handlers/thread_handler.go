package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/threadforgehq/thread-generator-backend/internal/models"
	"github.com/threadforgehq/thread-generator-backend/internal/services"
)

// ThreadGenerator is the slice of the thread service this handler needs
type ThreadGenerator interface {
	GenerateThread(ctx context.Context, req *models.GenerateThreadRequest) (*models.GenerateThreadResponse, error)
}

// ThreadHandler serves the thread generation endpoint
type ThreadHandler struct {
	threadService ThreadGenerator
}

// NewThreadHandler creates a new thread handler
func NewThreadHandler(threadService ThreadGenerator) *ThreadHandler {
	return &ThreadHandler{
		threadService: threadService,
	}
}

// GenerateThread godoc
// @Summary Generate a Twitter thread from a YouTube video
// @Description Extracts the video's transcript and turns it into an ordered sequence of tweets
// @Tags threads
// @Accept json
// @Produce json
// @Param request body models.GenerateThreadRequest true "Generate thread request"
// @Success 200 {object} models.GenerateThreadResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /generate-thread [post]
func (h *ThreadHandler) GenerateThread(c *gin.Context) {
	var req models.GenerateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "reason": "invalid_request", "details": err.Error()})
		return
	}

	response, err := h.threadService.GenerateThread(c.Request.Context(), &req)
	if err != nil {
		status, reason := classifyGenerationError(err)
		if status >= http.StatusInternalServerError {
			logrus.Errorf("Failed to generate thread for %s: %v", req.VideoURL, err)
		}
		c.JSON(status, gin.H{"error": "Failed to generate thread", "reason": reason, "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// classifyGenerationError maps pipeline sentinel errors to an HTTP status
// and a stable reason code so callers can distinguish failure modes
func classifyGenerationError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrInvalidVideoURL):
		return http.StatusBadRequest, "invalid_video_url"
	case errors.Is(err, services.ErrVideoUnavailable):
		return http.StatusBadGateway, "video_unavailable"
	case errors.Is(err, services.ErrNoTranscript):
		return http.StatusBadGateway, "no_transcript"
	case errors.Is(err, services.ErrEmptyCompletion):
		return http.StatusBadGateway, "empty_completion"
	case errors.Is(err, services.ErrGenerationFailed):
		return http.StatusBadGateway, "generation_failed"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
