package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/threadforgehq/thread-generator-backend/internal/database/repository"
	"github.com/threadforgehq/thread-generator-backend/internal/services/excel"
)

// HistoryHandler serves the generated-thread history endpoints
type HistoryHandler struct {
	threadRepo   *repository.ThreadRepository
	excelService *excel.Service
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(threadRepo *repository.ThreadRepository, excelService *excel.Service) *HistoryHandler {
	return &HistoryHandler{
		threadRepo:   threadRepo,
		excelService: excelService,
	}
}

// ListThreads godoc
// @Summary List generated threads
// @Tags threads
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/threads [get]
func (h *HistoryHandler) ListThreads(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	records, total, err := h.threadRepo.List(pageSize, (page-1)*pageSize)
	if err != nil {
		logrus.Errorf("Failed to list threads: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list threads", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"threads":   records,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetThread godoc
// @Summary Get a generated thread by ID
// @Tags threads
// @Produce json
// @Security BearerAuth
// @Param id path string true "Thread record ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/threads/{id} [get]
func (h *HistoryHandler) GetThread(c *gin.Context) {
	id := c.Param("id")

	record, err := h.threadRepo.GetByID(id)
	if err != nil {
		logrus.Errorf("Failed to get thread %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get thread", "details": err.Error()})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Thread not found"})
		return
	}

	var tweets []string
	if err := json.Unmarshal([]byte(record.Tweets), &tweets); err != nil {
		logrus.Warnf("Failed to unmarshal tweets for thread %s: %v", id, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"record": record,
		"thread": tweets,
	})
}

// ExportThreads godoc
// @Summary Export the thread history as an Excel file
// @Tags threads
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/threads/export [get]
func (h *HistoryHandler) ExportThreads(c *gin.Context) {
	result, err := h.excelService.ExportThreads()
	if err != nil {
		logrus.Errorf("Failed to export threads: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export threads", "details": err.Error()})
		return
	}

	c.FileAttachment(result.Path, result.Filename)
}
