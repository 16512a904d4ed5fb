package excel

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/threadforgehq/thread-generator-backend/internal/database/repository"
)

const exportPageSize = 1000

// Service handles Excel exports of the thread history
type Service struct {
	threadRepo *repository.ThreadRepository
	exportsDir string
}

// NewExcelService creates a new Excel service instance
func NewExcelService(threadRepo *repository.ThreadRepository, exportsDir string) *Service {
	if _, err := os.Stat(exportsDir); os.IsNotExist(err) {
		os.MkdirAll(exportsDir, 0755)
	}

	return &Service{
		threadRepo: threadRepo,
		exportsDir: exportsDir,
	}
}

// ExportResult contains the result of an export operation
type ExportResult struct {
	Filename string
	Path     string
	Rows     int
}

// ExportThreads writes the thread history to an .xlsx file and returns its location
func (s *Service) ExportThreads() (*ExportResult, error) {
	records, _, err := s.threadRepo.List(exportPageSize, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load thread records: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"D9E1F2"},
			Pattern: 1,
		},
	})

	headers := []string{"Created At", "Video Title", "Video Author", "Video URL", "Tone", "Tweet Count", "Model", "Generation (ms)", "Tweets"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for rowIdx, record := range records {
		var tweets []string
		if err := json.Unmarshal([]byte(record.Tweets), &tweets); err != nil {
			tweets = []string{record.Tweets}
		}

		values := []interface{}{
			record.CreatedAt.Format("2006-01-02 15:04:05"),
			record.VideoTitle,
			record.VideoAuthor,
			record.VideoURL,
			record.Tone,
			record.TweetCount,
			record.Model,
			record.GenerationMs,
			strings.Join(tweets, "\n\n"),
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	f.SetColWidth(sheet, "A", "A", 20)
	f.SetColWidth(sheet, "B", "D", 40)
	f.SetColWidth(sheet, "I", "I", 80)

	filename := fmt.Sprintf("threads_%d.xlsx", time.Now().Unix())
	path := filepath.Join(s.exportsDir, filename)

	if err := f.SaveAs(path); err != nil {
		return nil, fmt.Errorf("failed to save Excel file: %w", err)
	}

	return &ExportResult{
		Filename: filename,
		Path:     path,
		Rows:     len(records),
	}, nil
}
