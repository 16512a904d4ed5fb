package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/kkdai/youtube/v2"
	"github.com/sirupsen/logrus"

	"github.com/threadforgehq/thread-generator-backend/internal/executor"
	"github.com/threadforgehq/thread-generator-backend/internal/utils"
)

// Transcript is the extracted content of a video
type Transcript struct {
	VideoID  string
	Title    string
	Author   string
	Duration time.Duration
	Text     string
}

// MetadataFetcher resolves a YouTube URL to video metadata. Satisfied by
// *youtube.Client; mocked in tests.
type MetadataFetcher interface {
	GetVideoContext(ctx context.Context, url string) (*youtube.Video, error)
}

// TranscriptService extracts transcripts from YouTube videos. Metadata is
// resolved first so unavailable videos fail before yt-dlp is invoked;
// subtitles are then fetched with yt-dlp and cleaned to plain text.
type TranscriptService struct {
	executor  executor.Executor
	metadata  MetadataFetcher
	ytdlpPath string
	timeout   time.Duration
}

// NewTranscriptService creates a new TranscriptService
func NewTranscriptService(exec executor.Executor, metadata MetadataFetcher) *TranscriptService {
	ytdlpPath := os.Getenv("YTDLP_PATH")
	if ytdlpPath == "" {
		ytdlpPath = "yt-dlp"
	}

	timeout := 90 * time.Second
	if v := os.Getenv("YTDLP_TIMEOUT_SECONDS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}

	return &TranscriptService{
		executor:  exec,
		metadata:  metadata,
		ytdlpPath: ytdlpPath,
		timeout:   timeout,
	}
}

// Fetch resolves the video and returns its transcript
func (s *TranscriptService) Fetch(ctx context.Context, videoURL string) (*Transcript, error) {
	videoID, err := utils.ExtractVideoID(videoURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVideoURL, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	video, err := s.metadata.GetVideoContext(ctx, videoURL)
	if err != nil {
		logrus.Warnf("Failed to resolve video %s: %v", videoID, err)
		return nil, fmt.Errorf("%w: %v", ErrVideoUnavailable, err)
	}

	text, err := s.fetchSubtitles(ctx, videoID, videoURL)
	if err != nil {
		return nil, err
	}

	return &Transcript{
		VideoID:  videoID,
		Title:    video.Title,
		Author:   video.Author,
		Duration: video.Duration,
		Text:     text,
	}, nil
}

// fetchSubtitles downloads subtitle tracks with yt-dlp into a temp dir and
// returns the cleaned plain text
func (s *TranscriptService) fetchSubtitles(ctx context.Context, videoID, videoURL string) (string, error) {
	tempDir, err := os.MkdirTemp("", "thread-gen-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	args := []string{
		"--skip-download",
		"--write-auto-sub",
		"--write-sub",
		"--sub-lang", "en,en-US,en-GB",
		"--sub-format", "vtt",
		"--no-playlist",
		"--no-warnings",
		"--output", filepath.Join(tempDir, "%(id)s"),
		videoURL,
	}

	if _, err := s.executor.Execute(ctx, s.ytdlpPath, args...); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("%w: yt-dlp timed out after %v", ErrVideoUnavailable, s.timeout)
		}
		return "", fmt.Errorf("%w: %v", ErrVideoUnavailable, err)
	}

	content, err := s.readSubtitleFile(tempDir, videoID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoTranscript, err)
	}

	text := utils.CleanSubtitles(content)
	if text == "" {
		return "", fmt.Errorf("%w: subtitle file contained no text", ErrNoTranscript)
	}

	return text, nil
}

// readSubtitleFile looks for the downloaded subtitle file in any of the
// requested languages
func (s *TranscriptService) readSubtitleFile(dir, videoID string) (string, error) {
	for _, lang := range []string{"en", "en-US", "en-GB"} {
		path := filepath.Join(dir, fmt.Sprintf("%s.%s.vtt", videoID, lang))
		content, err := os.ReadFile(path)
		if err == nil {
			return string(content), nil
		}
	}

	// Auto-generated tracks sometimes carry a region suffix we did not ask
	// for; fall back to any .vtt for this video.
	matches, err := filepath.Glob(filepath.Join(dir, videoID+"*.vtt"))
	if err == nil && len(matches) > 0 {
		content, err := os.ReadFile(matches[0])
		if err == nil {
			return string(content), nil
		}
	}

	return "", fmt.Errorf("subtitle file not found for video %s", videoID)
}
