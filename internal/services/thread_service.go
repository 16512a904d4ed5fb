package services

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/threadforgehq/thread-generator-backend/internal/models"
)

const (
	defaultThreadLength = 5
	maxThreadLength     = 25

	threadMaxTokens = 2000
	tweetMaxTokens  = 200

	generationTemperature = 0.7

	threadEventsQueue = "thread_events"
)

// CompletionClient produces completions from a prompt
type CompletionClient interface {
	Complete(ctx context.Context, system, prompt string, maxTokens int, temperature float64) (string, error)
	Model() string
}

// TranscriptFetcher resolves a video URL to its transcript
type TranscriptFetcher interface {
	Fetch(ctx context.Context, videoURL string) (*Transcript, error)
}

// ThreadStore persists generated threads
type ThreadStore interface {
	Create(record *models.ThreadRecord) error
}

// EventPublisher publishes generation events. May be nil when the message
// broker is not configured.
type EventPublisher interface {
	PublishMessage(ctx context.Context, queueName string, message map[string]interface{}) error
}

// ThreadService orchestrates transcript extraction and thread generation
type ThreadService struct {
	transcripts TranscriptFetcher
	llm         CompletionClient
	threadRepo  ThreadStore
	publisher   EventPublisher
}

// NewThreadService creates a new ThreadService. publisher may be nil.
func NewThreadService(transcripts TranscriptFetcher, llm CompletionClient, threadRepo ThreadStore, publisher EventPublisher) *ThreadService {
	return &ThreadService{
		transcripts: transcripts,
		llm:         llm,
		threadRepo:  threadRepo,
		publisher:   publisher,
	}
}

// GenerateThread extracts the video's transcript and turns it into an
// ordered sequence of tweets
func (s *ThreadService) GenerateThread(ctx context.Context, req *models.GenerateThreadRequest) (*models.GenerateThreadResponse, error) {
	threadLength := req.ThreadLength
	if threadLength <= 0 {
		threadLength = defaultThreadLength
	}
	if threadLength > maxThreadLength {
		threadLength = maxThreadLength
	}

	tone := req.Tone
	if tone == "" {
		tone = "neutral"
	}

	logrus.Infof("Generating thread for %s (length: %d, tone: %s)", req.VideoURL, threadLength, tone)
	start := time.Now()

	transcript, err := s.transcripts.Fetch(ctx, req.VideoURL)
	if err != nil {
		return nil, err
	}

	prompt := buildThreadPrompt(transcript.Text, threadLength, tone, req.WritingStyle)

	raw, err := s.llm.Complete(ctx, threadSystemPrompt, prompt, threadMaxTokens, generationTemperature)
	if err != nil {
		return nil, err
	}

	tweets := parseThread(raw, threadLength)
	if len(tweets) == 0 {
		return nil, ErrEmptyCompletion
	}
	if len(tweets) < threadLength {
		logrus.Warnf("Generated only %d tweets, requested %d", len(tweets), threadLength)
	}

	elapsed := time.Since(start)
	logrus.Infof("Generated %d tweets for video %s in %v", len(tweets), transcript.VideoID, elapsed)

	s.persistRecord(req, transcript, tweets, elapsed)
	s.publishEvent(ctx, transcript, len(tweets))

	return &models.GenerateThreadResponse{Thread: tweets}, nil
}

// GenerateTweet produces a single tweet about a topic
func (s *ThreadService) GenerateTweet(ctx context.Context, req *models.GenerateTweetRequest) (*models.GenerateTweetResponse, error) {
	tone := req.Tone
	if tone == "" {
		tone = "neutral"
	}

	logrus.Infof("Generating single tweet for topic: %s", req.Topic)

	prompt := buildTweetPrompt(req.Topic, tone, req.WritingStyle)
	tweet, err := s.llm.Complete(ctx, tweetSystemPrompt, prompt, tweetMaxTokens, generationTemperature)
	if err != nil {
		return nil, err
	}

	return &models.GenerateTweetResponse{Tweet: strings.TrimSpace(tweet)}, nil
}

// GenerateBio produces a profile bio
func (s *ThreadService) GenerateBio(ctx context.Context, req *models.GenerateBioRequest) (*models.GenerateBioResponse, error) {
	tone := req.Tone
	if tone == "" {
		tone = "professional"
	}

	logrus.Infof("Generating bio for %s", req.Name)

	prompt := buildBioPrompt(req.Name, req.Expertise, req.Interests, tone)
	bio, err := s.llm.Complete(ctx, bioSystemPrompt, prompt, tweetMaxTokens, generationTemperature)
	if err != nil {
		return nil, err
	}

	return &models.GenerateBioResponse{Bio: strings.TrimSpace(bio)}, nil
}

// persistRecord stores the generation result for history. Failures are
// logged, not surfaced: the thread was already generated.
func (s *ThreadService) persistRecord(req *models.GenerateThreadRequest, transcript *Transcript, tweets []string, elapsed time.Duration) {
	if s.threadRepo == nil {
		return
	}

	tweetsJSON, err := json.Marshal(tweets)
	if err != nil {
		logrus.Errorf("Failed to marshal tweets for history: %v", err)
		return
	}

	record := &models.ThreadRecord{
		ID:           uuid.NewString(),
		VideoID:      transcript.VideoID,
		VideoURL:     req.VideoURL,
		VideoTitle:   transcript.Title,
		VideoAuthor:  transcript.Author,
		ThreadLength: len(tweets),
		Tone:         req.Tone,
		WritingStyle: req.WritingStyle,
		Tweets:       string(tweetsJSON),
		TweetCount:   len(tweets),
		Model:        s.llm.Model(),
		GenerationMs: elapsed.Milliseconds(),
	}

	if err := s.threadRepo.Create(record); err != nil {
		logrus.Errorf("Failed to persist thread record for video %s: %v", transcript.VideoID, err)
	}
}

// publishEvent notifies downstream consumers about a completed generation
func (s *ThreadService) publishEvent(ctx context.Context, transcript *Transcript, tweetCount int) {
	if s.publisher == nil {
		return
	}

	message := map[string]interface{}{
		"event":       "thread.generated",
		"video_id":    transcript.VideoID,
		"video_title": transcript.Title,
		"tweet_count": tweetCount,
		"timestamp":   time.Now().Format(time.RFC3339),
	}

	if err := s.publisher.PublishMessage(ctx, threadEventsQueue, message); err != nil {
		logrus.Warnf("Failed to publish thread event: %v", err)
	}
}

var tweetMarkerRe = regexp.MustCompile(`^\d+[.)]\s*`)

// parseThread splits a completion into discrete tweets. Tweets are delimited
// by numbered markers ("1.", "2." ...); continuation lines stay attached to
// the tweet they follow. Order is preserved and the result is capped at
// maxLength.
func parseThread(raw string, maxLength int) []string {
	var tweets []string
	var current []string

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if tweetMarkerRe.MatchString(line) {
			if len(current) > 0 {
				tweets = append(tweets, strings.Join(current, "\n"))
			}
			current = []string{line}
		} else if len(current) > 0 {
			current = append(current, line)
		}
	}

	if len(current) > 0 {
		tweets = append(tweets, strings.Join(current, "\n"))
	}

	cleaned := make([]string, 0, len(tweets))
	for _, tweet := range tweets {
		tweet = strings.TrimSpace(tweet)
		if tweet != "" {
			cleaned = append(cleaned, tweet)
		}
	}

	if len(cleaned) > maxLength {
		cleaned = cleaned[:maxLength]
	}

	return cleaned
}
