package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadforgehq/thread-generator-backend/internal/models"
)

type fakeTranscriptFetcher struct {
	transcript *Transcript
	err        error
	calls      int
}

func (f *fakeTranscriptFetcher) Fetch(ctx context.Context, videoURL string) (*Transcript, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.transcript, nil
}

type fakeCompletionClient struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (f *fakeCompletionClient) Complete(ctx context.Context, system, prompt string, maxTokens int, temperature float64) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeCompletionClient) Model() string {
	return "test-model"
}

type fakeThreadStore struct {
	records []*models.ThreadRecord
}

func (f *fakeThreadStore) Create(record *models.ThreadRecord) error {
	f.records = append(f.records, record)
	return nil
}

type fakePublisher struct {
	messages []map[string]interface{}
}

func (f *fakePublisher) PublishMessage(ctx context.Context, queueName string, message map[string]interface{}) error {
	f.messages = append(f.messages, message)
	return nil
}

func testTranscript() *Transcript {
	return &Transcript{
		VideoID:  "dQw4w9WgXcQ",
		Title:    "Test Video",
		Author:   "Test Channel",
		Duration: 3 * time.Minute,
		Text:     "this video explains how compilers optimize loops",
	}
}

func TestGenerateThreadSuccess(t *testing.T) {
	fetcher := &fakeTranscriptFetcher{transcript: testTranscript()}
	llm := &fakeCompletionClient{response: "1. Compilers are magic 🔧\n2. Loop unrolling explained\n3. Final takeaways #compilers"}
	store := &fakeThreadStore{}
	publisher := &fakePublisher{}

	service := NewThreadService(fetcher, llm, store, publisher)

	resp, err := service.GenerateThread(context.Background(), &models.GenerateThreadRequest{
		VideoURL:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		ThreadLength: 3,
	})
	require.NoError(t, err)
	require.Len(t, resp.Thread, 3)

	// Ordering is preserved exactly as produced
	assert.Equal(t, "1. Compilers are magic 🔧", resp.Thread[0])
	assert.Equal(t, "2. Loop unrolling explained", resp.Thread[1])
	assert.Equal(t, "3. Final takeaways #compilers", resp.Thread[2])

	require.Len(t, store.records, 1)
	assert.Equal(t, "dQw4w9WgXcQ", store.records[0].VideoID)
	assert.Equal(t, 3, store.records[0].TweetCount)
	assert.Equal(t, "test-model", store.records[0].Model)

	require.Len(t, publisher.messages, 1)
	assert.Equal(t, "thread.generated", publisher.messages[0]["event"])
}

func TestGenerateThreadDeterministicOrdering(t *testing.T) {
	fetcher := &fakeTranscriptFetcher{transcript: testTranscript()}
	llm := &fakeCompletionClient{response: "1. first\n2. second\n3. third\n4. fourth\n5. fifth"}
	service := NewThreadService(fetcher, llm, &fakeThreadStore{}, nil)

	req := &models.GenerateThreadRequest{VideoURL: "https://youtu.be/dQw4w9WgXcQ"}

	first, err := service.GenerateThread(context.Background(), req)
	require.NoError(t, err)
	second, err := service.GenerateThread(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Thread, second.Thread)
}

func TestGenerateThreadTranscriptErrorSkipsLLM(t *testing.T) {
	fetcher := &fakeTranscriptFetcher{err: fmt.Errorf("%w: private video", ErrVideoUnavailable)}
	llm := &fakeCompletionClient{response: "1. never used"}
	service := NewThreadService(fetcher, llm, &fakeThreadStore{}, nil)

	_, err := service.GenerateThread(context.Background(), &models.GenerateThreadRequest{
		VideoURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	})
	assert.ErrorIs(t, err, ErrVideoUnavailable)
	assert.Equal(t, 0, llm.calls)
}

func TestGenerateThreadUnparseableCompletion(t *testing.T) {
	fetcher := &fakeTranscriptFetcher{transcript: testTranscript()}
	llm := &fakeCompletionClient{response: "sorry, I cannot produce a thread for this content"}
	store := &fakeThreadStore{}
	service := NewThreadService(fetcher, llm, store, nil)

	_, err := service.GenerateThread(context.Background(), &models.GenerateThreadRequest{
		VideoURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	})
	assert.ErrorIs(t, err, ErrEmptyCompletion)
	assert.Empty(t, store.records)
}

func TestGenerateThreadDefaultsAppliedInPrompt(t *testing.T) {
	fetcher := &fakeTranscriptFetcher{transcript: testTranscript()}
	llm := &fakeCompletionClient{response: "1. a\n2. b\n3. c\n4. d\n5. e"}
	service := NewThreadService(fetcher, llm, &fakeThreadStore{}, nil)

	_, err := service.GenerateThread(context.Background(), &models.GenerateThreadRequest{
		VideoURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	})
	require.NoError(t, err)

	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "Generate exactly 5 tweets")
	assert.Contains(t, llm.prompts[0], "Use a balanced and objective tone")
	assert.Contains(t, llm.prompts[0], testTranscript().Text)
}

func TestGenerateTweet(t *testing.T) {
	llm := &fakeCompletionClient{response: "  Go ships a race detector out of the box 🏁  "}
	service := NewThreadService(&fakeTranscriptFetcher{}, llm, nil, nil)

	resp, err := service.GenerateTweet(context.Background(), &models.GenerateTweetRequest{
		Topic: "go race detector",
		Tone:  "enthusiastic",
	})
	require.NoError(t, err)
	assert.Equal(t, "Go ships a race detector out of the box 🏁", resp.Tweet)
	assert.Contains(t, llm.prompts[0], "go race detector")
	assert.Contains(t, llm.prompts[0], "Use an energetic and excited tone")
}

func TestGenerateBio(t *testing.T) {
	llm := &fakeCompletionClient{response: "Distributed systems engineer ⚙️"}
	service := NewThreadService(&fakeTranscriptFetcher{}, llm, nil, nil)

	resp, err := service.GenerateBio(context.Background(), &models.GenerateBioRequest{
		Name:      "Jane Doe",
		Expertise: "distributed systems",
		Interests: []string{"go", "databases"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Distributed systems engineer ⚙️", resp.Bio)
	assert.Contains(t, llm.prompts[0], "go, databases")
}

func TestParseThread(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		maxLength int
		want      []string
	}{
		{
			name:      "simple numbered list",
			raw:       "1. first tweet\n2. second tweet\n3. third tweet",
			maxLength: 5,
			want:      []string{"1. first tweet", "2. second tweet", "3. third tweet"},
		},
		{
			name:      "multiline tweets stay together",
			raw:       "1. first tweet\ncontinues here\n2. second tweet",
			maxLength: 5,
			want:      []string{"1. first tweet\ncontinues here", "2. second tweet"},
		},
		{
			name:      "preamble before first marker is dropped",
			raw:       "Here is your thread:\n\n1. first\n2. second",
			maxLength: 5,
			want:      []string{"1. first", "2. second"},
		},
		{
			name:      "overflow is capped",
			raw:       "1. a\n2. b\n3. c\n4. d",
			maxLength: 2,
			want:      []string{"1. a", "2. b"},
		},
		{
			name:      "parenthesis markers",
			raw:       "1) first\n2) second",
			maxLength: 5,
			want:      []string{"1) first", "2) second"},
		},
		{
			name:      "blank lines ignored",
			raw:       "1. first\n\n\n2. second\n",
			maxLength: 5,
			want:      []string{"1. first", "2. second"},
		},
		{
			name:      "no markers",
			raw:       "just some prose without numbering",
			maxLength: 5,
			want:      []string{},
		},
		{
			name:      "empty input",
			raw:       "",
			maxLength: 5,
			want:      []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseThread(tt.raw, tt.maxLength)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
