package models

import (
	"time"
)

// GenerateThreadRequest is the request body for thread generation
type GenerateThreadRequest struct {
	VideoURL     string `json:"video_url" binding:"required" example:"https://www.youtube.com/watch?v=dQw4w9WgXcQ"`
	ThreadLength int    `json:"thread_length,omitempty" example:"5"`
	Tone         string `json:"tone,omitempty" example:"casual"`
	WritingStyle string `json:"writing_style,omitempty" example:"short punchy sentences, no jargon"`
}

// GenerateThreadResponse carries the generated tweets in order
type GenerateThreadResponse struct {
	Thread []string `json:"thread"`
}

// ThreadRecord stores one completed generation for history and export
type ThreadRecord struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	VideoID      string `json:"video_id" gorm:"type:varchar(16);index"`
	VideoURL     string `json:"video_url" gorm:"type:varchar(512)"`
	VideoTitle   string `json:"video_title" gorm:"type:varchar(512)"`
	VideoAuthor  string `json:"video_author" gorm:"type:varchar(255)"`
	ThreadLength int    `json:"thread_length"`
	Tone         string `json:"tone" gorm:"type:varchar(32)"`
	WritingStyle string `json:"writing_style" gorm:"type:text"`

	// Tweets is the generated thread serialized as a JSON array of strings
	Tweets     string `json:"-" gorm:"type:text"`
	TweetCount int    `json:"tweet_count"`
	Model      string `json:"model" gorm:"type:varchar(64)"`

	GenerationMs int64 `json:"generation_ms"`
}

// TableName specifies the table name for the ThreadRecord model
func (ThreadRecord) TableName() string {
	return "thread_records"
}
