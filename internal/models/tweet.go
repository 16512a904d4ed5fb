package models

// GenerateTweetRequest is the request body for single tweet generation
type GenerateTweetRequest struct {
	Topic        string `json:"topic" binding:"required" example:"why Go is great for backend services"`
	Tone         string `json:"tone,omitempty" example:"enthusiastic"`
	WritingStyle string `json:"writing_style,omitempty"`
}

// GenerateTweetResponse carries the generated tweet
type GenerateTweetResponse struct {
	Tweet string `json:"tweet"`
}
