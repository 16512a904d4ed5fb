package services

import "errors"

// Sentinel errors for the generation pipeline. Handlers map these to
// distinct HTTP statuses and reason codes.
var (
	// ErrInvalidVideoURL means the input did not parse as a YouTube video
	// URL. No external collaborator is invoked in this case.
	ErrInvalidVideoURL = errors.New("invalid YouTube video URL")

	// ErrVideoUnavailable means the video exists syntactically but could not
	// be resolved (private, deleted, region-locked, network failure).
	ErrVideoUnavailable = errors.New("video is unavailable")

	// ErrNoTranscript means the video was resolved but no subtitles or
	// auto-generated captions could be obtained.
	ErrNoTranscript = errors.New("no transcript available for video")

	// ErrGenerationFailed means the text-generation API call failed
	// (auth, rate limit, network, non-2xx response).
	ErrGenerationFailed = errors.New("text generation failed")

	// ErrEmptyCompletion means the API answered but produced no usable text.
	ErrEmptyCompletion = errors.New("empty completion from text generation API")
)
