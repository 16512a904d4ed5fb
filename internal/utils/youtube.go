package utils

import (
	"fmt"
	"regexp"
)

// videoIDPatterns covers the YouTube URL shapes we accept:
//   - youtube.com/watch?v=VIDEO_ID (including m.youtube.com, extra params)
//   - youtu.be/VIDEO_ID
//   - youtube.com/embed/VIDEO_ID and youtube.com/v/VIDEO_ID
//   - youtube.com/shorts/VIDEO_ID
//   - youtube.com/live/VIDEO_ID
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:m\.)?youtube\.com/watch\?(?:[^&\s]+&)*v=([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/(?:embed|v)/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/shorts/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/live/([a-zA-Z0-9_-]{11})`),
}

var bareVideoIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// ExtractVideoID pulls the 11-character video ID from a YouTube URL.
// A bare video ID is accepted as-is.
func ExtractVideoID(url string) (string, error) {
	for _, pattern := range videoIDPatterns {
		if matches := pattern.FindStringSubmatch(url); len(matches) > 1 {
			return matches[1], nil
		}
	}

	if bareVideoIDPattern.MatchString(url) {
		return url, nil
	}

	return "", fmt.Errorf("could not extract video ID from %q", url)
}
