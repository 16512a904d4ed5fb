package utils

import (
	"regexp"
	"strings"
)

var (
	subtitleTimestampRe = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}`)
	subtitleNumberRe    = regexp.MustCompile(`^\d+$`)
	subtitleTagRe       = regexp.MustCompile(`<[^>]+>`)
	subtitleHeaderRe    = regexp.MustCompile(`^(WEBVTT|Kind:|Language:)`)
)

// CleanSubtitles strips timestamps, cue numbers, headers and markup from
// VTT/SRT content and returns the spoken text as a single line.
// Auto-generated captions repeat lines between cues, so consecutive
// duplicates are dropped.
func CleanSubtitles(content string) string {
	lines := strings.Split(content, "\n")
	var textLines []string
	var lastLine string

	for _, line := range lines {
		line = strings.TrimSpace(line)

		if line == "" || subtitleNumberRe.MatchString(line) || subtitleTimestampRe.MatchString(line) || subtitleHeaderRe.MatchString(line) {
			continue
		}

		line = subtitleTagRe.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line != lastLine {
			textLines = append(textLines, line)
			lastLine = line
		}
	}

	return strings.Join(textLines, " ")
}
