package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanSubtitlesVTT(t *testing.T) {
	content := `WEBVTT
Kind: captions
Language: en

00:00:00.000 --> 00:00:02.000
hello and welcome

00:00:02.000 --> 00:00:04.000
to the <b>channel</b>
`

	got := CleanSubtitles(content)
	assert.Equal(t, "hello and welcome to the channel", got)
}

func TestCleanSubtitlesSRT(t *testing.T) {
	content := `1
00:00:00,000 --> 00:00:02,000
first line

2
00:00:02,000 --> 00:00:04,000
second line
`

	got := CleanSubtitles(content)
	assert.Equal(t, "first line second line", got)
}

func TestCleanSubtitlesDeduplicates(t *testing.T) {
	// Auto-generated captions repeat the trailing line of each cue
	content := `WEBVTT

00:00:00.000 --> 00:00:02.000
hello there

00:00:02.000 --> 00:00:04.000
hello there

00:00:04.000 --> 00:00:06.000
general kenobi
`

	got := CleanSubtitles(content)
	assert.Equal(t, "hello there general kenobi", got)
}

func TestCleanSubtitlesEmpty(t *testing.T) {
	assert.Equal(t, "", CleanSubtitles(""))
	assert.Equal(t, "", CleanSubtitles("WEBVTT\n\n00:00:00.000 --> 00:00:01.000\n"))
}
