package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCounts(t *testing.T) {
	tests := []struct {
		text  string
		words int
		chars int
	}{
		{"", 0, 0},
		{"hello world", 2, 11},
		{"  spaced\tout\n\nlines  ", 3, 21},
		{"héllo wörld", 2, 11},
	}
	for _, tt := range tests {
		words, chars := Counts(tt.text)
		assert.Equal(t, tt.words, words, tt.text)
		assert.Equal(t, tt.chars, chars, tt.text)
	}
}

func TestSinceSaved(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Not yet saved", SinceSaved(time.Time{}, now))
	assert.Equal(t, "0 sec ago", SinceSaved(now, now))
	assert.Equal(t, "59 sec ago", SinceSaved(now.Add(-59*time.Second), now))
	assert.Equal(t, "1 min ago", SinceSaved(now.Add(-60*time.Second), now))
	assert.Equal(t, "2 min ago", SinceSaved(now.Add(-179*time.Second), now))
	assert.Equal(t, "0 sec ago", SinceSaved(now.Add(time.Second), now))
}

func TestLine(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	line := Line(Snapshot{Text: "hello world", Now: now, AutoSaveEnabled: true})
	assert.Equal(t, "[ Untitled ] | Words: 2 | Characters: 11 | Last saved: Not yet saved | Auto-Save: Pending", line)

	line = Line(Snapshot{
		FilePath:        "/home/me/notes.txt",
		Text:            "hello world",
		LastSavedAt:     now.Add(-5 * time.Second),
		Now:             now,
		AutoSaveEnabled: false,
	})
	assert.Equal(t, "[ notes.txt ] | Words: 2 | Characters: 11 | Last saved: 5 sec ago | Auto-Save: OFF", line)
}

func TestLineThousandsSeparator(t *testing.T) {
	text := make([]byte, 1500)
	for i := range text {
		text[i] = 'a'
	}
	line := Line(Snapshot{FilePath: "/x.txt", Text: string(text), AutoSaveEnabled: true})
	assert.Contains(t, line, "Characters: 1,500")
	assert.Contains(t, line, "Auto-Save: ON")
}
