// Package status renders the editor status line.
package status

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

const untitled = "Untitled"

// Counts returns whitespace-separated words and code points in text.
func Counts(text string) (words, chars int) {
	return len(strings.Fields(text)), utf8.RuneCountInString(text)
}

// SinceSaved describes how long ago last was, relative to now.
func SinceSaved(last, now time.Time) string {
	if last.IsZero() {
		return "Not yet saved"
	}
	elapsed := now.Sub(last)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed < time.Minute {
		return fmt.Sprintf("%d sec ago", int(elapsed/time.Second))
	}
	return fmt.Sprintf("%d min ago", int(elapsed/time.Minute))
}

type Snapshot struct {
	FilePath        string
	Text            string
	LastSavedAt     time.Time
	Now             time.Time
	AutoSaveEnabled bool
}

func DisplayName(path string) string {
	if path == "" {
		return untitled
	}
	return filepath.Base(path)
}

// Line renders the full status bar text.
func Line(s Snapshot) string {
	words, chars := Counts(s.Text)

	autoSave := "Pending"
	if s.FilePath != "" {
		autoSave = "OFF"
		if s.AutoSaveEnabled {
			autoSave = "ON"
		}
	}

	return fmt.Sprintf("[ %s ] | Words: %s | Characters: %s | Last saved: %s | Auto-Save: %s",
		DisplayName(s.FilePath),
		humanize.Comma(int64(words)),
		humanize.Comma(int64(chars)),
		SinceSaved(s.LastSavedAt, s.Now),
		autoSave,
	)
}
