package domain

import (
	"path/filepath"
	"time"
)

// VideoSource identifies where a video record originates from
type VideoSource string

const (
	VideoSourceLocal VideoSource = "local"
	VideoSourceCloud VideoSource = "cloud"
)

// IsValid returns true if this is a known source label
func (s VideoSource) IsValid() bool {
	switch s {
	case VideoSourceLocal, VideoSourceCloud:
		return true
	default:
		return false
	}
}

// VideoRecord is an indexed video entry exposed to the search engine.
// Records are immutable snapshots owned by the video index; the engine
// never mutates them.
type VideoRecord struct {
	ID           string      `json:"id"`
	Filename     string      `json:"filename"`
	Path         string      `json:"path"`
	DurationMs   int64       `json:"duration_ms"`
	SizeBytes    int64       `json:"size_bytes"`
	Resolution   string      `json:"resolution,omitempty"` // e.g. "720p", "1080p", "2160p"
	Format       string      `json:"format,omitempty"`     // container, e.g. "mp4", "mkv"
	Source       VideoSource `json:"source"`
	IsFavorite   bool        `json:"is_favorite"`
	HasSubtitles bool        `json:"has_subtitles"`
	LastPlayedAt time.Time   `json:"last_played_at,omitempty"`
}

// Validate checks the record carries the fields the index requires
func (v *VideoRecord) Validate() error {
	if v.ID == "" || v.Filename == "" || v.Path == "" {
		return ErrInvalidInput
	}
	if v.DurationMs < 0 || v.SizeBytes < 0 {
		return ErrInvalidInput
	}
	if v.Source != "" && !v.Source.IsValid() {
		return ErrInvalidInput
	}
	return nil
}

// Basename returns the filename without its container extension
func (v *VideoRecord) Basename() string {
	ext := filepath.Ext(v.Filename)
	return v.Filename[:len(v.Filename)-len(ext)]
}
