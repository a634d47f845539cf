package domain

import "time"

// SearchFilters holds the hard constraints applied to every search.
// Filters are conjunctive across categories and disjunctive within a
// category's set: a record passes when every active category accepts it,
// and a set category accepts membership of any of its values.
type SearchFilters struct {
	MinDurationMs    *int64     `json:"min_duration_ms,omitempty"`
	MaxDurationMs    *int64     `json:"max_duration_ms,omitempty"`
	PlayedAfter      *time.Time `json:"played_after,omitempty"`
	PlayedBefore     *time.Time `json:"played_before,omitempty"`
	Resolutions      []string   `json:"resolutions,omitempty"`
	Formats          []string   `json:"formats,omitempty"`
	Sources          []string   `json:"sources,omitempty"`
	FavoritesOnly    bool       `json:"favorites_only"`
	RequireSubtitles *bool      `json:"require_subtitles,omitempty"`
}

// DefaultFilters returns an empty filter set that every record passes
func DefaultFilters() *SearchFilters {
	return &SearchFilters{}
}

// Validate rejects malformed filter combinations
func (f *SearchFilters) Validate() error {
	if f.MinDurationMs != nil && f.MaxDurationMs != nil && *f.MinDurationMs > *f.MaxDurationMs {
		return ErrInvalidFilterRange
	}
	if f.PlayedAfter != nil && f.PlayedBefore != nil && f.PlayedAfter.After(*f.PlayedBefore) {
		return ErrInvalidFilterRange
	}
	return nil
}

// Matches reports whether a record satisfies every active constraint.
// All categories are ANDed; failing any one excludes the record.
func (f *SearchFilters) Matches(record *VideoRecord) bool {
	if f.MinDurationMs != nil && record.DurationMs < *f.MinDurationMs {
		return false
	}
	if f.MaxDurationMs != nil && record.DurationMs > *f.MaxDurationMs {
		return false
	}
	// Date range is inclusive on both ends
	if f.PlayedAfter != nil && record.LastPlayedAt.Before(*f.PlayedAfter) {
		return false
	}
	if f.PlayedBefore != nil && record.LastPlayedAt.After(*f.PlayedBefore) {
		return false
	}
	if !memberOf(f.Resolutions, record.Resolution) {
		return false
	}
	if !memberOf(f.Formats, record.Format) {
		return false
	}
	if !memberOf(f.Sources, string(record.Source)) {
		return false
	}
	if f.FavoritesOnly && !record.IsFavorite {
		return false
	}
	if f.RequireSubtitles != nil && record.HasSubtitles != *f.RequireSubtitles {
		return false
	}
	return true
}

// memberOf reports set membership; an empty set passes everything
func memberOf(set []string, value string) bool {
	if len(set) == 0 {
		return true
	}
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}
