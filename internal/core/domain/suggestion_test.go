package domain

import (
	"testing"
	"time"
)

func TestSuggestionConstructors(t *testing.T) {
	tests := []struct {
		name       string
		suggestion SearchSuggestion
		kind       SuggestionKind
		hasMeta    bool
	}{
		{"history", NewHistorySuggestion("cats"), SuggestionKindHistory, false},
		{"file", NewFileSuggestion("beach.mp4"), SuggestionKindFile, false},
		{"filter", NewFilterSuggestion("Short", "duration", "short"), SuggestionKindFilter, true},
		{"smart", NewSmartSuggestion("This week", "date", "week"), SuggestionKindSmart, true},
		{"related", NewRelatedSuggestion("sunset"), SuggestionKindRelated, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.suggestion.Kind != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, tt.suggestion.Kind)
			}
			if tt.hasMeta && tt.suggestion.Metadata[SuggestionMetaFilter] == "" {
				t.Error("expected filter metadata")
			}
			if !tt.hasMeta && tt.suggestion.Metadata != nil {
				t.Errorf("expected nil metadata, got %v", tt.suggestion.Metadata)
			}
			if tt.suggestion.Icon == "" {
				t.Error("expected icon tag")
			}
		})
	}
}

func TestGenerateSuggestionsEmptyPartial(t *testing.T) {
	// History arrives most-recent-first and already deduplicated
	history := []string{"cats", "dogs"}

	suggestions := GenerateSuggestions("", history, nil, MaxSuggestions)
	if len(suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(suggestions))
	}
	if suggestions[0].Text != "cats" || suggestions[1].Text != "dogs" {
		t.Errorf("expected most-recent-first history, got %v", suggestions)
	}
	for _, s := range suggestions {
		if s.Kind != SuggestionKindHistory {
			t.Errorf("expected history kind, got %s", s.Kind)
		}
	}
}

func TestGenerateSuggestionsPriorityOrder(t *testing.T) {
	history := []string{"beach trip", "dogs"}
	records := []*VideoRecord{
		{ID: "1", Filename: "beach_party.mov", Path: "/v/beach_party.mov"},
	}

	suggestions := GenerateSuggestions("beach", history, records, MaxSuggestions)
	if len(suggestions) < 2 {
		t.Fatalf("expected at least 2 suggestions, got %d", len(suggestions))
	}
	if suggestions[0].Kind != SuggestionKindHistory || suggestions[0].Text != "beach trip" {
		t.Errorf("expected matching history first, got %+v", suggestions[0])
	}
	if suggestions[1].Kind != SuggestionKindFile || suggestions[1].Text != "beach_party.mov" {
		t.Errorf("expected file suggestion second, got %+v", suggestions[1])
	}
}

func TestGenerateSuggestionsSmartWeek(t *testing.T) {
	suggestions := GenerateSuggestions("week", nil, nil, MaxSuggestions)

	var smart *SearchSuggestion
	for i := range suggestions {
		if suggestions[i].Kind == SuggestionKindSmart {
			smart = &suggestions[i]
			break
		}
	}
	if smart == nil {
		t.Fatal("expected a smart suggestion for 'week'")
	}
	if smart.Metadata[SuggestionMetaFilter] != "date" || smart.Metadata[SuggestionMetaValue] != "week" {
		t.Errorf("expected date/week metadata, got %v", smart.Metadata)
	}
}

func TestGenerateSuggestionsCap(t *testing.T) {
	var history []string
	for _, q := range []string{
		"clip a", "clip b", "clip c", "clip d", "clip e",
		"clip f", "clip g", "clip h", "clip i", "clip j", "clip k",
	} {
		history = append(history, q)
	}
	records := []*VideoRecord{
		{ID: "1", Filename: "clip one.mp4", Path: "/v/clip one.mp4"},
		{ID: "2", Filename: "clip two.mp4", Path: "/v/clip two.mp4"},
	}

	suggestions := GenerateSuggestions("clip", history, records, MaxSuggestions)
	if len(suggestions) != MaxSuggestions {
		t.Fatalf("expected cap of %d, got %d", MaxSuggestions, len(suggestions))
	}
	// Truncation happens in priority order, so the whole list is history
	for _, s := range suggestions {
		if s.Kind != SuggestionKindHistory {
			t.Errorf("expected history to fill the cap first, got %s", s.Kind)
		}
	}
}

func TestGenerateSuggestionsRelatedTerms(t *testing.T) {
	records := []*VideoRecord{
		{ID: "1", Filename: "sunset beach walk.mp4", Path: "/v/sunset beach walk.mp4"},
	}

	suggestions := GenerateSuggestions("beach", nil, records, MaxSuggestions)

	related := map[string]bool{}
	for _, s := range suggestions {
		if s.Kind == SuggestionKindRelated {
			related[s.Text] = true
		}
	}
	if !related["sunset"] || !related["walk"] {
		t.Errorf("expected related terms sunset and walk, got %v", related)
	}
}

func TestApplySuggestionWeek(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)
	meta := map[string]string{SuggestionMetaFilter: "date", SuggestionMetaValue: "week"}

	filters := ApplySuggestion(SearchFilters{}, meta, now)
	if filters.PlayedAfter == nil || filters.PlayedBefore == nil {
		t.Fatal("expected date range to be set")
	}
	if !filters.PlayedAfter.Equal(now.AddDate(0, 0, -7)) {
		t.Errorf("expected after = now-7d, got %v", filters.PlayedAfter)
	}
	if !filters.PlayedBefore.Equal(now) {
		t.Errorf("expected before = now, got %v", filters.PlayedBefore)
	}
}

func TestApplySuggestionDuration(t *testing.T) {
	short := ApplySuggestion(SearchFilters{}, map[string]string{
		SuggestionMetaFilter: "duration", SuggestionMetaValue: "short",
	}, time.Now())
	if short.MaxDurationMs == nil || *short.MaxDurationMs != ShortMaxDurationMs {
		t.Errorf("expected short max %d, got %v", ShortMaxDurationMs, short.MaxDurationMs)
	}

	long := ApplySuggestion(SearchFilters{}, map[string]string{
		SuggestionMetaFilter: "duration", SuggestionMetaValue: "long",
	}, time.Now())
	if long.MinDurationMs == nil || *long.MinDurationMs != LongMinDurationMs {
		t.Errorf("expected long min %d, got %v", LongMinDurationMs, long.MinDurationMs)
	}
}

func TestApplySuggestionResolutionAndFlags(t *testing.T) {
	hd := ApplySuggestion(SearchFilters{}, map[string]string{
		SuggestionMetaFilter: "resolution", SuggestionMetaValue: "hd",
	}, time.Now())
	if len(hd.Resolutions) != 2 {
		t.Errorf("expected hd resolutions, got %v", hd.Resolutions)
	}

	fav := ApplySuggestion(SearchFilters{}, map[string]string{
		SuggestionMetaFilter: "favorites", SuggestionMetaValue: "true",
	}, time.Now())
	if !fav.FavoritesOnly {
		t.Error("expected favorites-only filter")
	}

	subs := ApplySuggestion(SearchFilters{}, map[string]string{
		SuggestionMetaFilter: "subtitles", SuggestionMetaValue: "true",
	}, time.Now())
	if subs.RequireSubtitles == nil || !*subs.RequireSubtitles {
		t.Error("expected subtitles-required filter")
	}
}

func TestApplySuggestionNoMetadata(t *testing.T) {
	original := SearchFilters{FavoritesOnly: true}
	applied := ApplySuggestion(original, nil, time.Now())
	if !applied.FavoritesOnly || applied.PlayedAfter != nil {
		t.Error("expected filters to pass through untouched")
	}
}
