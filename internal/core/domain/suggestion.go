package domain

import (
	"strings"
	"time"
)

// SuggestionKind tags the variant of a search suggestion
type SuggestionKind string

const (
	SuggestionKindHistory SuggestionKind = "history"
	SuggestionKindFile    SuggestionKind = "file"
	SuggestionKindFilter  SuggestionKind = "filter"
	SuggestionKindSmart   SuggestionKind = "smart"
	SuggestionKindRelated SuggestionKind = "related"
)

// Metadata keys used by smart/filter suggestions
const (
	SuggestionMetaFilter = "filter"
	SuggestionMetaValue  = "value"
)

// MaxSuggestions caps every generated suggestion list
const MaxSuggestions = 10

// Duration cutoffs backing the "short"/"long" smart filters
const (
	ShortMaxDurationMs = 5 * 60 * 1000
	LongMinDurationMs  = 20 * 60 * 1000
)

// SearchSuggestion is a proposed query completion or quick-filter action.
// Each kind is built through its own constructor; Metadata carries the
// filter-to-apply for the smart and filter kinds and stays nil otherwise.
type SearchSuggestion struct {
	Text     string            `json:"text"`
	Kind     SuggestionKind    `json:"kind"`
	Icon     string            `json:"icon"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// NewHistorySuggestion builds a suggestion from a past query
func NewHistorySuggestion(text string) SearchSuggestion {
	return SearchSuggestion{Text: text, Kind: SuggestionKindHistory, Icon: "history"}
}

// NewFileSuggestion builds a suggestion from an indexed filename
func NewFileSuggestion(filename string) SearchSuggestion {
	return SearchSuggestion{Text: filename, Kind: SuggestionKindFile, Icon: "file"}
}

// NewFilterSuggestion builds a quick-filter suggestion
func NewFilterSuggestion(text, filter, value string) SearchSuggestion {
	return SearchSuggestion{
		Text: text,
		Kind: SuggestionKindFilter,
		Icon: "filter",
		Metadata: map[string]string{
			SuggestionMetaFilter: filter,
			SuggestionMetaValue:  value,
		},
	}
}

// NewSmartSuggestion builds a keyword-triggered filter suggestion
func NewSmartSuggestion(text, filter, value string) SearchSuggestion {
	return SearchSuggestion{
		Text: text,
		Kind: SuggestionKindSmart,
		Icon: "sparkle",
		Metadata: map[string]string{
			SuggestionMetaFilter: filter,
			SuggestionMetaValue:  value,
		},
	}
}

// NewRelatedSuggestion builds a related-term suggestion
func NewRelatedSuggestion(term string) SearchSuggestion {
	return SearchSuggestion{Text: term, Kind: SuggestionKindRelated, Icon: "related"}
}

// smartRule maps a trigger keyword to the filter mutation it suggests
type smartRule struct {
	trigger string
	text    string
	filter  string
	value   string
}

var smartRules = []smartRule{
	{"short", "Short videos (under 5 min)", "duration", "short"},
	{"long", "Long videos (over 20 min)", "duration", "long"},
	{"hd", "HD quality", "resolution", "hd"},
	{"4k", "4K quality", "resolution", "4k"},
	{"today", "Played today", "date", "today"},
	{"week", "Played this week", "date", "week"},
	{"month", "Played this month", "date", "month"},
	{"favorite", "Favorites only", "favorites", "true"},
	{"subtitle", "With subtitles", "subtitles", "true"},
}

// GenerateSuggestions produces an ordered, capped suggestion list for a
// partial query. An empty partial returns recent history only. Otherwise
// candidates are collected in priority order - history, then indexed
// filenames, then triggered smart filters, then related terms mined from
// matching filenames - and truncated at the limit in that same order.
func GenerateSuggestions(partial string, history []string, records []*VideoRecord, limit int) []SearchSuggestion {
	if limit <= 0 || limit > MaxSuggestions {
		limit = MaxSuggestions
	}

	partial = strings.TrimSpace(partial)
	needle := strings.ToLower(partial)

	suggestions := make([]SearchSuggestion, 0, limit)
	if partial == "" {
		for _, entry := range history {
			if len(suggestions) == limit {
				break
			}
			suggestions = append(suggestions, NewHistorySuggestion(entry))
		}
		return suggestions
	}

	for _, entry := range history {
		if len(suggestions) == limit {
			return suggestions
		}
		if strings.Contains(strings.ToLower(entry), needle) {
			suggestions = append(suggestions, NewHistorySuggestion(entry))
		}
	}

	seen := make(map[string]bool)
	for _, s := range suggestions {
		seen[strings.ToLower(s.Text)] = true
	}

	var matched []*VideoRecord
	for _, record := range records {
		if len(suggestions) == limit {
			return suggestions
		}
		if !strings.Contains(strings.ToLower(record.Filename), needle) {
			continue
		}
		matched = append(matched, record)
		key := strings.ToLower(record.Filename)
		if seen[key] {
			continue
		}
		seen[key] = true
		suggestions = append(suggestions, NewFileSuggestion(record.Filename))
	}

	for _, rule := range smartRules {
		if len(suggestions) == limit {
			return suggestions
		}
		if strings.Contains(needle, rule.trigger) {
			suggestions = append(suggestions, NewSmartSuggestion(rule.text, rule.filter, rule.value))
		}
	}

	for _, term := range relatedTerms(needle, matched) {
		if len(suggestions) == limit {
			return suggestions
		}
		if seen[term] {
			continue
		}
		seen[term] = true
		suggestions = append(suggestions, NewRelatedSuggestion(term))
	}

	return suggestions
}

// relatedTerms mines tokens that co-occur with the partial query in
// matching filenames
func relatedTerms(needle string, matched []*VideoRecord) []string {
	var terms []string
	seen := make(map[string]bool)
	for _, record := range matched {
		for _, token := range splitWords(strings.ToLower(record.Basename())) {
			if len(token) < 3 || token == needle {
				continue
			}
			if strings.Contains(token, needle) || strings.Contains(needle, token) {
				continue
			}
			if seen[token] {
				continue
			}
			seen[token] = true
			terms = append(terms, token)
		}
	}
	return terms
}

// splitWords breaks a filename base into word tokens
func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
}

// ApplySuggestion mutates a copy of the filters according to a smart or
// filter suggestion's metadata and returns it. Suggestions without filter
// metadata leave the filters untouched.
func ApplySuggestion(filters SearchFilters, metadata map[string]string, now time.Time) SearchFilters {
	switch metadata[SuggestionMetaFilter] {
	case "duration":
		switch metadata[SuggestionMetaValue] {
		case "short":
			max := int64(ShortMaxDurationMs)
			filters.MinDurationMs = nil
			filters.MaxDurationMs = &max
		case "long":
			min := int64(LongMinDurationMs)
			filters.MinDurationMs = &min
			filters.MaxDurationMs = nil
		}
	case "resolution":
		switch metadata[SuggestionMetaValue] {
		case "hd":
			filters.Resolutions = []string{"720p", "1080p"}
		case "4k":
			filters.Resolutions = []string{"2160p"}
		}
	case "date":
		var after time.Time
		switch metadata[SuggestionMetaValue] {
		case "today":
			after = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		case "week":
			after = now.AddDate(0, 0, -7)
		case "month":
			after = now.AddDate(0, -1, 0)
		default:
			return filters
		}
		filters.PlayedAfter = &after
		filters.PlayedBefore = &now
	case "favorites":
		filters.FavoritesOnly = metadata[SuggestionMetaValue] == "true"
	case "subtitles":
		required := metadata[SuggestionMetaValue] == "true"
		filters.RequireSubtitles = &required
	}
	return filters
}
