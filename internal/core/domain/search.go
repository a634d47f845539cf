package domain

import (
	"sort"
	"strings"
	"time"
)

// Matched field names reported on search results
const (
	MatchFieldFilename = "filename"
	MatchFieldPath     = "path"
)

// Scoring weights. An exact filename hit must always outrank any
// combination of substring matches for the same query, so the exact
// bonus dominates the per-token weights.
const (
	scoreExactFilename  = 100.0 // whole filename equals the query, case-insensitive
	scorePrefixFilename = 25.0  // filename starts with a query token
	scoreFilenameToken  = 10.0  // filename contains a query token
	scorePathToken      = 5.0   // path contains a query token
)

// SearchResult references a record that passed the active filters,
// the fields the query matched in, and its relevance score.
// Created fresh per search call; never persisted.
type SearchResult struct {
	Record        *VideoRecord `json:"record"`
	MatchedFields []string     `json:"matched_fields"`
	Score         float64      `json:"score"`
}

// SearchResponse wraps one search invocation
type SearchResponse struct {
	Query      string          `json:"query"`
	Results    []*SearchResult `json:"results"`
	TotalCount int             `json:"total_count"`
	Took       time.Duration   `json:"took"`
}

// Score computes the relevance of a record for a free-text query.
// The query is tokenized on whitespace and case-folded; each token is
// checked for containment against filename and path. An empty query
// scores zero with no matched fields (browse mode).
func Score(record *VideoRecord, query string) (float64, []string) {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return 0, nil
	}

	filename := strings.ToLower(record.Filename)
	path := strings.ToLower(record.Path)

	var score float64
	matchedFilename := false
	matchedPath := false

	for _, token := range tokens {
		if strings.Contains(filename, token) {
			score += scoreFilenameToken
			if strings.HasPrefix(filename, token) {
				score += scorePrefixFilename
			}
			matchedFilename = true
		}
		if strings.Contains(path, token) {
			score += scorePathToken
			matchedPath = true
		}
	}

	if filename == strings.ToLower(strings.TrimSpace(query)) {
		score += scoreExactFilename
		matchedFilename = true
	}

	var fields []string
	if matchedFilename {
		fields = append(fields, MatchFieldFilename)
	}
	if matchedPath {
		fields = append(fields, MatchFieldPath)
	}
	return score, fields
}

// Rank filters and orders records for a query. Results come back in
// descending score order; equal scores keep the input record order.
// Invalid filters and an empty index both yield an empty result set
// rather than an error.
func Rank(records []*VideoRecord, query string, filters *SearchFilters) []*SearchResult {
	if filters == nil {
		filters = DefaultFilters()
	}
	if err := filters.Validate(); err != nil {
		return nil
	}

	browse := len(strings.Fields(query)) == 0

	var results []*SearchResult
	for _, record := range records {
		if !filters.Matches(record) {
			continue
		}
		score, fields := Score(record, query)
		if !browse && len(fields) == 0 {
			continue
		}
		results = append(results, &SearchResult{
			Record:        record,
			MatchedFields: fields,
			Score:         score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
