package driven

import "context"

// HistoryStore persists the query history. The engine loads it once at
// construction and writes the full list back after every mutation.
type HistoryStore interface {
	// Load returns the stored queries, most recent first
	Load(ctx context.Context) ([]string, error)

	// Save overwrites the stored queries
	Save(ctx context.Context, entries []string) error
}
