package driving

import (
	"context"

	"github.com/astralstream/mediasearch/internal/core/domain"
)

// SearchRequest configures a search invocation. A nil Filters field
// falls back to the persisted filter set.
type SearchRequest struct {
	Query   string                `json:"query"`
	Filters *domain.SearchFilters `json:"filters,omitempty"`
	Limit   int                   `json:"limit,omitempty"`
}

// SearchService exposes the ranking and suggestion engine
type SearchService interface {
	// Search filters and ranks the indexed records for a query
	Search(ctx context.Context, req SearchRequest) (*domain.SearchResponse, error)

	// Suggest produces typed suggestions for a partial query
	Suggest(ctx context.Context, partial string, limit int) ([]domain.SearchSuggestion, error)

	// RecordSearch appends a submitted query to the history
	RecordSearch(ctx context.Context, query string) error

	// History returns the stored queries, most recent first
	History(ctx context.Context) ([]string, error)

	// ClearHistory removes all stored queries
	ClearHistory(ctx context.Context) error

	// GetFilters returns the persisted filter set
	GetFilters(ctx context.Context) (*domain.SearchFilters, error)

	// SaveFilters persists a filter set
	SaveFilters(ctx context.Context, filters *domain.SearchFilters) error
}
