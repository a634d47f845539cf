package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/astralstream/mediasearch/internal/core/domain"
	"github.com/astralstream/mediasearch/internal/core/ports/driven"
	"github.com/astralstream/mediasearch/internal/core/ports/driving"
)

// Ensure searchService implements SearchService
var _ driving.SearchService = (*searchService)(nil)

const (
	defaultResultLimit = 20
	maxResultLimit     = 100
)

// searchService implements the SearchService interface. The service is
// stateless across calls except for the bounded query history; record
// snapshots come from the video index per invocation.
type searchService struct {
	index         driven.VideoIndex
	settingsStore driven.SettingsStore
	historyStore  driven.HistoryStore
	history       *domain.QueryHistory
}

// NewSearchService creates a new SearchService. The persisted query
// history is loaded once here; later mutations are written back through
// the history store.
func NewSearchService(
	ctx context.Context,
	index driven.VideoIndex,
	settingsStore driven.SettingsStore,
	historyStore driven.HistoryStore,
) (driving.SearchService, error) {
	entries, err := historyStore.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load query history: %w", err)
	}

	history := domain.NewQueryHistory(domain.DefaultHistoryCapacity)
	history.Replace(entries)

	return &searchService{
		index:         index,
		settingsStore: settingsStore,
		historyStore:  historyStore,
		history:       history,
	}, nil
}

// Search filters and ranks the indexed records for a query. Invalid
// filter combinations and an empty index both produce an empty result
// set, never an error; only index and store failures surface.
func (s *searchService) Search(ctx context.Context, req driving.SearchRequest) (*domain.SearchResponse, error) {
	start := time.Now()

	if req.Limit <= 0 {
		req.Limit = defaultResultLimit
	}
	if req.Limit > maxResultLimit {
		req.Limit = maxResultLimit
	}

	filters := req.Filters
	if filters == nil {
		stored, err := s.settingsStore.GetFilters(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load filters: %w", err)
		}
		filters = stored
	}

	records, err := s.index.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	results := domain.Rank(records, req.Query, filters)
	totalCount := len(results)
	if len(results) > req.Limit {
		results = results[:req.Limit]
	}
	if results == nil {
		results = []*domain.SearchResult{}
	}

	// A committed search joins the history; persistence failures must
	// not fail the search itself
	if s.history.Add(req.Query) {
		_ = s.historyStore.Save(ctx, s.history.Entries())
	}

	return &domain.SearchResponse{
		Query:      strings.TrimSpace(req.Query),
		Results:    results,
		TotalCount: totalCount,
		Took:       time.Since(start),
	}, nil
}

// Suggest produces typed suggestions for a partial query
func (s *searchService) Suggest(ctx context.Context, partial string, limit int) ([]domain.SearchSuggestion, error) {
	records, err := s.index.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	return domain.GenerateSuggestions(partial, s.history.Entries(), records, limit), nil
}

// RecordSearch appends a submitted query to the history
func (s *searchService) RecordSearch(ctx context.Context, query string) error {
	if !s.history.Add(query) {
		return nil
	}
	return s.historyStore.Save(ctx, s.history.Entries())
}

// History returns the stored queries, most recent first
func (s *searchService) History(ctx context.Context) ([]string, error) {
	return s.history.Entries(), nil
}

// ClearHistory removes all stored queries
func (s *searchService) ClearHistory(ctx context.Context) error {
	s.history.Clear()
	return s.historyStore.Save(ctx, nil)
}

// GetFilters returns the persisted filter set
func (s *searchService) GetFilters(ctx context.Context) (*domain.SearchFilters, error) {
	return s.settingsStore.GetFilters(ctx)
}

// SaveFilters persists a filter set after validation
func (s *searchService) SaveFilters(ctx context.Context, filters *domain.SearchFilters) error {
	if filters == nil {
		return domain.ErrInvalidInput
	}
	if err := filters.Validate(); err != nil {
		return err
	}
	return s.settingsStore.SaveFilters(ctx, filters)
}
