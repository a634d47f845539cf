package driven

import (
	"context"

	"github.com/astralstream/mediasearch/internal/core/domain"
)

// SettingsStore persists the active search filters
type SettingsStore interface {
	// GetFilters retrieves the saved filter set; implementations return
	// domain.DefaultFilters() when nothing has been saved yet
	GetFilters(ctx context.Context) (*domain.SearchFilters, error)

	// SaveFilters persists a filter set
	SaveFilters(ctx context.Context, filters *domain.SearchFilters) error
}
