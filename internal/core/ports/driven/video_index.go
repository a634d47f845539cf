package driven

import (
	"context"

	"github.com/astralstream/mediasearch/internal/core/domain"
)

// VideoIndex supplies record snapshots to the search engine and accepts
// index mutations from the library service
type VideoIndex interface {
	// List returns every indexed record in insertion order
	List(ctx context.Context) ([]*domain.VideoRecord, error)

	// Get retrieves a record by ID
	Get(ctx context.Context, id string) (*domain.VideoRecord, error)

	// Upsert inserts or replaces records
	Upsert(ctx context.Context, records []*domain.VideoRecord) error

	// Delete removes a record by ID
	Delete(ctx context.Context, id string) error
}
