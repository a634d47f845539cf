package driving

import (
	"context"

	"github.com/astralstream/mediasearch/internal/core/domain"
)

// LibraryService manages the video index the search engine reads from
type LibraryService interface {
	// List returns every indexed record
	List(ctx context.Context) ([]*domain.VideoRecord, error)

	// Upsert validates and stores records in the index
	Upsert(ctx context.Context, records []*domain.VideoRecord) error

	// Delete removes a record from the index
	Delete(ctx context.Context, id string) error
}
