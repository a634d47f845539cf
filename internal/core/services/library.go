package services

import (
	"context"
	"fmt"

	"github.com/astralstream/mediasearch/internal/core/domain"
	"github.com/astralstream/mediasearch/internal/core/ports/driven"
	"github.com/astralstream/mediasearch/internal/core/ports/driving"
)

// Ensure libraryService implements LibraryService
var _ driving.LibraryService = (*libraryService)(nil)

// libraryService implements the LibraryService interface
type libraryService struct {
	index driven.VideoIndex
}

// NewLibraryService creates a new LibraryService
func NewLibraryService(index driven.VideoIndex) driving.LibraryService {
	return &libraryService{index: index}
}

// List returns every indexed record
func (s *libraryService) List(ctx context.Context) ([]*domain.VideoRecord, error) {
	return s.index.List(ctx)
}

// Upsert validates and stores records in the index. The whole batch is
// rejected when any record is invalid.
func (s *libraryService) Upsert(ctx context.Context, records []*domain.VideoRecord) error {
	if len(records) == 0 {
		return domain.ErrInvalidInput
	}
	for _, record := range records {
		if err := record.Validate(); err != nil {
			return fmt.Errorf("record %q: %w", record.ID, err)
		}
	}
	return s.index.Upsert(ctx, records)
}

// Delete removes a record from the index
func (s *libraryService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return s.index.Delete(ctx, id)
}
