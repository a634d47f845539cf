package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/astralstream/mediasearch/internal/core/domain"
	"github.com/astralstream/mediasearch/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.SettingsStore = (*SettingsStore)(nil)

// SettingsStore implements driven.SettingsStore using PostgreSQL.
// Filters live in a single row keyed by a constant true ID.
type SettingsStore struct {
	db *DB
}

// NewSettingsStore creates a new SettingsStore
func NewSettingsStore(db *DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// GetFilters returns the persisted filter set, or defaults when none saved
func (s *SettingsStore) GetFilters(ctx context.Context) (*domain.SearchFilters, error) {
	query := `
		SELECT min_duration_ms, max_duration_ms, played_after, played_before,
			   resolutions, formats, sources, favorites_only, require_subtitles
		FROM search_filters
		WHERE id = TRUE
	`

	var (
		minDuration, maxDuration   sql.NullInt64
		playedAfter, playedBefore  sql.NullTime
		resolutions, formats, srcs []string
		favoritesOnly              bool
		requireSubtitles           sql.NullBool
	)

	err := s.db.QueryRowContext(ctx, query).Scan(
		&minDuration,
		&maxDuration,
		&playedAfter,
		&playedBefore,
		pq.Array(&resolutions),
		pq.Array(&formats),
		pq.Array(&srcs),
		&favoritesOnly,
		&requireSubtitles,
	)
	if err == sql.ErrNoRows {
		return domain.DefaultFilters(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get filters: %w", err)
	}

	return &domain.SearchFilters{
		MinDurationMs:    Int64Ptr(minDuration),
		MaxDurationMs:    Int64Ptr(maxDuration),
		PlayedAfter:      TimePtr(playedAfter),
		PlayedBefore:     TimePtr(playedBefore),
		Resolutions:      resolutions,
		Formats:          formats,
		Sources:          srcs,
		FavoritesOnly:    favoritesOnly,
		RequireSubtitles: BoolPtr(requireSubtitles),
	}, nil
}

// SaveFilters replaces the persisted filter set
func (s *SettingsStore) SaveFilters(ctx context.Context, filters *domain.SearchFilters) error {
	query := `
		INSERT INTO search_filters (id, min_duration_ms, max_duration_ms, played_after,
									played_before, resolutions, formats, sources,
									favorites_only, require_subtitles, updated_at)
		VALUES (TRUE, $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (id) DO UPDATE SET
			min_duration_ms = EXCLUDED.min_duration_ms,
			max_duration_ms = EXCLUDED.max_duration_ms,
			played_after = EXCLUDED.played_after,
			played_before = EXCLUDED.played_before,
			resolutions = EXCLUDED.resolutions,
			formats = EXCLUDED.formats,
			sources = EXCLUDED.sources,
			favorites_only = EXCLUDED.favorites_only,
			require_subtitles = EXCLUDED.require_subtitles,
			updated_at = NOW()
	`

	_, err := s.db.ExecContext(ctx, query,
		NullInt64(filters.MinDurationMs),
		NullInt64(filters.MaxDurationMs),
		NullTime(filters.PlayedAfter),
		NullTime(filters.PlayedBefore),
		pq.Array(filters.Resolutions),
		pq.Array(filters.Formats),
		pq.Array(filters.Sources),
		filters.FavoritesOnly,
		NullBool(filters.RequireSubtitles),
	)
	if err != nil {
		return fmt.Errorf("failed to save filters: %w", err)
	}
	return nil
}
