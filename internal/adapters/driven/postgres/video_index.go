package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/astralstream/mediasearch/internal/core/domain"
	"github.com/astralstream/mediasearch/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.VideoIndex = (*VideoIndex)(nil)

// VideoIndex implements driven.VideoIndex using PostgreSQL
type VideoIndex struct {
	db *DB
}

// NewVideoIndex creates a new VideoIndex
func NewVideoIndex(db *DB) *VideoIndex {
	return &VideoIndex{db: db}
}

const videoColumns = `id, filename, path, duration_ms, size_bytes, resolution,
	   format, source, is_favorite, has_subtitles, last_played_at`

// List returns every indexed record in insertion order
func (s *VideoIndex) List(ctx context.Context) ([]*domain.VideoRecord, error) {
	query := `SELECT ` + videoColumns + ` FROM videos ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	defer rows.Close()

	var records []*domain.VideoRecord
	for rows.Next() {
		record, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Get retrieves a record by ID
func (s *VideoIndex) Get(ctx context.Context, id string) (*domain.VideoRecord, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`

	record, err := scanVideo(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Upsert inserts or replaces records
func (s *VideoIndex) Upsert(ctx context.Context, records []*domain.VideoRecord) error {
	return s.db.Transaction(ctx, func(tx *sql.Tx) error {
		query := `
			INSERT INTO videos (id, filename, path, duration_ms, size_bytes, resolution,
								format, source, is_favorite, has_subtitles, last_played_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (id) DO UPDATE SET
				filename = EXCLUDED.filename,
				path = EXCLUDED.path,
				duration_ms = EXCLUDED.duration_ms,
				size_bytes = EXCLUDED.size_bytes,
				resolution = EXCLUDED.resolution,
				format = EXCLUDED.format,
				source = EXCLUDED.source,
				is_favorite = EXCLUDED.is_favorite,
				has_subtitles = EXCLUDED.has_subtitles,
				last_played_at = EXCLUDED.last_played_at
		`
		for _, r := range records {
			var lastPlayed *time.Time
			if !r.LastPlayedAt.IsZero() {
				lastPlayed = &r.LastPlayedAt
			}
			_, err := tx.ExecContext(ctx, query,
				r.ID, r.Filename, r.Path, r.DurationMs, r.SizeBytes, r.Resolution,
				r.Format, string(r.Source), r.IsFavorite, r.HasSubtitles, NullTime(lastPlayed),
			)
			if err != nil {
				return fmt.Errorf("failed to upsert video %q: %w", r.ID, err)
			}
		}
		return nil
	})
}

// Delete removes a record by ID
func (s *VideoIndex) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanner covers both sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanVideo(row scanner) (*domain.VideoRecord, error) {
	var record domain.VideoRecord
	var source string
	var lastPlayed sql.NullTime

	err := row.Scan(
		&record.ID,
		&record.Filename,
		&record.Path,
		&record.DurationMs,
		&record.SizeBytes,
		&record.Resolution,
		&record.Format,
		&source,
		&record.IsFavorite,
		&record.HasSubtitles,
		&lastPlayed,
	)
	if err != nil {
		return nil, err
	}

	record.Source = domain.VideoSource(source)
	if lastPlayed.Valid {
		record.LastPlayedAt = lastPlayed.Time
	}
	return &record, nil
}
