package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/astralstream/mediasearch/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore implements driven.HistoryStore using PostgreSQL.
// The full list is rewritten on each save; the position column keeps
// most-recent-first ordering on load.
type HistoryStore struct {
	db *DB
}

// NewHistoryStore creates a new HistoryStore
func NewHistoryStore(db *DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// Load returns all saved queries, most recent first
func (s *HistoryStore) Load(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT query FROM search_history ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	defer rows.Close()

	var queries []string
	for rows.Next() {
		var query string
		if err := rows.Scan(&query); err != nil {
			return nil, err
		}
		queries = append(queries, query)
	}
	return queries, rows.Err()
}

// Save replaces the saved history with the given queries
func (s *HistoryStore) Save(ctx context.Context, queries []string) error {
	return s.db.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM search_history`); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		for i, query := range queries {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO search_history (position, query) VALUES ($1, $2)`,
				i, query,
			)
			if err != nil {
				return fmt.Errorf("failed to save history entry: %w", err)
			}
		}
		return nil
	})
}
