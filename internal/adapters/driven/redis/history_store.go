package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/astralstream/mediasearch/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.HistoryStore = (*HistoryStore)(nil)

const historyKey = "mediasearch:history"

// HistoryStore implements driven.HistoryStore using a Redis list.
// Entries are kept most-recent-first, mirroring the in-memory history.
type HistoryStore struct {
	client *redis.Client
}

// NewHistoryStore creates a new Redis-backed HistoryStore
func NewHistoryStore(client *redis.Client) *HistoryStore {
	return &HistoryStore{client: client}
}

// Load returns the stored queries, most recent first
func (s *HistoryStore) Load(ctx context.Context) ([]string, error) {
	entries, err := s.client.LRange(ctx, historyKey, 0, -1).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return entries, nil
}

// Save overwrites the stored queries atomically
func (s *HistoryStore) Save(ctx context.Context, entries []string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, historyKey)
	if len(entries) > 0 {
		// RPUSH preserves the most-recent-first order for LRange
		values := make([]interface{}, len(entries))
		for i, e := range entries {
			values[i] = e
		}
		pipe.RPush(ctx, historyKey, values...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}
