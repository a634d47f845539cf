package domain

import (
	"strings"
	"sync"
)

// DefaultHistoryCapacity bounds the persisted query history
const DefaultHistoryCapacity = 50

// QueryHistory is a bounded, most-recent-first, deduplicated list of
// past search queries. Suggestion generation reads it concurrently with
// search submissions appending to it, so access goes through one RWMutex;
// persistence is the caller's concern.
type QueryHistory struct {
	mu       sync.RWMutex
	capacity int
	entries  []string
}

// NewQueryHistory creates an empty history with the given capacity
func NewQueryHistory(capacity int) *QueryHistory {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &QueryHistory{capacity: capacity}
}

// Add records a query at the front, dropping any older duplicate and
// trimming to capacity. Blank queries are ignored. Returns true when
// the history changed.
func (h *QueryHistory) Add(query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) > 0 && h.entries[0] == query {
		return false
	}

	entries := make([]string, 0, len(h.entries)+1)
	entries = append(entries, query)
	for _, e := range h.entries {
		if e != query {
			entries = append(entries, e)
		}
	}
	if len(entries) > h.capacity {
		entries = entries[:h.capacity]
	}
	h.entries = entries
	return true
}

// Entries returns a most-recent-first copy of the history
func (h *QueryHistory) Entries() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Replace overwrites the history, deduplicating and trimming to
// capacity. Used when loading persisted entries at construction.
func (h *QueryHistory) Replace(entries []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	seen := make(map[string]bool, len(entries))
	replaced := make([]string, 0, h.capacity)
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" || seen[e] {
			continue
		}
		seen[e] = true
		replaced = append(replaced, e)
		if len(replaced) == h.capacity {
			break
		}
	}
	h.entries = replaced
}

// Clear removes all entries
func (h *QueryHistory) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
}

// Len returns the number of stored entries
func (h *QueryHistory) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}
