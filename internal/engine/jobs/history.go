package jobs

import "sync"

// historyLimit bounds the recency list of past queries.
const historyLimit = 5

// History is the bounded recency list of search queries, most recent first.
// Session-scoped: not persisted, no de-duplication.
type History struct {
	mu      sync.Mutex
	entries []string
}

// Record prepends query and truncates to the limit.
func (h *History) Record(query string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append([]string{query}, h.entries...)
	if len(h.entries) > historyLimit {
		h.entries = h.entries[:historyLimit]
	}
}

// Entries returns a copy, most recent first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
