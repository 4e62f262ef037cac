package repository

import (
	"sync"

	"smartcity/internal/models"
)

// ReviewHistory is the append-only, newest-first log of advisory results.
// Entries are recorded in generation-completion order and never removed.
type ReviewHistory struct {
	mu      sync.RWMutex
	entries []models.AdvisoryResult
}

// NewReviewHistory creates an empty history.
func NewReviewHistory() *ReviewHistory {
	return &ReviewHistory{}
}

// Record prepends a result to the history.
func (h *ReviewHistory) Record(result models.AdvisoryResult) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append([]models.AdvisoryResult{result}, h.entries...)
}

// Recent returns the newest n results, or fewer if the history is shorter.
// Stored review text is returned untruncated; any display truncation happens
// at the presentation boundary.
func (h *ReviewHistory) Recent(n int) []models.AdvisoryResult {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if n < 0 {
		n = 0
	}
	if n > len(h.entries) {
		n = len(h.entries)
	}
	out := make([]models.AdvisoryResult, n)
	copy(out, h.entries[:n])
	return out
}

// Len returns the number of recorded results.
func (h *ReviewHistory) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}
