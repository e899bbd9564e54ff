package spamcheck

import (
	"container/ring"
	"sync"
)

// LastChecks keeps track of last N checks, thread-safe.
type LastChecks struct {
	checks *ring.Ring
	size   int
	lock   sync.RWMutex
}

// NewLastChecks creates new checks tracker
func NewLastChecks(size int) *LastChecks {
	// minimum size is 1
	if size < 1 {
		size = 1
	}
	return &LastChecks{
		checks: ring.New(size),
		size:   size,
	}
}

// Push adds new check to the history
func (h *LastChecks) Push(c Check) {
	h.lock.Lock()
	defer h.lock.Unlock()

	h.checks.Value = c
	h.checks = h.checks.Next()
}

// Last returns up to n last checks, newest first
func (h *LastChecks) Last(n int) []Check {
	if n < 1 {
		return []Check{}
	}

	h.lock.RLock()
	defer h.lock.RUnlock()

	if n > h.size {
		n = h.size
	}

	// current position points to the oldest slot, walk backwards from the newest one
	result := make([]Check, 0, n)
	for r := h.checks.Prev(); len(result) < n; r = r.Prev() {
		c, ok := r.Value.(Check)
		if !ok {
			break // reached never-filled slot
		}
		result = append(result, c)
		if r == h.checks {
			break
		}
	}
	return result
}

// Size returns the size of checks history
func (h *LastChecks) Size() int {
	return h.size
}
