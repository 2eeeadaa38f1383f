// Package presence tracks which users have been seen recently. State is
// held entirely in memory and scoped to the process: the tracker is
// created at startup and injected into the handlers that need it.
package presence

import (
	"sync"
	"time"
)

// DefaultWindow is the trailing window within which a user counts as active.
const DefaultWindow = 5 * time.Minute

// Tracker maps user identifiers to their last-seen time. Entries are never
// evicted; stale users simply stop appearing in Active.
type Tracker struct {
	mu     sync.Mutex
	seen   map[string]time.Time
	window time.Duration
	now    func() time.Time
}

// NewTracker creates a tracker with the given trailing window. A
// non-positive window falls back to the default.
func NewTracker(window time.Duration) *Tracker {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Tracker{
		seen:   make(map[string]time.Time),
		window: window,
		now:    time.Now,
	}
}

// Touch marks user as seen now, creating the entry if absent.
func (t *Tracker) Touch(user string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seen[user] = t.now()
}

// Active returns every user seen within the trailing window, in no
// guaranteed order.
func (t *Tracker) Active() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	cutoff := t.now().Add(-t.window)
	users := make([]string, 0, len(t.seen))
	for user, last := range t.seen {
		if last.After(cutoff) {
			users = append(users, user)
		}
	}
	return users
}
