package track

import (
	"sync"
	"time"
)

// Tracker holds the latest LiveFix per tracked aircraft. The poll loop and
// HTTP handlers touch it concurrently, so access is mutex-guarded; the pure
// extrapolation math stays lock-free.
type Tracker struct {
	mu    sync.RWMutex
	fixes map[string]LiveFix
}

func NewTracker() *Tracker {
	return &Tracker{fixes: map[string]LiveFix{}}
}

// Update records an authoritative fix from an API poll, replacing whatever
// was there (confirmed or extrapolated).
func (t *Tracker) Update(id string, fix LiveFix) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fixes[id] = fix
}

// Fix returns the latest fix for id. A missing fix means the aircraft has
// no live position yet; callers must check ok.
func (t *Tracker) Fix(id string) (LiveFix, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	fix, ok := t.fixes[id]
	return fix, ok
}

// Advance extrapolates every tracked fix to now and stores the results,
// returning the advanced fixes keyed by aircraft id for broadcasting.
func (t *Tracker) Advance(now time.Time) map[string]LiveFix {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]LiveFix, len(t.fixes))
	for id, fix := range t.fixes {
		next := Extrapolate(fix, now)
		t.fixes[id] = next
		out[id] = next
	}
	return out
}

// Remove forgets an aircraft, ending its tracking session.
func (t *Tracker) Remove(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.fixes, id)
}

// IDs returns the currently tracked aircraft ids.
func (t *Tracker) IDs() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids := make([]string, 0, len(t.fixes))
	for id := range t.fixes {
		ids = append(ids, id)
	}
	return ids
}

// LatestTimestamp returns the most recent fix timestamp across all tracked
// aircraft, or the zero time when nothing is tracked.
func (t *Tracker) LatestTimestamp() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var latest time.Time
	for _, fix := range t.fixes {
		if fix.Timestamp.After(latest) {
			latest = fix.Timestamp
		}
	}
	return latest
}
