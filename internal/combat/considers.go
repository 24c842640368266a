package combat

import (
	"time"
)

// considerTimeout bounds how long a consider batch may block target
// acquisition. Responses arriving after the deadline are still applied to
// the catalog but no longer gate progress — best effort, not a guarantee.
const considerTimeout = 3 * time.Second

// maxConsiderBatch caps how many consider requests go out per acquisition
// pass. The wire protocol scopes a consider to the current target, so each
// request is a serialized target-then-consider pair.
const maxConsiderBatch = 3

// ConsiderTracker correlates asynchronous consider responses back to the
// batch that requested them. Owned by the controller; not safe for
// concurrent use.
type ConsiderTracker struct {
	pending   map[uint16]struct{}
	waiting   bool
	startedAt time.Time
}

// NewConsiderTracker creates an idle tracker.
func NewConsiderTracker() *ConsiderTracker {
	return &ConsiderTracker{
		pending: make(map[uint16]struct{}),
	}
}

// Begin records a freshly issued batch.
func (t *ConsiderTracker) Begin(ids []uint16, now time.Time) {
	clear(t.pending)
	for _, id := range ids {
		t.pending[id] = struct{}{}
	}
	t.waiting = len(t.pending) > 0
	t.startedAt = now
}

// Waiting reports whether a batch is outstanding.
func (t *ConsiderTracker) Waiting() bool {
	return t.waiting
}

// PendingCount returns the number of unresolved ids.
func (t *ConsiderTracker) PendingCount() int {
	return len(t.pending)
}

// Resolve removes an answered id from the batch. Returns whether the id
// was part of the batch (false signals a correlation miss) and whether the
// batch just drained completely.
func (t *ConsiderTracker) Resolve(entityID uint16) (wasPending, drained bool) {
	if _, ok := t.pending[entityID]; !ok {
		return false, false
	}
	delete(t.pending, entityID)

	if len(t.pending) == 0 && t.waiting {
		// Clear immediately so the next tick does not stall on an
		// already-complete batch.
		t.waiting = false
		return true, true
	}
	return true, false
}

// Expired reports whether the batch has outlived the consider timeout.
func (t *ConsiderTracker) Expired(now time.Time) bool {
	return t.waiting && now.Sub(t.startedAt) > considerTimeout
}

// Ready reports whether acquisition may proceed: every requested id has
// resolved data in the catalog, or the timeout elapsed.
func (t *ConsiderTracker) Ready(catalog *TargetCatalog, now time.Time) bool {
	if !t.waiting {
		return true
	}
	if t.Expired(now) {
		return true
	}
	for id := range t.pending {
		target, ok := catalog.Get(id)
		if !ok || !target.HasConsiderData() {
			return false
		}
	}
	return true
}

// Clear abandons any outstanding batch.
func (t *ConsiderTracker) Clear() {
	clear(t.pending)
	t.waiting = false
}
