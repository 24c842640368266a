package combat

import (
	"testing"
	"time"
)

func TestConsiderTrackerResolve(t *testing.T) {
	tr := NewConsiderTracker()
	now := time.Now()

	tr.Begin([]uint16{10, 11, 12}, now)
	if !tr.Waiting() {
		t.Fatal("expected tracker to be waiting after Begin")
	}
	if got := tr.PendingCount(); got != 3 {
		t.Fatalf("PendingCount = %d, want 3", got)
	}

	wasPending, drained := tr.Resolve(11)
	if !wasPending || drained {
		t.Fatalf("Resolve(11) = %t, %t, want true, false", wasPending, drained)
	}

	// Correlation miss: never requested.
	wasPending, _ = tr.Resolve(99)
	if wasPending {
		t.Fatal("Resolve(99) reported pending for an unrequested id")
	}

	// Duplicate response.
	wasPending, _ = tr.Resolve(11)
	if wasPending {
		t.Fatal("second Resolve(11) reported pending")
	}

	tr.Resolve(10)
	wasPending, drained = tr.Resolve(12)
	if !wasPending || !drained {
		t.Fatalf("final Resolve = %t, %t, want true, true", wasPending, drained)
	}
	if tr.Waiting() {
		t.Fatal("tracker still waiting after batch drained")
	}
}

func TestConsiderTrackerTimeout(t *testing.T) {
	tr := NewConsiderTracker()
	cat := NewTargetCatalog()
	start := time.Now()

	tr.Begin([]uint16{10}, start)

	if tr.Ready(cat, start.Add(time.Second)) {
		t.Fatal("tracker ready before timeout with unresolved id")
	}
	if !tr.Expired(start.Add(considerTimeout + time.Millisecond)) {
		t.Fatal("tracker not expired past the consider timeout")
	}
	if !tr.Ready(cat, start.Add(considerTimeout+time.Millisecond)) {
		t.Fatal("expired tracker must report ready so the hunt progresses")
	}
}

func TestConsiderTrackerClear(t *testing.T) {
	tr := NewConsiderTracker()
	tr.Begin([]uint16{10, 11}, time.Now())
	tr.Clear()
	if tr.Waiting() || tr.PendingCount() != 0 {
		t.Fatal("Clear left tracker state behind")
	}
}
