package world

import (
	"sync"
	"testing"

	"github.com/eqforge/hunter/internal/model"
)

func TestWorldUpsertAndRemove(t *testing.T) {
	w := New()
	w.Upsert(model.EntitySnapshot{ID: 42, Name: "a_gnoll_pup", HPPercent: 100})

	e, ok := w.Entity(42)
	if !ok || e.Name != "a_gnoll_pup" {
		t.Fatalf("Entity(42) = %+v, %t", e, ok)
	}

	w.Upsert(model.EntitySnapshot{ID: 42, Name: "a_gnoll_pup", HPPercent: 40})
	e, _ = w.Entity(42)
	if e.HPPercent != 40 {
		t.Errorf("HPPercent after upsert = %v, want 40", e.HPPercent)
	}
	if w.Len() != 1 {
		t.Errorf("Len = %d, want 1", w.Len())
	}

	w.Remove(42)
	if _, ok := w.Entity(42); ok {
		t.Error("entity still present after Remove")
	}
}

func TestWorldSelf(t *testing.T) {
	w := New()
	w.SetSelf(model.EntitySnapshot{ID: 1, Name: "Hunter", Level: 10})
	if got := w.Self(); got.Name != "Hunter" || got.Level != 10 {
		t.Errorf("Self = %+v", got)
	}
}

func TestWorldForEachEntityStops(t *testing.T) {
	w := New()
	for id := uint16(2); id < 10; id++ {
		w.Upsert(model.EntitySnapshot{ID: id})
	}
	seen := 0
	w.ForEachEntity(func(e model.EntitySnapshot) bool {
		seen++
		return seen < 3
	})
	if seen != 3 {
		t.Errorf("iteration visited %d entities after early stop, want 3", seen)
	}
}

func TestWorldConcurrentAccess(t *testing.T) {
	w := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(base uint16) {
			defer wg.Done()
			for j := uint16(0); j < 100; j++ {
				id := base*100 + j + 2
				w.Upsert(model.EntitySnapshot{ID: id})
				w.Entity(id)
				w.ForEachEntity(func(model.EntitySnapshot) bool { return true })
			}
		}(uint16(i))
	}
	wg.Wait()
	if w.Len() != 800 {
		t.Errorf("Len = %d, want 800", w.Len())
	}
}
