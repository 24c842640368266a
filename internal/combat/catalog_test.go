package combat

import (
	"testing"

	"github.com/eqforge/hunter/internal/model"
)

func TestMergePreservesConsiderData(t *testing.T) {
	cat := NewTargetCatalog()

	cat.Merge([]model.CandidateTarget{{EntityID: 42, Name: "a_gnoll_pup", Distance: 20, HPPercent: 100}})
	entry, _ := cat.Get(42)
	entry.Consider = &model.ConsiderData{Faction: 8, ConLevel: 10}
	entry.ConColor = model.ConLightBlue

	// Re-scan with fresh distance; consider data must survive.
	cat.Merge([]model.CandidateTarget{{EntityID: 42, Name: "a_gnoll_pup", Distance: 12, HPPercent: 80}})

	if cat.Len() != 1 {
		t.Fatalf("Len = %d, want 1", cat.Len())
	}
	entry, _ = cat.Get(42)
	if entry.Consider == nil || entry.Consider.Faction != 8 {
		t.Fatal("consider data lost across merge")
	}
	if entry.Distance != 12 || entry.HPPercent != 80 {
		t.Errorf("distance/hp not refreshed: %v, %v", entry.Distance, entry.HPPercent)
	}
	if entry.ConColor != model.ConLightBlue {
		t.Errorf("con color reset to %v", entry.ConColor)
	}
}

func TestSuitableForHunt(t *testing.T) {
	cat := NewTargetCatalog()

	withCon := func(color model.ConsiderColor, faction uint32) *model.CandidateTarget {
		return &model.CandidateTarget{
			EntityID: 1,
			ConColor: color,
			Consider: &model.ConsiderData{Faction: faction, ConLevel: 1},
		}
	}

	tests := []struct {
		name   string
		target *model.CandidateTarget
		raceID uint16
		want   bool
	}{
		{"no data yet", &model.CandidateTarget{EntityID: 1}, 39, true},
		{"blue indifferent beast", withCon(model.ConBlue, model.FactionIndifferent), 39, true},
		{"white threatening humanoid", withCon(model.ConWhite, model.FactionThreatening), 44, true},
		{"light blue scowling", withCon(model.ConLightBlue, model.FactionScowls), 39, true},
		{"red con rejected", withCon(model.ConRed, model.FactionThreatening), 39, false},
		{"yellow con rejected", withCon(model.ConYellow, model.FactionThreatening), 39, false},
		{"gray con rejected", withCon(model.ConGray, model.FactionThreatening), 39, false},
		{"faction below band", withCon(model.ConBlue, 4), 39, false},
		{"faction above band", withCon(model.ConBlue, 10), 39, false},
		{"indifferent humanoid avoided", withCon(model.ConBlue, model.FactionIndifferent), 44, false},
		{"indifferent beast fine", withCon(model.ConBlue, model.FactionIndifferent), 36, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cat.SuitableForHunt(tt.target, tt.raceID); got != tt.want {
				t.Errorf("SuitableForHunt = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestPartitionSortsByDistance(t *testing.T) {
	view := newFakeView()
	view.add(gnoll(10, 30))
	view.add(gnoll(11, 10))
	view.add(gnoll(12, 20))

	cat := NewTargetCatalog()
	cat.Merge(cat.Scan(view, 300))

	needs, ready := cat.Partition(view, 300)
	if len(ready) != 0 {
		t.Fatalf("ready = %d entries before any consider data", len(ready))
	}
	if len(needs) != 3 {
		t.Fatalf("needsConsider = %d, want 3", len(needs))
	}
	if needs[0].EntityID != 11 || needs[1].EntityID != 12 || needs[2].EntityID != 10 {
		t.Errorf("not sorted by distance: %v", []uint16{needs[0].EntityID, needs[1].EntityID, needs[2].EntityID})
	}

	// Resolve all three; the suitable ones move to ready.
	for _, id := range []uint16{10, 11, 12} {
		e, _ := cat.Get(id)
		e.Consider = &model.ConsiderData{Faction: 8, ConLevel: 10}
		e.ConColor = model.ConLightBlue
	}
	needs, ready = cat.Partition(view, 300)
	if len(needs) != 0 || len(ready) != 3 {
		t.Fatalf("partition after resolve = %d needs, %d ready", len(needs), len(ready))
	}
	if ready[0].EntityID != 11 {
		t.Errorf("nearest ready = %d, want 11", ready[0].EntityID)
	}
}

func TestSortForEngage(t *testing.T) {
	list := []model.CandidateTarget{
		{EntityID: 1, Priority: 100, Distance: 50},
		{EntityID: 2, Priority: 200, Distance: 40},
		{EntityID: 3, Priority: 200, Distance: 10},
	}
	SortForEngage(list)
	if list[0].EntityID != 3 || list[1].EntityID != 2 || list[2].EntityID != 1 {
		t.Errorf("order = %d, %d, %d", list[0].EntityID, list[1].EntityID, list[2].EntityID)
	}
}
