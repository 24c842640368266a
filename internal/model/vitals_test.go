package model

import "testing"

func TestNewCombatVitals_Percentages(t *testing.T) {
	v := NewCombatVitals(50, 200, 30, 120, 80, 100)

	if v.HPPercent != 25 {
		t.Errorf("HPPercent = %v, want 25", v.HPPercent)
	}
	if v.ManaPercent != 25 {
		t.Errorf("ManaPercent = %v, want 25", v.ManaPercent)
	}
	if v.EndPercent != 80 {
		t.Errorf("EndPercent = %v, want 80", v.EndPercent)
	}
}

func TestNewCombatVitals_NoManaPool(t *testing.T) {
	// A pure melee has max mana 0 — treated as full so rest logic
	// never waits on mana.
	v := NewCombatVitals(100, 100, 0, 0, 100, 100)
	if v.ManaPercent != 100 {
		t.Errorf("ManaPercent with no pool = %v, want 100", v.ManaPercent)
	}
}

func TestFullVitals(t *testing.T) {
	v := FullVitals()
	if v.HPPercent != 100 || v.ManaPercent != 100 || v.EndPercent != 100 {
		t.Errorf("FullVitals not at 100%%: %+v", v)
	}
}
