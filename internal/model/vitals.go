package model

// CombatVitals carries the controlled character's health, mana and
// endurance as pushed by the vitals collaborator. Percent fields are
// derived once at construction so flee/rest checks stay branch-free.
type CombatVitals struct {
	CurHP   int32
	MaxHP   int32
	CurMana int32
	MaxMana int32
	CurEnd  int32
	MaxEnd  int32

	HPPercent   float32
	ManaPercent float32
	EndPercent  float32
}

// NewCombatVitals builds vitals with derived percentages.
// A zero max counts as full so a character without a mana pool never
// triggers mana-based resting.
func NewCombatVitals(curHP, maxHP, curMana, maxMana, curEnd, maxEnd int32) CombatVitals {
	return CombatVitals{
		CurHP:   curHP,
		MaxHP:   maxHP,
		CurMana: curMana,
		MaxMana: maxMana,
		CurEnd:  curEnd,
		MaxEnd:  maxEnd,

		HPPercent:   percent(curHP, maxHP),
		ManaPercent: percent(curMana, maxMana),
		EndPercent:  percent(curEnd, maxEnd),
	}
}

// FullVitals returns vitals at 100% across the board. Used as the initial
// value so a freshly created controller does not immediately rest.
func FullVitals() CombatVitals {
	return CombatVitals{
		HPPercent:   100,
		ManaPercent: 100,
		EndPercent:  100,
	}
}

func percent(cur, max int32) float32 {
	if max <= 0 {
		return 100
	}
	return float32(cur) / float32(max) * 100
}
