package model

// LootSession tracks an open loot window on a corpse. Created when the
// loot collaborator reports the window opening, destroyed when the
// controller sends end-loot or the session times out.
type LootSession struct {
	CorpseID     uint16
	OfferedSlots []uint32
	AutoLoot     bool
}

// AddSlot appends a slot if it is not already offered.
func (s *LootSession) AddSlot(slot uint32) {
	for _, existing := range s.OfferedSlots {
		if existing == slot {
			return
		}
	}
	s.OfferedSlots = append(s.OfferedSlots, slot)
}
