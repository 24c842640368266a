package model

// EntitySnapshot is a point-in-time view of a spawn as reported by the
// world-state store. The combat core holds it only for the duration of one
// tick and never mutates it.
type EntitySnapshot struct {
	ID        uint16
	Name      string
	Position  Vec3
	HPPercent float32
	Faction   uint32
	Level     uint8
	Size      float32
	IsCorpse  bool
	RaceID    uint16
	ClassID   uint8
}

// NPC class ids in the Titanium spawn struct. Everything above the player
// class band is a special NPC (merchants use their own class ids).
const (
	ClassNPC       = 0
	ClassWarrior   = 1
	maxPlayerClass = 16
)

// IsNPC reports whether the snapshot looks like a regular mob.
// Titanium reports mobs with class id 0 or 1.
func (e EntitySnapshot) IsNPC() bool {
	return e.ClassID == ClassNPC || e.ClassID == ClassWarrior
}

// IsPlayerClass reports whether the class id falls in the playable band.
func (e EntitySnapshot) IsPlayerClass() bool {
	return e.ClassID >= ClassWarrior && e.ClassID <= maxPlayerClass
}
