package model

import "time"

// SpellSlot is a spell gem slot index (0-based).
type SpellSlot int

// MaxSpellGems is the number of spell gem slots on the Titanium UI.
const MaxSpellGems = 8

// SpellInfo describes a memorized spell for cast gating.
type SpellInfo struct {
	SpellID      uint32
	Name         string
	ManaCost     int32
	Range        float32
	CastTime     time.Duration
	RecastTime   time.Duration
	LastCastTime time.Time
}
