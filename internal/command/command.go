// Package command provides sinks for the combat core's outbound command
// intents: a recorder for tests and simulation, and a wire sink that
// encodes intents into protocol payloads for a transport queue.
package command

// Kind identifies an outbound command intent.
type Kind int

const (
	KindSetTarget Kind = iota
	KindClearTarget
	KindAutoAttack
	KindAutoFire
	KindConsider
	KindCastSpell
	KindInterruptCast
	KindLootRequest
	KindLootItem
	KindEndLoot
	KindSit
	KindStand
	KindFaceEntity
)

// String returns the command kind name.
func (k Kind) String() string {
	switch k {
	case KindSetTarget:
		return "set-target"
	case KindClearTarget:
		return "clear-target"
	case KindAutoAttack:
		return "auto-attack"
	case KindAutoFire:
		return "auto-fire"
	case KindConsider:
		return "consider"
	case KindCastSpell:
		return "cast-spell"
	case KindInterruptCast:
		return "interrupt-cast"
	case KindLootRequest:
		return "loot-request"
	case KindLootItem:
		return "loot-item"
	case KindEndLoot:
		return "end-loot"
	case KindSit:
		return "sit"
	case KindStand:
		return "stand"
	case KindFaceEntity:
		return "face-entity"
	default:
		return "unknown"
	}
}

// Command is one recorded intent with its semantic parameters.
type Command struct {
	Kind     Kind
	TargetID uint16
	On       bool
	SpellID  uint32
	Slot     uint32
	AutoLoot bool
}
