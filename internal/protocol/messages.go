package protocol

// Op names an outbound operation. The transport maps these to the numeric
// opcodes of whatever protocol patch it speaks; the combat core never sees
// wire opcodes.
type Op uint8

const (
	OpTarget Op = iota
	OpConsider
	OpAutoAttack
	OpAutoAttackAck
	OpAutoFire
	OpCastSpell
	OpInterruptCast
	OpLootRequest
	OpLootItem
	OpEndLootRequest
	OpSpawnAppearance
	OpFaceEntity
)

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case OpTarget:
		return "Target"
	case OpConsider:
		return "Consider"
	case OpAutoAttack:
		return "AutoAttack"
	case OpAutoAttackAck:
		return "AutoAttackAck"
	case OpAutoFire:
		return "AutoFire"
	case OpCastSpell:
		return "CastSpell"
	case OpInterruptCast:
		return "InterruptCast"
	case OpLootRequest:
		return "LootRequest"
	case OpLootItem:
		return "LootItem"
	case OpEndLootRequest:
		return "EndLootRequest"
	case OpSpawnAppearance:
		return "SpawnAppearance"
	case OpFaceEntity:
		return "FaceEntity"
	default:
		return "Unknown"
	}
}

// Spawn appearance types and animation values used for position state.
const (
	AppearanceAnimation uint16 = 14

	AnimStanding uint32 = 100
	AnimSitting  uint32 = 110
)

// ClientTarget builds the 4-byte target payload. Target id 0 clears.
func ClientTarget(targetID uint16) []byte {
	w := NewWriter(4)
	w.WriteUint32(uint32(targetID))
	return w.Bytes()
}

// Consider builds the 28-byte consider request. The server fills faction,
// level and HP fields in its response; the request carries zeros.
func Consider(playerID, targetID uint16) []byte {
	w := NewWriter(28)
	w.WriteUint32(uint32(playerID))
	w.WriteUint32(uint32(targetID))
	w.WriteUint32(0) // faction
	w.WriteUint32(0) // level
	w.WriteInt32(0)  // cur_hp
	w.WriteInt32(0)  // max_hp
	w.WriteUint8(0)  // pvpcon
	w.WriteZeros(3)
	return w.Bytes()
}

// AutoAttack builds the 4-byte auto-attack toggle.
func AutoAttack(on bool) []byte {
	w := NewWriter(4)
	if on {
		w.WriteUint8(1)
	} else {
		w.WriteUint8(0)
	}
	w.WriteZeros(3)
	return w.Bytes()
}

// AutoAttackAck builds the companion packet sent right after the
// auto-attack toggle. Content is unused server-side.
func AutoAttackAck() []byte {
	w := NewWriter(4)
	w.WriteUint32(0)
	return w.Bytes()
}

// AutoFire builds the 1-byte auto-fire toggle.
func AutoFire(on bool) []byte {
	w := NewWriter(1)
	if on {
		w.WriteUint8(1)
	} else {
		w.WriteUint8(0)
	}
	return w.Bytes()
}

// CastSpell builds the 20-byte cast request.
// Inventory slot 0xFFFFFFFF means the spell comes from a gem, not an item.
func CastSpell(gemSlot, spellID uint32, targetID uint16) []byte {
	w := NewWriter(20)
	w.WriteUint32(gemSlot)
	w.WriteUint32(spellID)
	w.WriteUint32(0xFFFFFFFF)
	w.WriteUint32(uint32(targetID))
	w.WriteZeros(4)
	return w.Bytes()
}

// InterruptCast builds the 4-byte cast interrupt.
func InterruptCast(casterID uint16) []byte {
	w := NewWriter(4)
	w.WriteUint16(casterID)
	w.WriteUint16(0x01)
	return w.Bytes()
}

// LootRequest builds the 4-byte loot request: just the corpse id.
func LootRequest(corpseID uint16) []byte {
	w := NewWriter(4)
	w.WriteUint32(uint32(corpseID))
	return w.Bytes()
}

// LootItem builds the 16-byte loot-item request.
func LootItem(corpseID, looterID uint16, slot uint32, autoLoot bool) []byte {
	w := NewWriter(16)
	w.WriteUint32(uint32(corpseID))
	w.WriteUint32(uint32(looterID))
	w.WriteUint16(uint16(slot))
	w.WriteZeros(2)
	if autoLoot {
		w.WriteUint32(1)
	} else {
		w.WriteUint32(0)
	}
	return w.Bytes()
}

// EndLoot builds the 4-byte end-loot request.
func EndLoot(corpseID uint16) []byte {
	w := NewWriter(4)
	w.WriteUint16(corpseID)
	w.WriteZeros(2)
	return w.Bytes()
}

// SpawnAppearance builds the 8-byte appearance change used for the
// sit/stand position state.
func SpawnAppearance(spawnID uint16, appearanceType uint16, value uint32) []byte {
	w := NewWriter(8)
	w.WriteUint16(spawnID)
	w.WriteUint16(appearanceType)
	w.WriteUint32(value)
	return w.Bytes()
}

// FaceEntity builds the 4-byte face-target hint consumed by the movement
// layer rather than the server.
func FaceEntity(entityID uint16) []byte {
	w := NewWriter(4)
	w.WriteUint32(uint32(entityID))
	return w.Bytes()
}
