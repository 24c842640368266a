package command

import (
	"github.com/eqforge/hunter/internal/protocol"
)

// QueueFunc hands an encoded payload to the transport's send queue.
type QueueFunc func(op protocol.Op, payload []byte)

// WireSink is a CommandSink that encodes each intent into its wire
// payload and queues it for the transport. The transport owns opcode
// numbering, framing and delivery.
type WireSink struct {
	selfID uint16
	queue  QueueFunc
}

// NewWireSink creates a wire sink for the given character entity id.
func NewWireSink(selfID uint16, queue QueueFunc) *WireSink {
	return &WireSink{selfID: selfID, queue: queue}
}

// SetSelfID updates the character entity id after a zone change.
func (s *WireSink) SetSelfID(id uint16) {
	s.selfID = id
}

// SetTarget queues a target change.
func (s *WireSink) SetTarget(entityID uint16) {
	s.queue(protocol.OpTarget, protocol.ClientTarget(entityID))
}

// ClearTarget queues a target clear (target id 0).
func (s *WireSink) ClearTarget() {
	s.queue(protocol.OpTarget, protocol.ClientTarget(0))
}

// AutoAttack queues the auto-attack toggle pair.
func (s *WireSink) AutoAttack(on bool) {
	s.queue(protocol.OpAutoAttack, protocol.AutoAttack(on))
	s.queue(protocol.OpAutoAttackAck, protocol.AutoAttackAck())
}

// AutoFire queues the auto-fire toggle.
func (s *WireSink) AutoFire(on bool) {
	s.queue(protocol.OpAutoFire, protocol.AutoFire(on))
}

// Consider queues a consider request for the given target.
func (s *WireSink) Consider(targetID uint16) {
	s.queue(protocol.OpConsider, protocol.Consider(s.selfID, targetID))
}

// CastSpell queues a cast request.
func (s *WireSink) CastSpell(spellID uint32, targetID uint16) {
	s.queue(protocol.OpCastSpell, protocol.CastSpell(0, spellID, targetID))
}

// InterruptCast queues a cast interrupt.
func (s *WireSink) InterruptCast() {
	s.queue(protocol.OpInterruptCast, protocol.InterruptCast(s.selfID))
}

// LootRequest queues a loot request on a corpse.
func (s *WireSink) LootRequest(corpseID uint16) {
	s.queue(protocol.OpLootRequest, protocol.LootRequest(corpseID))
}

// LootItem queues a loot-item request.
func (s *WireSink) LootItem(corpseID uint16, slot uint32, autoLoot bool) {
	s.queue(protocol.OpLootItem, protocol.LootItem(corpseID, s.selfID, slot, autoLoot))
}

// EndLoot queues an end-loot request.
func (s *WireSink) EndLoot(corpseID uint16) {
	s.queue(protocol.OpEndLootRequest, protocol.EndLoot(corpseID))
}

// Sit queues the sitting position state.
func (s *WireSink) Sit() {
	s.queue(protocol.OpSpawnAppearance,
		protocol.SpawnAppearance(s.selfID, protocol.AppearanceAnimation, protocol.AnimSitting))
}

// Stand queues the standing position state.
func (s *WireSink) Stand() {
	s.queue(protocol.OpSpawnAppearance,
		protocol.SpawnAppearance(s.selfID, protocol.AppearanceAnimation, protocol.AnimStanding))
}

// FaceEntity queues a face-target hint.
func (s *WireSink) FaceEntity(entityID uint16) {
	s.queue(protocol.OpFaceEntity, protocol.FaceEntity(entityID))
}
