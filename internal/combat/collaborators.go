package combat

import (
	"time"

	"github.com/eqforge/hunter/internal/model"
)

// WorldView is the read-only world snapshot the controller consumes each
// tick. The implementation must provide a consistent view for the duration
// of one tick; the controller never writes through it.
type WorldView interface {
	// Self returns the controlled character's own snapshot.
	Self() model.EntitySnapshot
	// Entity looks up a spawn by id.
	Entity(id uint16) (model.EntitySnapshot, bool)
	// ForEachEntity iterates all known spawns. Return false to stop.
	ForEachEntity(fn func(model.EntitySnapshot) bool)
}

// CommandSink accepts the controller's outbound command intents. The sink
// owns wire encoding; the controller only supplies semantic parameters.
// Every call is fire-and-forget.
type CommandSink interface {
	SetTarget(entityID uint16)
	ClearTarget()
	AutoAttack(on bool)
	AutoFire(on bool)
	Consider(targetID uint16)
	CastSpell(spellID uint32, targetID uint16)
	InterruptCast()
	LootRequest(corpseID uint16)
	LootItem(corpseID uint16, slot uint32, autoLoot bool)
	EndLoot(corpseID uint16)
	Sit()
	Stand()
	FaceEntity(entityID uint16)
}

// Mover is the external navigation collaborator. Pathing and collision
// live entirely behind it. A nil Mover is valid — the controller then
// refuses to enable auto-hunting and skips combat movement.
type Mover interface {
	// MoveTo requests movement to an absolute position.
	MoveTo(dest model.Vec3)
	// MoveToEntity requests movement toward an entity, stopping at
	// stopDistance.
	MoveToEntity(entityID uint16, stopDistance float32)
	// Stop cancels any in-flight movement request.
	Stop()
}

// Clock returns the current time. Injected so deadline logic is testable
// with a fake clock.
type Clock func() time.Time
