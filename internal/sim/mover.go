package sim

import "github.com/eqforge/hunter/internal/model"

// Mover implementation: straight-line movement handled in movePlayer each
// tick. There is no pathing in the simulated zone.

func (z *Zone) MoveTo(dest model.Vec3) {
	d := dest
	z.playerDest = &d
}

func (z *Zone) MoveToEntity(entityID uint16, stopDistance float32) {
	snap, ok := z.w.Entity(entityID)
	if !ok {
		return
	}
	self := z.w.Self()
	delta := snap.Position.Sub(self.Position)
	dist := delta.Length()
	if dist <= stopDistance {
		z.playerDest = nil
		return
	}
	dest := self.Position.Add(delta.Normalize().Scale(dist - stopDistance))
	z.playerDest = &dest
}

func (z *Zone) Stop() {
	z.playerDest = nil
}
