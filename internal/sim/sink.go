package sim

import (
	"time"
)

// conLevelForDiff maps a level difference (mob minus player) to the wire
// con level value delivered in consider responses.
func conLevelForDiff(diff int) uint32 {
	switch {
	case diff <= -10:
		return 6 // gray
	case diff <= -6:
		return 2 // green
	case diff <= -3:
		return 10 // light blue
	case diff <= -1:
		return 4 // blue
	case diff == 0:
		return 20 // white
	case diff <= 2:
		return 15 // yellow
	default:
		return 13 // red
	}
}

// CommandSink implementation. The zone reacts to the controller's intents
// the way a live server would, with consider replies arriving after
// ConsiderLatency.

func (z *Zone) SetTarget(entityID uint16) {
	z.simTarget = entityID
}

func (z *Zone) ClearTarget() {
	z.simTarget = 0
}

func (z *Zone) AutoAttack(on bool) {
	z.autoAttack = on
}

func (z *Zone) AutoFire(on bool) {}

func (z *Zone) Consider(targetID uint16) {
	if z.cfg.ConsiderLossRate > 0 && z.rng.Float64() < z.cfg.ConsiderLossRate {
		z.log.Debug("dropping consider reply", "target", targetID)
		return
	}
	z.pendingCons = append(z.pendingCons, considerReply{
		entityID: targetID,
		dueAt:    time.Now().Add(z.cfg.ConsiderLatency),
	})
}

func (z *Zone) CastSpell(spellID uint32, targetID uint16) {}

func (z *Zone) InterruptCast() {}

func (z *Zone) LootRequest(corpseID uint16) {
	if m, ok := z.mobs[corpseID]; ok && m.snap.IsCorpse {
		z.pendingLoots = append(z.pendingLoots, lootOpen{
			corpseID: corpseID,
			dueAt:    time.Now().Add(50 * time.Millisecond),
		})
	}
}

func (z *Zone) LootItem(corpseID uint16, slot uint32, autoLoot bool) {
	if z.ctrl != nil {
		z.ctrl.OnLootItemConfirmed(slot)
	}
}

func (z *Zone) EndLoot(corpseID uint16) {
	if m, ok := z.mobs[corpseID]; ok && m.snap.IsCorpse {
		delete(z.mobs, corpseID)
		z.w.Remove(corpseID)
	}
}

func (z *Zone) Sit() {
	z.sitting = true
}

func (z *Zone) Stand() {
	z.sitting = false
}

func (z *Zone) FaceEntity(entityID uint16) {}

func (z *Zone) deliverConsiders(now time.Time) {
	if len(z.pendingCons) == 0 || z.ctrl == nil {
		return
	}
	remaining := z.pendingCons[:0]
	for _, rep := range z.pendingCons {
		if now.Before(rep.dueAt) {
			remaining = append(remaining, rep)
			continue
		}
		m, ok := z.mobs[rep.entityID]
		if !ok || m.snap.IsCorpse {
			continue
		}
		self := z.w.Self()
		diff := int(m.snap.Level) - int(self.Level)
		z.ctrl.OnConsiderResponse(rep.entityID, m.snap.Faction, conLevelForDiff(diff), m.curHP, m.maxHP)
	}
	z.pendingCons = remaining
}

func (z *Zone) deliverLootWindows(now time.Time) {
	if len(z.pendingLoots) == 0 || z.ctrl == nil {
		return
	}
	remaining := z.pendingLoots[:0]
	for _, lo := range z.pendingLoots {
		if now.Before(lo.dueAt) {
			remaining = append(remaining, lo)
			continue
		}
		m, ok := z.mobs[lo.corpseID]
		if !ok {
			continue
		}
		slots := make([]uint32, 0, m.lootSlots)
		for i := 0; i < m.lootSlots; i++ {
			slots = append(slots, uint32(i))
		}
		z.ctrl.OnLootWindowOpened(lo.corpseID, slots)
	}
	z.pendingLoots = remaining
}
