package combat

import (
	"log/slog"
	"time"

	"github.com/eqforge/hunter/internal/model"
)

// defaultCastTime is assumed when no memorized spell data carries one.
const defaultCastTime = 3 * time.Second

// CastSpell starts casting a spell at a target (0 means current target).
// Returns false while another cast is in flight. Cast completion is
// server-authoritative; the local casting flag clears at the cast-time
// deadline.
func (c *Controller) CastSpell(spellID uint32, targetID uint16) bool {
	if c.casting {
		return false
	}

	if targetID == 0 {
		targetID = c.current.EntityID
	}

	castTime := defaultCastTime
	for i := range c.memorized {
		if c.memorized[i].SpellID == spellID {
			if c.memorized[i].CastTime > 0 {
				castTime = c.memorized[i].CastTime
			}
			c.memorized[i].LastCastTime = c.clock()
			break
		}
	}

	c.casting = true
	c.currentSpellID = spellID
	c.spellTargetID = targetID
	c.castDoneAt = c.clock().Add(castTime)

	c.sink.CastSpell(spellID, targetID)

	if IsDebugEnabled() {
		slog.Debug("casting spell", "spellID", spellID, "targetID", targetID)
	}
	return true
}

// CastGem casts the spell memorized in a gem slot.
func (c *Controller) CastGem(slot model.SpellSlot, targetID uint16) bool {
	if slot < 0 || int(slot) >= len(c.spellGems) {
		return false
	}
	spellID := c.spellGems[slot]
	if spellID == 0 {
		return false
	}
	return c.CastSpell(spellID, targetID)
}

// InterruptCast aborts an in-flight cast.
func (c *Controller) InterruptCast() {
	if !c.casting {
		return
	}
	c.casting = false
	c.currentSpellID = 0
	c.spellTargetID = 0
	c.sink.InterruptCast()
}

// MemorizeSpell assigns a spell to a gem slot.
func (c *Controller) MemorizeSpell(spellID uint32, slot model.SpellSlot) {
	if slot < 0 || int(slot) >= len(c.spellGems) {
		return
	}
	c.spellGems[slot] = spellID
}

// Memorize records spell data for cast gating.
func (c *Controller) Memorize(info model.SpellInfo) {
	for i := range c.memorized {
		if c.memorized[i].SpellID == info.SpellID {
			c.memorized[i] = info
			return
		}
	}
	c.memorized = append(c.memorized, info)
}

// MemorizedSpells returns the known spell data.
func (c *Controller) MemorizedSpells() []model.SpellInfo {
	return c.memorized
}

// Casting reports whether a cast is in flight.
func (c *Controller) Casting() bool {
	return c.casting
}

// CanCast checks mana, recast timer and range against the current target.
func (c *Controller) CanCast(spell model.SpellInfo) bool {
	if c.vitals.CurMana < spell.ManaCost {
		return false
	}

	if spell.RecastTime > 0 && !spell.LastCastTime.IsZero() {
		if c.clock().Sub(spell.LastCastTime) < spell.RecastTime {
			return false
		}
	}

	if c.HasTarget() && spell.Range > 0 {
		if e, ok := c.view.Entity(c.current.EntityID); ok {
			if c.view.Self().Position.Distance(e.Position) > spell.Range {
				return false
			}
		}
	}

	return true
}

// advanceCasting clears the casting flag once the cast-time deadline
// passes.
func (c *Controller) advanceCasting(now time.Time) {
	if c.casting && !now.Before(c.castDoneAt) {
		c.casting = false
		c.currentSpellID = 0
		c.spellTargetID = 0
	}
}
