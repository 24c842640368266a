package combat

import (
	"log/slog"
	"time"

	"github.com/eqforge/hunter/internal/model"
)

// Loot pacing. Items go out one per interval instead of a burst so the
// server's per-connection packet budget is never tripped, and the window
// stays open briefly after the last item so stragglers still land.
const (
	lootStartDelay   = 300 * time.Millisecond
	lootItemInterval = 100 * time.Millisecond
	lootCloseDelay   = 500 * time.Millisecond

	// The loot request is fire-and-forget, so the window push may never
	// arrive. A session whose window has not opened by this deadline is
	// abandoned instead of pinning the machine in the looting state.
	lootWindowTimeout = 5 * time.Second
)

// LootCorpse opens a loot session on a corpse, emitting the loot request.
func (c *Controller) LootCorpse(corpseID uint16) {
	c.loot = &model.LootSession{
		CorpseID: corpseID,
		AutoLoot: c.settings.AutoLoot,
	}
	c.lootCursor = 0
	c.lootWindow = false
	c.lootOpenBy = c.clock().Add(lootWindowTimeout)
	c.setState(model.StateLooting)
	c.sink.LootRequest(corpseID)

	if IsDebugEnabled() {
		slog.Debug("loot request sent", "corpseID", corpseID)
	}
}

// OnLootWindowOpened receives the offered item slots once the server opens
// the window. Ignored outside a loot session.
func (c *Controller) OnLootWindowOpened(corpseID uint16, slots []uint32) {
	if c.state != model.StateLooting || c.loot == nil || c.loot.CorpseID != corpseID {
		if IsDebugEnabled() {
			slog.Debug("loot window ignored, no matching session", "corpseID", corpseID)
		}
		return
	}

	c.loot.OfferedSlots = append(c.loot.OfferedSlots[:0], slots...)
	c.lootWindow = true
	c.lootCursor = 0
	// First item goes out after a short delay so the window is fully
	// populated server-side.
	c.nextLootAt = c.clock().Add(lootStartDelay)

	if IsDebugEnabled() {
		slog.Debug("loot window opened", "corpseID", corpseID, "slots", len(slots))
	}
}

// OnLootItemConfirmed records a slot announced individually by the server
// after the window opened. Deduplicated per session.
func (c *Controller) OnLootItemConfirmed(slot uint32) {
	if c.loot == nil || !c.lootWindow {
		return
	}
	c.loot.AddSlot(slot)
}

// advanceLooting paces loot-item commands across ticks: one item per
// interval, then end-loot after a closing delay. All timing is
// deadline-based — the tick never sleeps.
func (c *Controller) advanceLooting(now time.Time) {
	if c.state != model.StateLooting || c.loot == nil {
		return
	}
	if !c.lootWindow {
		if now.After(c.lootOpenBy) {
			c.abandonLoot()
		}
		return
	}
	if !c.loot.AutoLoot {
		return
	}
	if now.Before(c.nextLootAt) {
		return
	}

	if c.lootCursor < len(c.loot.OfferedSlots) {
		slot := c.loot.OfferedSlots[c.lootCursor]
		c.sink.LootItem(c.loot.CorpseID, slot, true)
		c.lootCursor++
		c.nextLootAt = now.Add(lootItemInterval)

		if c.lootCursor == len(c.loot.OfferedSlots) {
			// All offered items sent; linger before closing.
			c.nextLootAt = now.Add(lootCloseDelay)
		}
		return
	}

	c.CloseLootWindow()
}

// abandonLoot drops a session whose loot window never opened. No end-loot
// goes out since there is no window to close.
func (c *Controller) abandonLoot() {
	corpseID := c.loot.CorpseID
	c.loot = nil
	c.lootCursor = 0

	slog.Warn("loot window never opened, abandoning session", "corpseID", corpseID)

	if c.state == model.StateLooting {
		if c.autoHuntingOn {
			c.setState(model.StateHunting)
		} else {
			c.setState(model.StateIdle)
		}
	}
}

// CloseLootWindow ends the loot session, emitting end-loot, and resumes
// hunting when the auto-hunt cycle is active.
func (c *Controller) CloseLootWindow() {
	if c.loot == nil {
		return
	}
	corpseID := c.loot.CorpseID
	c.loot = nil
	c.lootWindow = false
	c.lootCursor = 0

	c.sink.EndLoot(corpseID)

	if IsDebugEnabled() {
		slog.Debug("loot session closed", "corpseID", corpseID)
	}

	if c.state == model.StateLooting {
		if c.autoHuntingOn {
			c.setState(model.StateHunting)
		} else {
			c.setState(model.StateIdle)
		}
	}
}

// advanceCorpseSearch looks for the corpse of a just-killed hunt target.
// The search starts after the spawn wait and gives up at the window
// deadline — a missing corpse is not an error, the hunt simply resumes.
func (c *Controller) advanceCorpseSearch(now time.Time) {
	if c.corpseSearchName == "" {
		return
	}
	if now.Before(c.corpseSearchAfter) {
		return
	}
	if now.After(c.corpseSearchUntil) {
		if IsDebugEnabled() {
			slog.Debug("corpse not found, abandoning loot", "name", c.corpseSearchName)
		}
		c.corpseSearchName = ""
		return
	}

	corpse, ok := c.findCorpse(c.corpseSearchName)
	if !ok {
		return
	}

	c.corpseSearchName = ""

	if c.autoMovementOn && c.mover != nil {
		c.mover.MoveToEntity(corpse.ID, corpseLootApproach)
	}
	c.LootCorpse(corpse.ID)
}

// findCorpse locates a nearby corpse, preferring an exact name match and
// falling back to the nearest corpse-flagged spawn within search range.
func (c *Controller) findCorpse(name string) (model.EntitySnapshot, bool) {
	self := c.view.Self()

	var nearest model.EntitySnapshot
	var nearestDist float32
	found := false

	c.view.ForEachEntity(func(e model.EntitySnapshot) bool {
		if !e.IsCorpse && !DefaultCorpseNames(e.Name) && e.Name != name {
			return true
		}
		d := self.Position.Distance(e.Position)
		if d > corpseSearchRange {
			return true
		}
		if e.Name == name {
			nearest = e
			nearestDist = d
			found = true
			return false
		}
		if !found || d < nearestDist {
			nearest = e
			nearestDist = d
			found = true
		}
		return true
	})

	return nearest, found
}
