package combat

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/eqforge/hunter/internal/model"
)

// ErrNoMover is returned when auto-hunting is requested without a
// navigation collaborator wired in.
var ErrNoMover = errors.New("auto-hunting requires a movement collaborator")

// SetAutoHunting starts or stops the autonomous hunt cycle. Enabling
// without a Mover is refused synchronously with no state change.
func (c *Controller) SetAutoHunting(enable bool) error {
	if enable && c.mover == nil {
		return fmt.Errorf("enabling auto-hunting: %w", ErrNoMover)
	}

	if enable {
		c.autoHuntingOn = true
		c.setState(model.StateHunting)
		c.lastHuntUpdate = c.clock()
		c.EnableAutoMovement()
		slog.Info("auto-hunting enabled", "huntRadius", c.settings.HuntRadius)
		return nil
	}

	c.stopAutoHunting()
	return nil
}

// stopAutoHunting tears down hunt state without touching combat flags.
func (c *Controller) stopAutoHunting() {
	if !c.autoHuntingOn {
		return
	}
	c.autoHuntingOn = false

	if c.state == model.StateHunting || c.state == model.StateResting {
		c.setState(model.StateIdle)
	}
	c.DisableAutoMovement()
	c.considers.Clear()
	slog.Info("auto-hunting disabled")
}

// updateAutoHunting drives the hunt cycle, throttled to the hunt
// re-evaluation cadence.
func (c *Controller) updateAutoHunting(now time.Time) {
	if now.Sub(c.lastHuntUpdate) < huntUpdateInterval {
		return
	}
	c.lastHuntUpdate = now

	switch c.state {
	case model.StateHunting:
		if c.shouldRest() {
			c.startResting()
			return
		}
		if !c.HasTarget() {
			c.findNextHuntTarget(now)
		}

	case model.StateIdle:
		// Brief cooldown after combat before resuming the hunt.
		if now.Sub(c.combatEnd) >= postCombatDelay {
			c.setState(model.StateHunting)
		}

	case model.StateEngaged, model.StateResting, model.StateFleeing,
		model.StateLooting, model.StateSeekingGuard:
		// Handled by the main tick switch.
	}
}

// findNextHuntTarget is the acquisition pass: wait out any outstanding
// consider batch, refresh the catalog inside the hunt radius, then either
// request considers for unevaluated candidates or engage the nearest
// suitable one. Requesting and engaging never happen in the same pass to
// keep batch correlation simple.
func (c *Controller) findNextHuntTarget(now time.Time) {
	if c.considers.Waiting() {
		if !c.considers.Ready(c.catalog, now) {
			if IsDebugEnabled() {
				slog.Debug("waiting on consider batch",
					"pending", c.considers.PendingCount())
			}
			return
		}
		c.considers.Clear()
		if IsDebugEnabled() {
			slog.Debug("consider batch resolved or timed out")
		}
	}

	c.catalog.RefreshDistances(c.view)
	c.catalog.Merge(c.catalog.Scan(c.view, c.settings.HuntRadius))

	needsConsider, ready := c.catalog.Partition(c.view, c.settings.HuntRadius)

	if len(needsConsider) > 0 {
		c.requestConsiders(needsConsider, now)
		return
	}

	if len(ready) > 0 {
		best := ready[0]
		if c.SetTarget(best.EntityID) {
			slog.Info("engaging hunt target",
				"name", best.Name,
				"entityID", best.EntityID,
				"con", best.ConColor,
				"distance", best.Distance)
			c.EnableAutoAttack()
			c.EnableAutoMovement()
			return
		}
	}

	if IsDebugEnabled() {
		slog.Debug("no suitable hunt targets", "tracked", c.catalog.Len())
	}
}

// requestConsiders issues up to maxConsiderBatch serialized
// target-then-consider pairs, nearest candidates first, then clears the
// target once. The consider request is scoped to "current target" on the
// wire, which forces the sequential targeting.
func (c *Controller) requestConsiders(candidates []model.CandidateTarget, now time.Time) {
	var sent []uint16
	for _, t := range candidates {
		if len(sent) >= maxConsiderBatch {
			break
		}
		if !c.SetTarget(t.EntityID) {
			continue
		}
		c.sink.Consider(t.EntityID)
		if entry, ok := c.catalog.Get(t.EntityID); ok {
			entry.LastConsidered = now
		}
		sent = append(sent, t.EntityID)
	}

	if len(sent) == 0 {
		return
	}

	c.considers.Begin(sent, now)
	c.ClearTarget()

	if IsDebugEnabled() {
		slog.Debug("consider batch sent", "count", len(sent))
	}
}

// OnConsiderResponse correlates an asynchronous consider response back to
// the catalog. Responses for untracked entities are dropped; responses
// arriving after a batch timed out are still applied — harmless for later
// decisions.
func (c *Controller) OnConsiderResponse(entityID uint16, faction, conLevel uint32, curHP, maxHP int32) {
	color, known := model.ColorForConLevel(conLevel)
	if !known {
		slog.Warn("unknown con level in consider response",
			"conLevel", conLevel, "entityID", entityID)
	}
	data := &model.ConsiderData{
		Faction:  faction,
		ConLevel: conLevel,
		CurHP:    curHP,
		MaxHP:    maxHP,
	}

	if target, tracked := c.catalog.Get(entityID); tracked {
		target.Consider = data
		target.ConColor = color
		target.LastConsidered = c.clock()

		if IsDebugEnabled() {
			slog.Debug("consider data stored",
				"name", target.Name,
				"entityID", entityID,
				"con", color,
				"faction", faction)
		}
	} else if IsDebugEnabled() {
		slog.Debug("consider response for entity outside the catalog",
			"entityID", entityID)
	}

	// The mirrored current target is refreshed even when the entity is not
	// cataloged; a manual consider has a target set but no hunt entry.
	if c.current.EntityID == entityID && c.current.IsSet() {
		c.current.Consider = data
	}

	wasPending, drained := c.considers.Resolve(entityID)
	if !wasPending {
		// Correlation miss — late or unsolicited response. Already
		// applied above if tracked.
		return
	}
	if drained && c.state == model.StateHunting && !c.HasTarget() && c.autoHuntingOn {
		// Skip the throttle so the next tick acts on the fresh data.
		c.lastHuntUpdate = c.clock().Add(-huntUpdateInterval)
		if IsDebugEnabled() {
			slog.Debug("consider batch complete, hunt update forced")
		}
	}
}

// shouldRest reports whether vitals dropped below the rest thresholds.
func (c *Controller) shouldRest() bool {
	return c.vitals.HPPercent < c.settings.RestHPThreshold ||
		c.vitals.ManaPercent < c.settings.RestManaThreshold
}

// startResting sits the character down and stops movement.
func (c *Controller) startResting() {
	c.setState(model.StateResting)
	c.lastRestCheck = c.clock()
	if c.mover != nil {
		c.mover.Stop()
	}
	c.sink.Sit()
	slog.Info("resting",
		"hp", c.vitals.HPPercent,
		"mana", c.vitals.ManaPercent)
}

// stopResting stands the character back up.
func (c *Controller) stopResting() {
	c.sink.Stand()
	slog.Info("resuming hunt")
}

// HuntCandidate is a diagnostic row produced by ListHuntTargets.
type HuntCandidate struct {
	Target   model.CandidateTarget
	Suitable bool
	Reason   string
}

// ListHuntTargets evaluates every in-range candidate against the hunt
// criteria and reports why each would or would not be engaged. Diagnostic
// surface for the host's command layer.
func (c *Controller) ListHuntTargets() []HuntCandidate {
	c.catalog.Merge(c.catalog.Scan(c.view, c.settings.HuntRadius))
	c.catalog.RefreshDistances(c.view)

	var out []HuntCandidate
	c.catalog.ForEach(func(t *model.CandidateTarget) bool {
		if t.Distance > c.settings.HuntRadius {
			return true
		}
		e, ok := c.view.Entity(t.EntityID)
		if !ok {
			return true
		}

		row := HuntCandidate{Target: *t}
		if !t.HasConsiderData() {
			row.Suitable = true
			row.Reason = "needs consider"
		} else if c.catalog.SuitableForHunt(t, e.RaceID) {
			row.Suitable = true
			row.Reason = fmt.Sprintf("con=%s faction=%d", t.ConColor, t.Consider.Faction)
		} else {
			row.Reason = fmt.Sprintf("rejected: con=%s faction=%d humanoid=%t",
				t.ConColor, t.Consider.Faction, model.IsHumanoidRace(e.RaceID))
		}
		out = append(out, row)
		return true
	})

	sort.Slice(out, func(i, j int) bool {
		return out[i].Target.Distance < out[j].Target.Distance
	})
	return out
}
