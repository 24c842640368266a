package combat

import (
	"log/slog"
	"time"

	"github.com/eqforge/hunter/internal/model"
)

// shouldFlee reports whether HP dropped below the flee threshold.
func (c *Controller) shouldFlee() bool {
	return c.vitals.HPPercent < c.settings.FleeHPThreshold
}

// initiateFlee abandons combat and runs away from the current target.
func (c *Controller) initiateFlee(now time.Time) {
	c.setState(model.StateFleeing)
	c.fleeStart = now
	c.DisableAutoAttack()
	c.selectFleePath()

	slog.Info("fleeing combat", "hp", c.vitals.HPPercent)
}

// selectFleePath moves directly away from the current target. The
// navigation collaborator owns the actual path; this only picks the
// direction.
func (c *Controller) selectFleePath() {
	if !c.HasTarget() || c.mover == nil {
		return
	}

	e, ok := c.view.Entity(c.current.EntityID)
	if !ok {
		return
	}

	self := c.view.Self()
	away := self.Position.Sub(e.Position).Normalize()
	dest := self.Position.Add(away.Scale(fleeDistance))
	c.mover.MoveTo(dest)
}

// FleeToGuard runs toward the nearest zone guard, falling back to a plain
// flee vector when none is in sight.
func (c *Controller) FleeToGuard() {
	guard, ok := c.nearestGuard()
	if !ok {
		c.selectFleePath()
		return
	}

	c.setState(model.StateSeekingGuard)
	if c.mover != nil {
		c.mover.MoveTo(guard.Position)
	}

	slog.Info("fleeing to guard", "guard", guard.Name)
}

// nearestGuard finds the closest guard NPC by name heuristic.
func (c *Controller) nearestGuard() (model.EntitySnapshot, bool) {
	self := c.view.Self()

	var nearest model.EntitySnapshot
	var nearestDist float32
	found := false

	c.view.ForEachEntity(func(e model.EntitySnapshot) bool {
		if e.IsCorpse || !DefaultGuardNames(e.Name) {
			return true
		}
		d := self.Position.Distance(e.Position)
		if !found || d < nearestDist {
			nearest = e
			nearestDist = d
			found = true
		}
		return true
	})

	return nearest, found
}
