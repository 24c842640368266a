package combat

import (
	"log/slog"
	"strings"
	"time"

	"github.com/eqforge/hunter/internal/model"
)

// Tick cadences and behavior deadlines. All waits are wall-clock
// deadlines compared against the injected clock on subsequent ticks —
// nothing inside the controller sleeps or blocks.
const (
	scanInterval       = time.Second
	huntUpdateInterval = 500 * time.Millisecond
	restCheckInterval  = 2 * time.Second
	fleeMaxDuration    = 30 * time.Second
	postCombatDelay    = 3 * time.Second
	fleeRecoverMargin  = 10.0
	fleeDistance       = 100.0
	restResumeHP       = 90.0
	restResumeMana     = 80.0
	corpseSearchRange  = 30.0
	corpseSpawnWait    = 500 * time.Millisecond
	corpseSearchWindow = 3 * time.Second
	corpseLootApproach = 10.0
)

// Controller is the combat/hunting behavior state machine. One instance
// owns all catalog, target and behavior state for a single character —
// create one per controlled character. Single-threaded: Tick and every
// inbound push must be invoked from the host's update loop.
type Controller struct {
	settings Settings

	view  WorldView
	sink  CommandSink
	mover Mover
	clock Clock

	enabled bool
	state   model.BehaviorState
	vitals  model.CombatVitals
	current model.CurrentTarget

	catalog   *TargetCatalog
	considers *ConsiderTracker

	// killHook, when set, fires once per confirmed target death.
	killHook func(e model.EntitySnapshot, con *model.ConsiderData)

	autoAttackOn   bool
	autoFireOn     bool
	autoMovementOn bool
	autoHuntingOn  bool

	loot       *model.LootSession
	lootCursor int
	nextLootAt time.Time
	lootOpenBy time.Time
	lootWindow bool

	casting        bool
	currentSpellID uint32
	spellTargetID  uint16
	castDoneAt     time.Time
	spellGems      [model.MaxSpellGems]uint32
	memorized      []model.SpellInfo

	corpseSearchName  string
	corpseSearchAfter time.Time
	corpseSearchUntil time.Time

	lastScan       time.Time
	lastAttack     time.Time
	fleeStart      time.Time
	lastHuntUpdate time.Time
	lastRestCheck  time.Time
	combatEnd      time.Time
}

// NewController creates a disabled controller bound to its collaborators.
// mover may be nil; auto-hunting and combat movement then stay unavailable.
func NewController(view WorldView, sink CommandSink, mover Mover) *Controller {
	return &Controller{
		settings:  DefaultSettings(),
		view:      view,
		sink:      sink,
		mover:     mover,
		clock:     time.Now,
		state:     model.StateIdle,
		vitals:    model.FullVitals(),
		catalog:   NewTargetCatalog(),
		considers: NewConsiderTracker(),
	}
}

// SetClock replaces the controller's clock. For tests.
func (c *Controller) SetClock(clock Clock) {
	if clock != nil {
		c.clock = clock
	}
}

// SetKillHook installs a callback invoked after each confirmed target
// death, with whatever consider data was known for the victim. Must not
// call back into the controller.
func (c *Controller) SetKillHook(hook func(e model.EntitySnapshot, con *model.ConsiderData)) {
	c.killHook = hook
}

// Settings returns the mutable runtime configuration.
func (c *Controller) Settings() *Settings {
	return &c.settings
}

// Catalog exposes the target catalog for diagnostics.
func (c *Controller) Catalog() *TargetCatalog {
	return c.catalog
}

// State returns the current behavior state.
func (c *Controller) State() model.BehaviorState {
	return c.state
}

// Target returns the mirrored current target.
func (c *Controller) Target() model.CurrentTarget {
	return c.current
}

// HasTarget reports whether a target is set on the wire.
func (c *Controller) HasTarget() bool {
	return c.current.IsSet()
}

// Vitals returns the last pushed vitals.
func (c *Controller) Vitals() model.CombatVitals {
	return c.vitals
}

// Enabled reports whether the controller is active.
func (c *Controller) Enabled() bool {
	return c.enabled
}

// AutoHunting reports whether the autonomous hunt cycle is on.
func (c *Controller) AutoHunting() bool {
	return c.autoHuntingOn
}

// Enable activates the controller.
func (c *Controller) Enable() {
	if !c.enabled {
		c.enabled = true
		slog.Info("combat controller enabled")
	}
}

// Disable deactivates the controller and aborts whatever it was doing.
// Callable from any state: auto-attack, auto-movement and hunting are
// cleared synchronously and the state forced to Idle. The auto-attack-off
// command is emitted even when not currently engaged.
func (c *Controller) Disable() {
	if !c.enabled {
		return
	}
	c.enabled = false
	c.DisableAutoAttack()
	if c.autoFireOn {
		c.DisableAutoFire()
	}
	c.DisableAutoMovement()
	c.stopAutoHunting()

	// Drop any in-flight loot session so a later re-enable starts clean.
	c.loot = nil
	c.lootWindow = false
	c.lootCursor = 0
	c.corpseSearchName = ""

	c.setState(model.StateIdle)
	slog.Info("combat controller disabled")
}

// Tick advances the controller by one scheduler step. Never blocks; any
// sub-step failure is logged and the machine keeps ticking.
func (c *Controller) Tick() {
	if !c.enabled {
		return
	}
	defer func() {
		// Collaborator callbacks run inside the tick; a panic there must
		// not take down the host loop.
		if r := recover(); r != nil {
			slog.Error("combat tick recovered", "panic", r, "state", c.state)
		}
	}()

	now := c.clock()

	if now.Sub(c.lastScan) >= scanInterval {
		c.scanForTargets()
		c.lastScan = now
	}

	c.advanceCasting(now)

	if c.autoHuntingOn {
		c.updateAutoHunting(now)
	}

	c.advanceCorpseSearch(now)
	c.advanceLooting(now)

	switch c.state {
	case model.StateIdle:
		c.checkForAggro()

	case model.StateEngaged:
		c.processCombatRound(now)
		if c.shouldFlee() {
			c.initiateFlee(now)
		}

	case model.StateFleeing:
		if c.vitals.HPPercent > c.settings.FleeHPThreshold+fleeRecoverMargin ||
			now.Sub(c.fleeStart) > fleeMaxDuration {
			c.setState(model.StateIdle)
		}

	case model.StateLooting:
		// Loot pacing handled by advanceLooting.

	case model.StateHunting:
		// Hunting is driven by updateAutoHunting.

	case model.StateResting:
		if now.Sub(c.lastRestCheck) >= restCheckInterval {
			if c.vitals.HPPercent >= restResumeHP && c.vitals.ManaPercent >= restResumeMana {
				c.stopResting()
				c.setState(model.StateHunting)
			}
			c.lastRestCheck = now
		}

	case model.StateSeekingGuard:
		// Movement toward the guard is owned by the Mover.
	}
}

// setState transitions the behavior state, running entry side effects.
func (c *Controller) setState(state model.BehaviorState) {
	if c.state == state {
		return
	}
	old := c.state
	c.state = state

	if IsDebugEnabled() {
		slog.Debug("combat state changed", "from", old, "to", state)
	}

	if state == model.StateIdle {
		c.combatEnd = c.clock()
	}
}

// UpdateVitals stores freshly pushed character vitals.
func (c *Controller) UpdateVitals(v model.CombatVitals) {
	c.vitals = v
}

// SetTarget targets an entity by id. Emits exactly one set-target command
// on success.
func (c *Controller) SetTarget(entityID uint16) bool {
	e, ok := c.view.Entity(entityID)
	if !ok {
		return false
	}

	c.current = model.CurrentTarget{
		EntityID:  entityID,
		Name:      e.Name,
		HPPercent: e.HPPercent,
	}
	if t, tracked := c.catalog.Get(entityID); tracked {
		c.current.Consider = t.Consider
	}

	c.sink.SetTarget(entityID)

	if IsDebugEnabled() {
		slog.Debug("target set", "name", e.Name, "entityID", entityID)
	}
	return true
}

// SetTargetByName targets an entity by exact name, falling back to
// substring match.
func (c *Controller) SetTargetByName(name string) bool {
	var exact, partial uint16
	c.view.ForEachEntity(func(e model.EntitySnapshot) bool {
		if e.Name == name {
			exact = e.ID
			return false
		}
		if partial == 0 && strings.Contains(e.Name, name) {
			partial = e.ID
		}
		return true
	})

	if exact != 0 {
		return c.SetTarget(exact)
	}
	if partial != 0 {
		return c.SetTarget(partial)
	}
	return false
}

// ClearTarget drops the current target. Edge-triggered: emits the
// clear-target command only when a target was actually set, so repeated
// calls are no-ops on the wire.
func (c *Controller) ClearTarget() {
	if !c.current.IsSet() {
		return
	}
	c.current = model.CurrentTarget{}
	c.sink.ClearTarget()
}

// ConsiderCurrentTarget issues a consider request scoped to the current
// target.
func (c *Controller) ConsiderCurrentTarget() {
	if !c.HasTarget() {
		return
	}
	c.sink.Consider(c.current.EntityID)

	if IsDebugEnabled() {
		slog.Debug("consider request sent", "targetID", c.current.EntityID)
	}
}

// EnableAutoAttack turns melee auto-attack on. Requires a target.
func (c *Controller) EnableAutoAttack() {
	if !c.HasTarget() {
		if IsDebugEnabled() {
			slog.Debug("auto-attack not enabled: no target")
		}
		return
	}
	c.autoAttackOn = true
	c.setState(model.StateEngaged)
	c.sink.AutoAttack(true)
}

// DisableAutoAttack turns melee auto-attack off. Always emits the off
// command so an external disable leaves the wire state consistent.
func (c *Controller) DisableAutoAttack() {
	c.autoAttackOn = false
	if c.state == model.StateEngaged {
		c.setState(model.StateIdle)
	}
	c.sink.AutoAttack(false)
}

// EnableAutoFire turns ranged auto-fire on, dropping melee auto-attack
// first — the two are mutually exclusive on the wire.
func (c *Controller) EnableAutoFire() {
	if !c.HasTarget() {
		return
	}
	if c.autoAttackOn {
		c.DisableAutoAttack()
	}
	c.autoFireOn = true
	c.setState(model.StateEngaged)
	c.sink.AutoFire(true)
}

// DisableAutoFire turns ranged auto-fire off.
func (c *Controller) DisableAutoFire() {
	c.autoFireOn = false
	if c.state == model.StateEngaged && !c.autoAttackOn {
		c.setState(model.StateIdle)
	}
	c.sink.AutoFire(false)
}

// ToggleAutoFire flips auto-fire.
func (c *Controller) ToggleAutoFire() {
	if c.autoFireOn {
		c.DisableAutoFire()
	} else {
		c.EnableAutoFire()
	}
}

// EnableAutoMovement allows the controller to request combat movement.
func (c *Controller) EnableAutoMovement() {
	c.autoMovementOn = true
}

// DisableAutoMovement stops the controller from requesting movement and
// cancels any in-flight request.
func (c *Controller) DisableAutoMovement() {
	c.autoMovementOn = false
	if c.mover != nil {
		c.mover.Stop()
	}
}

// processCombatRound runs one engaged-state step: range check, movement,
// facing and attack pacing. The actual swing is server-authoritative; the
// controller only paces intent.
func (c *Controller) processCombatRound(now time.Time) {
	if !c.HasTarget() || (!c.autoAttackOn && !c.autoFireOn) {
		return
	}

	e, ok := c.view.Entity(c.current.EntityID)
	if !ok {
		// Target vanished between snapshots — stale data, drop silently.
		if IsDebugEnabled() {
			slog.Debug("target disappeared from snapshot", "entityID", c.current.EntityID)
		}
		c.catalog.Remove(c.current.EntityID)
		c.ClearTarget()
		c.DisableAutoAttack()
		if c.autoFireOn {
			c.DisableAutoFire()
		}
		return
	}

	c.current.HPPercent = e.HPPercent

	self := c.view.Self()
	distance := self.Position.Distance(e.Position)
	reach := MeleeRange(self.Size, e.Size, e.RaceID)

	if distance > reach {
		if c.autoMovementOn && c.mover != nil {
			c.mover.MoveToEntity(e.ID, StopDistance(reach))
		}
	} else {
		c.sink.FaceEntity(e.ID)

		if now.Sub(c.lastAttack) >= c.settings.AttackDelay {
			// Attack timer consumed; the server resolves the swing.
			c.lastAttack = now
		}
	}

	if e.HPPercent <= 0 {
		c.handleTargetDeath(now, e)
	}
}

// handleTargetDeath clears combat state and, when auto-looting during a
// hunt, schedules a corpse search. The server needs a moment to spawn the
// corpse, so the search begins after a short deadline rather than
// immediately.
func (c *Controller) handleTargetDeath(now time.Time, e model.EntitySnapshot) {
	if IsDebugEnabled() {
		slog.Debug("target died", "name", e.Name, "entityID", e.ID)
	}

	var con *model.ConsiderData
	if t, ok := c.catalog.Get(e.ID); ok {
		con = t.Consider
	}
	c.catalog.Remove(e.ID)
	c.ClearTarget()
	c.DisableAutoAttack()
	if c.autoFireOn {
		c.DisableAutoFire()
	}

	if c.killHook != nil {
		c.killHook(e, con)
	}

	if c.settings.AutoLoot && c.autoHuntingOn {
		c.combatEnd = now
		// The dying mob is renamed to its corpse name by the server.
		c.corpseSearchName = e.Name
		c.corpseSearchAfter = now.Add(corpseSpawnWait)
		c.corpseSearchUntil = now.Add(corpseSearchWindow)
	}

	c.setState(model.StateIdle)
}

// checkForAggro engages the first catalog entry flagged as aggro inside
// the aggro radius.
func (c *Controller) checkForAggro() {
	var aggressor *model.CandidateTarget
	c.catalog.ForEach(func(t *model.CandidateTarget) bool {
		if t.IsAggro && t.Distance <= c.settings.AggroRadius {
			aggressor = t
			return false
		}
		return true
	})
	if aggressor == nil {
		return
	}

	if c.SetTarget(aggressor.EntityID) {
		c.EnableAutoAttack()
	}
}

// NotifyAggro marks a tracked entity as actively hostile toward the
// character. Pushed by the host when it decodes an incoming attack.
func (c *Controller) NotifyAggro(entityID uint16) {
	if t, ok := c.catalog.Get(entityID); ok {
		t.IsAggro = true
		return
	}
	// Not yet cataloged — pull it from the snapshot so the next idle
	// tick can respond.
	e, ok := c.view.Entity(entityID)
	if !ok {
		return
	}
	self := c.view.Self()
	c.catalog.Merge([]model.CandidateTarget{{
		EntityID:  entityID,
		Name:      e.Name,
		Distance:  self.Position.Distance(e.Position),
		HPPercent: e.HPPercent,
		ConColor:  model.ConWhite,
	}})
	if t, ok := c.catalog.Get(entityID); ok {
		t.IsAggro = true
	}
}

// scanForTargets refreshes the catalog from the world snapshot at the
// scan cadence. Outside an active hunt the catalog is rebuilt from
// scratch; during a hunt entries persist so consider data survives.
func (c *Controller) scanForTargets() {
	// Aggro flags survive a rebuild so a pushed attack is not lost to an
	// unluckily timed scan.
	var aggro []uint16
	if !c.autoHuntingOn || c.state == model.StateIdle {
		c.catalog.ForEach(func(t *model.CandidateTarget) bool {
			if t.IsAggro {
				aggro = append(aggro, t.EntityID)
			}
			return true
		})
		c.catalog.Clear()
	}

	batch := c.catalog.Scan(c.view, c.settings.AggroRadius)
	c.catalog.Merge(batch)
	for _, id := range aggro {
		if t, ok := c.catalog.Get(id); ok {
			t.IsAggro = true
		}
	}

	if IsDebugEnabled() {
		slog.Debug("target scan complete",
			"found", len(batch),
			"tracked", c.catalog.Len(),
			"state", c.state)
	}
}

// NearbyAllies returns player-class entities within range, nearest first.
func (c *Controller) NearbyAllies(radius float32) []model.CandidateTarget {
	self := c.view.Self()

	var allies []model.CandidateTarget
	c.view.ForEachEntity(func(e model.EntitySnapshot) bool {
		if e.ID == self.ID || !e.IsPlayerClass() || e.IsCorpse {
			return true
		}
		distance := self.Position.Distance(e.Position)
		if distance > radius {
			return true
		}
		allies = append(allies, model.CandidateTarget{
			EntityID:  e.ID,
			Name:      e.Name,
			Distance:  distance,
			HPPercent: e.HPPercent,
			ConColor:  model.ConGreen,
		})
		return true
	})

	SortForEngage(allies)
	return allies
}
