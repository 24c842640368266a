package combat

import (
	"sort"
	"strings"

	"github.com/eqforge/hunter/internal/model"
)

// NamePredicate classifies an entity by name. The corpse/guard checks are
// acknowledged heuristics — Titanium does not expose faction class for
// these NPCs, so matching on name substrings is the only signal available.
// Pluggable so a faction-aware implementation can replace them without
// touching the state machine.
type NamePredicate func(name string) bool

// DefaultAvoidNames skips guard, merchant and banker NPCs by substring.
func DefaultAvoidNames(name string) bool {
	return strings.Contains(name, "Guard") ||
		strings.Contains(name, "Merchant") ||
		strings.Contains(name, "Banker")
}

// DefaultCorpseNames detects corpse spawns by name. The server renames a
// dying mob to ...'s corpse (apostrophe or backtick depending on build).
func DefaultCorpseNames(name string) bool {
	return strings.Contains(name, "corpse")
}

// DefaultGuardNames detects zone guards for the flee-to-guard path.
func DefaultGuardNames(name string) bool {
	return strings.Contains(name, "Guard") || strings.Contains(name, "Sentinel")
}

// PriorityFunc scores a candidate. Higher is more attractive; ties break
// by distance in SortForEngage.
type PriorityFunc func(distance, hpPercent float32) float32

// DefaultPriority is a flat heuristic: a base score plus inverse distance
// plus inverse health (wounded mobs die faster).
func DefaultPriority(distance, hpPercent float32) float32 {
	const base = 50.0
	return base + (100 - distance) + (100 - hpPercent)
}

// TargetCatalog holds the candidate targets discovered by periodic scans.
// At most one entry exists per entity id. Not safe for concurrent use —
// the controller is the sole writer.
type TargetCatalog struct {
	targets map[uint16]*model.CandidateTarget

	avoidName  NamePredicate
	corpseName NamePredicate
	priority   PriorityFunc
}

// NewTargetCatalog creates an empty catalog with the default name
// heuristics and priority scoring.
func NewTargetCatalog() *TargetCatalog {
	return &TargetCatalog{
		targets:    make(map[uint16]*model.CandidateTarget),
		avoidName:  DefaultAvoidNames,
		corpseName: DefaultCorpseNames,
		priority:   DefaultPriority,
	}
}

// SetAvoidPredicate replaces the avoid-by-name heuristic.
func (c *TargetCatalog) SetAvoidPredicate(p NamePredicate) {
	if p != nil {
		c.avoidName = p
	}
}

// SetPriorityFunc replaces the candidate scoring function.
func (c *TargetCatalog) SetPriorityFunc(p PriorityFunc) {
	if p != nil {
		c.priority = p
	}
}

// Scan reads the world view and returns all hostility-eligible entities
// within radius of the controlled character. The catalog itself is not
// mutated; pass the result to Merge.
func (c *TargetCatalog) Scan(view WorldView, radius float32) []model.CandidateTarget {
	self := view.Self()

	var found []model.CandidateTarget
	view.ForEachEntity(func(e model.EntitySnapshot) bool {
		if e.ID == self.ID {
			return true
		}
		if !c.eligible(e) {
			return true
		}

		distance := self.Position.Distance(e.Position)
		if distance > radius {
			return true
		}

		found = append(found, model.CandidateTarget{
			EntityID:  e.ID,
			Name:      e.Name,
			Distance:  distance,
			HPPercent: e.HPPercent,
			ConColor:  model.ConWhite,
			Priority:  c.priority(distance, e.HPPercent),
		})
		return true
	})

	return found
}

// eligible applies the hostility filter: NPC mobs only — no players, no
// corpses, no avoid-listed NPCs.
func (c *TargetCatalog) eligible(e model.EntitySnapshot) bool {
	if !e.IsNPC() {
		return false
	}
	if e.IsCorpse || c.corpseName(e.Name) {
		return false
	}
	if c.avoidName(e.Name) {
		return false
	}
	// Player heuristic: playable race and class but a name without the
	// generic mob article prefix.
	if e.RaceID >= 1 && e.RaceID <= 12 && e.IsPlayerClass() {
		if !strings.HasPrefix(e.Name, "a_") && !strings.HasPrefix(e.Name, "an_") {
			return false
		}
	}
	return true
}

// Merge upserts scanned candidates by entity id. Existing entries keep
// their consider data; only distance, HP and priority are refreshed.
func (c *TargetCatalog) Merge(batch []model.CandidateTarget) {
	for i := range batch {
		nt := batch[i]
		if existing, ok := c.targets[nt.EntityID]; ok {
			existing.Distance = nt.Distance
			existing.HPPercent = nt.HPPercent
			existing.Priority = c.priority(nt.Distance, nt.HPPercent)
			continue
		}
		entry := nt
		c.targets[nt.EntityID] = &entry
	}
}

// Get returns the catalog entry for an entity id.
func (c *TargetCatalog) Get(entityID uint16) (*model.CandidateTarget, bool) {
	t, ok := c.targets[entityID]
	return t, ok
}

// Remove drops an entity from the catalog.
func (c *TargetCatalog) Remove(entityID uint16) {
	delete(c.targets, entityID)
}

// Clear drops all entries.
func (c *TargetCatalog) Clear() {
	clear(c.targets)
}

// Len returns the number of tracked candidates.
func (c *TargetCatalog) Len() int {
	return len(c.targets)
}

// ForEach iterates the catalog entries. Return false to stop.
func (c *TargetCatalog) ForEach(fn func(*model.CandidateTarget) bool) {
	for _, t := range c.targets {
		if !fn(t) {
			return
		}
	}
}

// RefreshDistances recomputes candidate distances from the current view.
// Entities missing from the view keep their last known distance — stale
// entries are pruned by the next scan, not here.
func (c *TargetCatalog) RefreshDistances(view WorldView) {
	self := view.Self()
	for _, t := range c.targets {
		if e, ok := view.Entity(t.EntityID); ok {
			t.Distance = self.Position.Distance(e.Position)
			t.HPPercent = e.HPPercent
		}
	}
}

// SuitableForHunt applies the hunt suitability predicate:
//   - no consider data yet → true (needs evaluation)
//   - con color must be White, Blue or LightBlue
//   - faction must sit in the indifferent..scowls band [5, 9]
//   - threatening/scowling mobs are fair game regardless of race
//   - otherwise only non-humanoid races, to avoid provoking humanoid
//     factions that are not already hostile
func (c *TargetCatalog) SuitableForHunt(t *model.CandidateTarget, raceID uint16) bool {
	if !t.HasConsiderData() {
		return true
	}

	switch t.ConColor {
	case model.ConWhite, model.ConBlue, model.ConLightBlue:
	default:
		return false
	}

	faction := t.Consider.Faction
	if faction < model.FactionIndifferent || faction > model.FactionScowls {
		return false
	}

	if faction >= model.FactionThreatening {
		return true
	}

	return !model.IsHumanoidRace(raceID)
}

// Partition splits in-range candidates into those still needing a consider
// exchange and those ready to engage, both sorted by distance ascending.
func (c *TargetCatalog) Partition(view WorldView, radius float32) (needsConsider, ready []model.CandidateTarget) {
	for _, t := range c.targets {
		if t.Distance > radius {
			continue
		}
		e, ok := view.Entity(t.EntityID)
		if !ok {
			continue
		}

		if !t.HasConsiderData() {
			needsConsider = append(needsConsider, *t)
			continue
		}
		if c.SuitableForHunt(t, e.RaceID) {
			ready = append(ready, *t)
		}
	}

	byDistance := func(list []model.CandidateTarget) {
		sort.Slice(list, func(i, j int) bool {
			return list[i].Distance < list[j].Distance
		})
	}
	byDistance(needsConsider)
	byDistance(ready)

	return needsConsider, ready
}

// SortForEngage orders candidates by priority descending, then distance
// ascending.
func SortForEngage(list []model.CandidateTarget) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Priority != list[j].Priority {
			return list[i].Priority > list[j].Priority
		}
		return list[i].Distance < list[j].Distance
	})
}
