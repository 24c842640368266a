package model

// BehaviorState is the combat controller's behavior state.
// Exactly one is active at a time; transitions go through the
// controller's setter so entry/exit side effects always run.
type BehaviorState int32

const (
	// StateIdle - no combat activity
	StateIdle BehaviorState = iota
	// StateEngaged - auto-attacking the current target
	StateEngaged
	// StateFleeing - running away from the current target
	StateFleeing
	// StateLooting - a loot window is open on a corpse
	StateLooting
	// StateHunting - autonomously looking for the next target
	StateHunting
	// StateResting - sitting until HP/mana recover
	StateResting
	// StateSeekingGuard - fleeing toward a zone guard
	StateSeekingGuard
)

// String returns human-readable state name.
func (s BehaviorState) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateEngaged:
		return "ENGAGED"
	case StateFleeing:
		return "FLEEING"
	case StateLooting:
		return "LOOTING"
	case StateHunting:
		return "HUNTING"
	case StateResting:
		return "RESTING"
	case StateSeekingGuard:
		return "SEEKING_GUARD"
	default:
		return "UNKNOWN"
	}
}
