package combat

import "time"

// Settings is the runtime-mutable configuration surface of the controller.
// Nothing here is persisted. Mutation is only legal from the tick
// goroutine — the controller reads these fields on every tick.
type Settings struct {
	AssistRange       float32
	AggroRadius       float32
	CombatRange       float32
	SpellRange        float32
	FleeHPThreshold   float32
	HuntRadius        float32
	RestHPThreshold   float32
	RestManaThreshold float32
	AutoLoot          bool
	AttackDelay       time.Duration
}

// DefaultSettings returns the stock tuning.
func DefaultSettings() Settings {
	return Settings{
		AssistRange:       50,
		AggroRadius:       30,
		CombatRange:       5,
		SpellRange:        200,
		FleeHPThreshold:   20,
		HuntRadius:        300,
		RestHPThreshold:   50,
		RestManaThreshold: 30,
		AutoLoot:          true,
		AttackDelay:       2 * time.Second,
	}
}
