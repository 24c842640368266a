package combat

import "github.com/eqforge/hunter/internal/model"

// Melee range formula constants, approximating the live game's
// size-dependent reach. Character size is typically 6.0 for medium races;
// mob sizes run from 1.0 up past 250 for raid bosses.
const (
	meleeRangeBase     = 14.0
	mySizeScale        = 0.25
	targetSizeScale    = 0.13
	minSizeFactor      = 1.5
	smallTargetCutoff  = 10.0
	dragonReachScale   = 1.5
	giantReachScale    = 1.3
	minMeleeRange      = 5.0
	maxMeleeRange      = 75.0
	meleeRangeMargin   = 0.5
	stopDistanceFactor = 0.8
)

// defaultCharacterSize is assumed when the snapshot reports size 0.
const defaultCharacterSize = 6.0

// MeleeRange returns the effective melee reach against a target of the
// given size and race. The computed reach is halved so the attacker stands
// well inside the server's range check rather than right on its edge —
// "just out of range" misses cost more than the lost reach.
func MeleeRange(mySize, targetSize float32, targetRace uint16) float32 {
	if mySize == 0 {
		mySize = defaultCharacterSize
	}

	myFactor := mySize * mySizeScale
	if myFactor < minSizeFactor {
		myFactor = minSizeFactor
	}

	targetFactor := targetSize * targetSizeScale
	if targetFactor < minSizeFactor && targetSize < smallTargetCutoff {
		targetFactor = minSizeFactor
	}

	switch {
	case targetRace >= model.RaceDragonFirst && targetRace <= model.RaceDragonLast:
		targetFactor *= dragonReachScale
	case targetRace >= model.RaceGiantFirst && targetRace <= model.RaceGiantLast:
		targetFactor *= giantReachScale
	}

	r := meleeRangeBase + myFactor + targetFactor
	if r < minMeleeRange {
		r = minMeleeRange
	}
	if r > maxMeleeRange {
		r = maxMeleeRange
	}

	return r * meleeRangeMargin
}

// StopDistance returns the movement stop distance for a given melee range.
func StopDistance(meleeRange float32) float32 {
	return meleeRange * stopDistanceFactor
}
