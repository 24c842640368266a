package model

import "time"

// CandidateTarget is a catalog entry for an entity that passed the
// hostility filter during a scan. Distance and HP are refreshed on every
// scan; Consider is written once when the correlated response arrives.
type CandidateTarget struct {
	EntityID       uint16
	Name           string
	Distance       float32
	HPPercent      float32
	ConColor       ConsiderColor
	Priority       float32
	IsAggro        bool
	Consider       *ConsiderData
	LastConsidered time.Time
}

// HasConsiderData reports whether the entry has been enriched.
func (t *CandidateTarget) HasConsiderData() bool {
	return t.Consider != nil
}

// CurrentTarget mirrors the single entity currently targeted on the wire.
// EntityID 0 means no target is set.
type CurrentTarget struct {
	EntityID  uint16
	Name      string
	HPPercent float32
	Consider  *ConsiderData
}

// IsSet reports whether a target is currently held.
func (t CurrentTarget) IsSet() bool {
	return t.EntityID != 0
}
