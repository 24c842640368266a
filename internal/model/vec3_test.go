package model

import (
	"math"
	"testing"
)

func TestVec3Distance(t *testing.T) {
	a := NewVec3(0, 0, 0)
	b := NewVec3(3, 4, 0)

	if d := a.Distance(b); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
	if d := a.DistanceSquared(b); d != 25 {
		t.Errorf("DistanceSquared = %v, want 25", d)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(10, 0, 0).Normalize()
	if v.X != 1 || v.Y != 0 || v.Z != 0 {
		t.Errorf("Normalize = %+v, want unit X", v)
	}

	// Zero vector stays zero instead of producing NaN
	z := NewVec3(0, 0, 0).Normalize()
	if math.IsNaN(float64(z.X)) {
		t.Error("Normalize of zero vector produced NaN")
	}
}

func TestVec3FleeVector(t *testing.T) {
	// Flee destination: 100 units directly away from the threat.
	me := NewVec3(10, 10, 0)
	threat := NewVec3(20, 10, 0)

	dest := me.Add(me.Sub(threat).Normalize().Scale(100))
	if dest.X != -90 || dest.Y != 10 {
		t.Errorf("flee destination = %+v, want (-90, 10, 0)", dest)
	}
}
