package combat

import (
	"math"
	"testing"
)

func TestMeleeRange(t *testing.T) {
	tests := []struct {
		name       string
		mySize     float32
		targetSize float32
		targetRace uint16
		want       float32
	}{
		{"medium vs small mob", 6, 5, 39, 8.5},
		{"small target factor floored", 6, 1, 36, 8.5},
		{"large target no floor", 6, 20, 0, 9.05},
		{"dragon reach bonus", 6, 100, 50, 17.5},
		{"giant reach bonus", 6, 20, 18, 9.44},
		{"clamped at max", 6, 400, 49, 37.5},
		{"zero my size uses default", 0, 5, 39, 8.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MeleeRange(tt.mySize, tt.targetSize, tt.targetRace)
			if math.Abs(float64(got-tt.want)) > 0.01 {
				t.Errorf("MeleeRange(%v, %v, %d) = %v, want %v",
					tt.mySize, tt.targetSize, tt.targetRace, got, tt.want)
			}
		})
	}
}

func TestStopDistance(t *testing.T) {
	if got := StopDistance(10); got != 8 {
		t.Errorf("StopDistance(10) = %v, want 8", got)
	}
}
