package model

import "testing"

func TestColorForConLevel_KnownValues(t *testing.T) {
	cases := []struct {
		level uint32
		want  ConsiderColor
	}{
		{2, ConGreen},
		{4, ConBlue},
		{6, ConGray},
		{10, ConLightBlue},
		{13, ConRed},
		{15, ConYellow},
		{18, ConLightBlue},
		{20, ConWhite},
	}

	for _, tc := range cases {
		got, ok := ColorForConLevel(tc.level)
		if !ok {
			t.Errorf("ColorForConLevel(%d): expected known mapping", tc.level)
		}
		if got != tc.want {
			t.Errorf("ColorForConLevel(%d) = %v, want %v", tc.level, got, tc.want)
		}
	}
}

func TestColorForConLevel_UnknownDefaultsToWhite(t *testing.T) {
	got, ok := ColorForConLevel(99)
	if ok {
		t.Error("level 99 should not be a known mapping")
	}
	if got != ConWhite {
		t.Errorf("unknown level should default to WHITE, got %v", got)
	}
}

func TestIsHumanoidRace(t *testing.T) {
	// Playable races are humanoid
	for race := uint16(1); race <= 12; race++ {
		if !IsHumanoidRace(race) {
			t.Errorf("playable race %d should be humanoid", race)
		}
	}

	// Known humanoid NPC races
	for _, race := range []uint16{44, 77, 128, 161} {
		if !IsHumanoidRace(race) {
			t.Errorf("NPC race %d should be humanoid", race)
		}
	}

	// Gnolls (39), snakes (37) and other beasts are not
	for _, race := range []uint16{37, 39, 42, 50} {
		if IsHumanoidRace(race) {
			t.Errorf("race %d should not be humanoid", race)
		}
	}
}

func TestConsiderColorString(t *testing.T) {
	if ConLightBlue.String() != "LIGHT_BLUE" {
		t.Errorf("unexpected string: %s", ConLightBlue)
	}
	if ConsiderColor(200).String() != "UNKNOWN" {
		t.Error("out-of-range color should stringify as UNKNOWN")
	}
}
