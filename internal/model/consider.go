package model

// ConsiderColor is the relative-difficulty indicator revealed by a
// consider exchange.
type ConsiderColor uint8

const (
	ConGreen ConsiderColor = iota
	ConLightBlue
	ConBlue
	ConWhite
	ConYellow
	ConRed
	ConGray
)

// String returns human-readable color name.
func (c ConsiderColor) String() string {
	switch c {
	case ConGreen:
		return "GREEN"
	case ConLightBlue:
		return "LIGHT_BLUE"
	case ConBlue:
		return "BLUE"
	case ConWhite:
		return "WHITE"
	case ConYellow:
		return "YELLOW"
	case ConRed:
		return "RED"
	case ConGray:
		return "GRAY"
	default:
		return "UNKNOWN"
	}
}

// conLevelColors maps the raw con level from the server's consider response
// to a color. Values observed from Titanium-era captures. 10 doubles as
// White on some server builds and 18 appears to be an alternative LightBlue;
// both stay as captured — do not extend this table without a confirmed
// capture.
var conLevelColors = map[uint32]ConsiderColor{
	2:  ConGreen,
	4:  ConBlue,
	6:  ConGray,
	10: ConLightBlue,
	13: ConRed,
	15: ConYellow,
	18: ConLightBlue,
	20: ConWhite,
}

// ColorForConLevel resolves a wire con level to a color.
// Unknown levels resolve to White with ok=false so the caller can log
// the anomaly.
func ColorForConLevel(level uint32) (color ConsiderColor, ok bool) {
	if c, found := conLevelColors[level]; found {
		return c, true
	}
	return ConWhite, false
}

// Faction standing values carried in the consider response.
const (
	FactionIndifferent  uint32 = 5
	FactionDubious      uint32 = 6
	FactionApprehensive uint32 = 7
	FactionThreatening  uint32 = 8
	FactionScowls       uint32 = 9
)

// ConsiderData is the server-provided enrichment for a candidate target.
type ConsiderData struct {
	Faction  uint32
	ConLevel uint32
	CurHP    int32
	MaxHP    int32
}

// humanoidRaces lists playable races plus NPC races that answer to humanoid
// factions. Hunting these while they are non-aggressive provokes their
// whole faction, so the suitability check avoids them.
var humanoidRaces = map[uint16]struct{}{
	1:   {}, // Human
	2:   {}, // Barbarian
	3:   {}, // Erudite
	4:   {}, // Wood Elf
	5:   {}, // High Elf
	6:   {}, // Dark Elf
	7:   {}, // Half Elf
	8:   {}, // Dwarf
	9:   {}, // Troll
	10:  {}, // Ogre
	11:  {}, // Halfling
	12:  {}, // Gnome
	44:  {}, // Dark Elf (NPC)
	55:  {}, // Freeport Guard
	71:  {}, // Human (NPC)
	77:  {}, // Skeleton
	78:  {}, // Ghoul
	81:  {}, // Qeynos Citizen
	82:  {}, // Erudin Citizen
	85:  {}, // Spectre
	106: {}, // Fiend
	110: {}, // Erudite Ghost
	111: {}, // Human Ghost
	112: {}, // Iksar Ghost
	117: {}, // Iksar Citizen
	118: {}, // Forest Giant
	120: {}, // Pirate
	122: {}, // Kerran
	123: {}, // Barbarian (NPC)
	124: {}, // Erudite (NPC)
	125: {}, // Troll (NPC)
	126: {}, // Ogre (NPC)
	127: {}, // Dwarf (NPC)
	128: {}, // Iksar
	137: {}, // Yeti
	139: {}, // Coldain
	140: {}, // Velious Dragon
	145: {}, // Zombie
	146: {}, // Mummy
	161: {}, // Iksar Skeleton
}

// IsHumanoidRace reports whether the race id belongs to the humanoid table.
func IsHumanoidRace(raceID uint16) bool {
	_, ok := humanoidRaces[raceID]
	return ok
}

// Race id bands with non-standard melee reach.
const (
	RaceGiantFirst  uint16 = 17
	RaceGiantLast   uint16 = 19
	RaceDragonFirst uint16 = 49
	RaceDragonLast  uint16 = 52
)
