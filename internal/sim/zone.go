// Package sim hosts a deterministic zone simulation used by huntsim and by
// end-to-end tests. It stands in for a live game server: it owns the mobs,
// answers consider requests with configurable latency, deals and receives
// melee damage, spawns corpses and drives the loot window flow.
package sim

import (
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/eqforge/hunter/internal/combat"
	"github.com/eqforge/hunter/internal/model"
	"github.com/eqforge/hunter/internal/world"
)

// MobSpec describes one spawn group.
type MobSpec struct {
	Name    string
	Level   uint8
	RaceID  uint16
	Faction uint32
	Size    float32
	Count   int
	// LootSlots is the number of item slots each corpse offers.
	LootSlots int
}

// Config tunes the zone.
type Config struct {
	Seed            int64
	ZoneRadius      float32
	WanderSpeed     float32
	PlayerSpeed     float32
	PlayerMaxHP     int32
	PlayerMaxMana   int32
	ConsiderLatency time.Duration
	// ConsiderLossRate in [0,1) drops that fraction of consider replies.
	ConsiderLossRate float64
	MobDamage        int32
	PlayerDamage     int32
	AttackRange      float32
	Specs            []MobSpec
}

// DefaultConfig is a small gnoll camp with a few guards and a merchant.
func DefaultConfig(seed int64) Config {
	return Config{
		Seed:            seed,
		ZoneRadius:      250,
		WanderSpeed:     2,
		PlayerSpeed:     12,
		PlayerMaxHP:     1000,
		PlayerMaxMana:   500,
		ConsiderLatency: 150 * time.Millisecond,
		MobDamage:       12,
		PlayerDamage:    60,
		AttackRange:     20,
		Specs: []MobSpec{
			{Name: "a_gnoll_pup", Level: 5, RaceID: 39, Faction: 8, Size: 5, Count: 6, LootSlots: 2},
			{Name: "a_gnoll_scout", Level: 8, RaceID: 39, Faction: 8, Size: 6, Count: 4, LootSlots: 3},
			{Name: "a_large_rat", Level: 6, RaceID: 36, Faction: 6, Size: 3, Count: 5, LootSlots: 1},
			{Name: "Guard_Hestin", Level: 40, RaceID: 1, Faction: 5, Size: 6, Count: 2},
			{Name: "Merchant_Rashka", Level: 30, RaceID: 6, Faction: 5, Size: 6, Count: 1},
		},
	}
}

type mob struct {
	snap      model.EntitySnapshot
	maxHP     int32
	curHP     int32
	home      model.Vec3
	heading   float32
	lootSlots int
	// target is the entity this mob is attacking, 0 when passive.
	target uint16
}

type considerReply struct {
	entityID uint16
	dueAt    time.Time
}

type lootOpen struct {
	corpseID uint16
	dueAt    time.Time
}

// Zone is the simulated world. It implements combat.CommandSink and
// combat.Mover so the controller's outputs feed straight back into it.
type Zone struct {
	cfg  Config
	rng  *rand.Rand
	log  *slog.Logger
	w    *world.World
	ctrl *combat.Controller

	mobs   map[uint16]*mob
	nextID uint16

	playerHP   int32
	playerMana int32
	playerDest *model.Vec3
	sitting    bool

	// sim-side view of what the client asked for
	simTarget    uint16
	autoAttack   bool
	pendingCons  []considerReply
	pendingLoots []lootOpen

	lastRegen  time.Time
	lastAttack time.Time
}

const playerID uint16 = 1

// New builds the zone and seeds the shared entity table.
func New(cfg Config, w *world.World, logger *slog.Logger) *Zone {
	z := &Zone{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		log:        logger,
		w:          w,
		mobs:       make(map[uint16]*mob),
		nextID:     playerID + 1,
		playerHP:   cfg.PlayerMaxHP,
		playerMana: cfg.PlayerMaxMana,
	}

	w.SetSelf(model.EntitySnapshot{
		ID:        playerID,
		Name:      "Hunter",
		Position:  model.Vec3{},
		HPPercent: 100,
		Level:     10,
		Size:      6,
		RaceID:    1,
		ClassID:   model.ClassWarrior,
	})

	for _, spec := range cfg.Specs {
		for i := 0; i < spec.Count; i++ {
			z.spawn(spec)
		}
	}
	return z
}

// Attach wires the controller the zone reports consider replies and loot
// windows to. Called once after construction; the controller needs the
// zone as its sink first.
func (z *Zone) Attach(ctrl *combat.Controller) {
	z.ctrl = ctrl
}

func (z *Zone) spawn(spec MobSpec) {
	id := z.nextID
	z.nextID++
	pos := model.Vec3{
		X: (z.rng.Float32()*2 - 1) * z.cfg.ZoneRadius,
		Y: (z.rng.Float32()*2 - 1) * z.cfg.ZoneRadius,
	}
	maxHP := int32(spec.Level) * 20
	m := &mob{
		snap: model.EntitySnapshot{
			ID:        id,
			Name:      spec.Name,
			Position:  pos,
			HPPercent: 100,
			Faction:   spec.Faction,
			Level:     spec.Level,
			Size:      spec.Size,
			RaceID:    spec.RaceID,
		},
		maxHP:     maxHP,
		curHP:     maxHP,
		home:      pos,
		heading:   z.rng.Float32() * 360,
		lootSlots: spec.LootSlots,
	}
	z.mobs[id] = m
	z.w.Upsert(m.snap)
}

// Tick advances the simulation by one step.
func (z *Zone) Tick(now time.Time) {
	z.deliverConsiders(now)
	z.deliverLootWindows(now)
	z.wander()
	z.movePlayer()
	z.resolveCombat(now)
	z.regen(now)
}

func (z *Zone) wander() {
	for _, m := range z.mobs {
		if m.snap.IsCorpse || m.target != 0 {
			continue
		}
		if z.rng.Float64() < 0.02 {
			m.heading = z.rng.Float32() * 360
		}
		rad := float64(m.heading) * (math.Pi / 180)
		step := model.Vec3{
			X: float32(float64(z.cfg.WanderSpeed) * math.Cos(rad)),
			Y: float32(float64(z.cfg.WanderSpeed) * math.Sin(rad)),
		}
		next := m.snap.Position.Add(step)
		if next.Sub(m.home).Length() > 40 {
			m.heading += 180
			continue
		}
		m.snap.Position = next
		z.w.Upsert(m.snap)
	}
}

func (z *Zone) movePlayer() {
	if z.playerDest == nil {
		return
	}
	self := z.w.Self()
	delta := z.playerDest.Sub(self.Position)
	dist := delta.Length()
	if dist <= z.cfg.PlayerSpeed {
		self.Position = *z.playerDest
		z.playerDest = nil
	} else {
		self.Position = self.Position.Add(delta.Normalize().Scale(z.cfg.PlayerSpeed))
	}
	z.w.SetSelf(self)
}

func (z *Zone) resolveCombat(now time.Time) {
	if now.Sub(z.lastAttack) < time.Second {
		return
	}
	z.lastAttack = now
	self := z.w.Self()

	// Player swings at the sim-side target.
	if z.autoAttack && z.simTarget != 0 {
		if m, ok := z.mobs[z.simTarget]; ok && !m.snap.IsCorpse {
			if m.snap.Position.Distance(self.Position) <= z.cfg.AttackRange {
				z.damageMob(m, z.cfg.PlayerDamage)
				if !m.snap.IsCorpse {
					m.target = playerID
				}
			}
		}
	}

	// Angry mobs swing back.
	for _, m := range z.mobs {
		if m.snap.IsCorpse || m.target != playerID {
			continue
		}
		d := m.snap.Position.Distance(self.Position)
		if d > z.cfg.AttackRange {
			// Chase.
			step := self.Position.Sub(m.snap.Position).Normalize().Scale(z.cfg.WanderSpeed * 3)
			m.snap.Position = m.snap.Position.Add(step)
			z.w.Upsert(m.snap)
			continue
		}
		z.playerHP -= z.cfg.MobDamage
		if z.playerHP < 0 {
			z.playerHP = 0
		}
		z.pushVitals()
		if z.ctrl != nil {
			z.ctrl.NotifyAggro(m.snap.ID)
		}
	}
}

func (z *Zone) damageMob(m *mob, dmg int32) {
	m.curHP -= dmg
	if m.curHP <= 0 {
		m.curHP = 0
		m.snap.IsCorpse = true
		m.snap.HPPercent = 0
		m.snap.Name = m.snap.Name + "'s_corpse"
		m.target = 0
		z.log.Debug("mob died", "id", m.snap.ID, "name", m.snap.Name)
	} else {
		m.snap.HPPercent = float32(m.curHP) / float32(m.maxHP) * 100
	}
	z.w.Upsert(m.snap)
}

func (z *Zone) regen(now time.Time) {
	if now.Sub(z.lastRegen) < 2*time.Second {
		return
	}
	z.lastRegen = now
	hpGain, manaGain := int32(5), int32(4)
	if z.sitting {
		hpGain, manaGain = 30, 25
	}
	z.playerHP = min32(z.playerHP+hpGain, z.cfg.PlayerMaxHP)
	z.playerMana = min32(z.playerMana+manaGain, z.cfg.PlayerMaxMana)
	z.pushVitals()
}

func (z *Zone) pushVitals() {
	self := z.w.Self()
	self.HPPercent = float32(z.playerHP) / float32(z.cfg.PlayerMaxHP) * 100
	z.w.SetSelf(self)
	if z.ctrl != nil {
		z.ctrl.UpdateVitals(model.NewCombatVitals(z.playerHP, z.cfg.PlayerMaxHP, z.playerMana, z.cfg.PlayerMaxMana, 100, 100))
	}
}

// PlayerAlive reports whether the simulated player has hit points left.
func (z *Zone) PlayerAlive() bool {
	return z.playerHP > 0
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
