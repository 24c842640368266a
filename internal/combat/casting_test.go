package combat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eqforge/hunter/internal/command"
	"github.com/eqforge/hunter/internal/model"
)

func TestCastSpellLifecycle(t *testing.T) {
	view := newFakeView()
	view.add(gnoll(42, 10))
	ctrl, rec, _, clk := newTestController(view)
	ctrl.Enable()
	require.True(t, ctrl.SetTarget(42))

	// Target id 0 resolves to the current target.
	require.True(t, ctrl.CastSpell(1001, 0))
	assert.True(t, ctrl.Casting())
	casts := rec.OfKind(command.KindCastSpell)
	require.Len(t, casts, 1)
	assert.Equal(t, uint32(1001), casts[0].SpellID)
	assert.Equal(t, uint16(42), casts[0].TargetID)

	// A second cast is refused while one is in flight.
	assert.False(t, ctrl.CastSpell(1002, 42))

	// The casting flag clears at the cast-time deadline.
	clk.Advance(defaultCastTime)
	ctrl.Tick()
	assert.False(t, ctrl.Casting())
	assert.True(t, ctrl.CastSpell(1002, 42))
}

func TestInterruptCast(t *testing.T) {
	view := newFakeView()
	view.add(gnoll(42, 10))
	ctrl, rec, _, _ := newTestController(view)
	ctrl.Enable()

	// Nothing in flight: no command goes out.
	ctrl.InterruptCast()
	assert.Zero(t, rec.CountKind(command.KindInterruptCast))

	require.True(t, ctrl.CastSpell(1001, 42))
	ctrl.InterruptCast()
	assert.False(t, ctrl.Casting())
	assert.Equal(t, 1, rec.CountKind(command.KindInterruptCast))
}

func TestCastGem(t *testing.T) {
	view := newFakeView()
	view.add(gnoll(42, 10))
	ctrl, rec, _, _ := newTestController(view)
	ctrl.Enable()

	assert.False(t, ctrl.CastGem(2, 42), "empty gem must not cast")

	ctrl.MemorizeSpell(1001, 2)
	require.True(t, ctrl.CastGem(2, 42))
	casts := rec.OfKind(command.KindCastSpell)
	require.Len(t, casts, 1)
	assert.Equal(t, uint32(1001), casts[0].SpellID)

	assert.False(t, ctrl.CastGem(-1, 42))
	assert.False(t, ctrl.CastGem(model.MaxSpellGems, 42))
}

func TestCanCast(t *testing.T) {
	view := newFakeView()
	view.add(gnoll(42, 10))
	ctrl, _, _, clk := newTestController(view)
	ctrl.Enable()
	ctrl.UpdateVitals(model.NewCombatVitals(1000, 1000, 50, 500, 100, 100))

	spell := model.SpellInfo{SpellID: 1001, ManaCost: 60, Range: 200}
	assert.False(t, ctrl.CanCast(spell), "insufficient mana")

	spell.ManaCost = 40
	assert.True(t, ctrl.CanCast(spell))

	// Recast gate.
	spell.RecastTime = 10 * time.Second
	spell.LastCastTime = clk.Now()
	assert.False(t, ctrl.CanCast(spell))
	clk.Advance(11 * time.Second)
	assert.True(t, ctrl.CanCast(spell))

	// Out of range against the current target.
	require.True(t, ctrl.SetTarget(42))
	spell.Range = 5
	assert.False(t, ctrl.CanCast(spell))
}
