package combat

import (
	"sort"
	"time"

	"github.com/eqforge/hunter/internal/model"
)

// fakeClock is a manually advanced clock for deadline tests.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

// fakeView is an in-memory world snapshot with deterministic iteration
// order.
type fakeView struct {
	self     model.EntitySnapshot
	entities map[uint16]model.EntitySnapshot
}

func newFakeView() *fakeView {
	return &fakeView{
		self: model.EntitySnapshot{
			ID:      1,
			Name:    "Tester",
			Level:   10,
			Size:    6,
			RaceID:  1,
			ClassID: model.ClassWarrior,
		},
		entities: make(map[uint16]model.EntitySnapshot),
	}
}

func (v *fakeView) add(e model.EntitySnapshot) { v.entities[e.ID] = e }

func (v *fakeView) Self() model.EntitySnapshot { return v.self }

func (v *fakeView) Entity(id uint16) (model.EntitySnapshot, bool) {
	e, ok := v.entities[id]
	return e, ok
}

func (v *fakeView) ForEachEntity(fn func(model.EntitySnapshot) bool) {
	ids := make([]uint16, 0, len(v.entities))
	for id := range v.entities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		if !fn(v.entities[id]) {
			return
		}
	}
}

// fakeMover records navigation requests.
type fakeMover struct {
	moveTos       []model.Vec3
	moveToEntity  []uint16
	stopDistances []float32
	stops         int
}

func (m *fakeMover) MoveTo(dest model.Vec3) { m.moveTos = append(m.moveTos, dest) }

func (m *fakeMover) MoveToEntity(entityID uint16, stopDistance float32) {
	m.moveToEntity = append(m.moveToEntity, entityID)
	m.stopDistances = append(m.stopDistances, stopDistance)
}

func (m *fakeMover) Stop() { m.stops++ }

func gnoll(id uint16, x float32) model.EntitySnapshot {
	return model.EntitySnapshot{
		ID:        id,
		Name:      "a_gnoll_pup",
		Position:  model.Vec3{X: x},
		HPPercent: 100,
		Faction:   model.FactionThreatening,
		Level:     8,
		Size:      5,
		RaceID:    39,
	}
}
