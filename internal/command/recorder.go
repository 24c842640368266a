package command

// Recorder is a CommandSink that records every intent in order. Used by
// tests and the simulator's command bridge.
type Recorder struct {
	Commands []Command
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(c Command) {
	r.Commands = append(r.Commands, c)
}

// SetTarget records a set-target intent.
func (r *Recorder) SetTarget(entityID uint16) {
	r.record(Command{Kind: KindSetTarget, TargetID: entityID})
}

// ClearTarget records a clear-target intent.
func (r *Recorder) ClearTarget() {
	r.record(Command{Kind: KindClearTarget})
}

// AutoAttack records an auto-attack toggle.
func (r *Recorder) AutoAttack(on bool) {
	r.record(Command{Kind: KindAutoAttack, On: on})
}

// AutoFire records an auto-fire toggle.
func (r *Recorder) AutoFire(on bool) {
	r.record(Command{Kind: KindAutoFire, On: on})
}

// Consider records a consider request.
func (r *Recorder) Consider(targetID uint16) {
	r.record(Command{Kind: KindConsider, TargetID: targetID})
}

// CastSpell records a cast request.
func (r *Recorder) CastSpell(spellID uint32, targetID uint16) {
	r.record(Command{Kind: KindCastSpell, SpellID: spellID, TargetID: targetID})
}

// InterruptCast records a cast interrupt.
func (r *Recorder) InterruptCast() {
	r.record(Command{Kind: KindInterruptCast})
}

// LootRequest records a loot request.
func (r *Recorder) LootRequest(corpseID uint16) {
	r.record(Command{Kind: KindLootRequest, TargetID: corpseID})
}

// LootItem records a loot-item request.
func (r *Recorder) LootItem(corpseID uint16, slot uint32, autoLoot bool) {
	r.record(Command{Kind: KindLootItem, TargetID: corpseID, Slot: slot, AutoLoot: autoLoot})
}

// EndLoot records an end-loot request.
func (r *Recorder) EndLoot(corpseID uint16) {
	r.record(Command{Kind: KindEndLoot, TargetID: corpseID})
}

// Sit records a sit intent.
func (r *Recorder) Sit() {
	r.record(Command{Kind: KindSit})
}

// Stand records a stand intent.
func (r *Recorder) Stand() {
	r.record(Command{Kind: KindStand})
}

// FaceEntity records a face-target intent.
func (r *Recorder) FaceEntity(entityID uint16) {
	r.record(Command{Kind: KindFaceEntity, TargetID: entityID})
}

// OfKind returns all recorded commands of the given kind.
func (r *Recorder) OfKind(kind Kind) []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// CountKind returns how many commands of the given kind were recorded.
func (r *Recorder) CountKind(kind Kind) int {
	n := 0
	for _, c := range r.Commands {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Last returns the most recent command, or false when empty.
func (r *Recorder) Last() (Command, bool) {
	if len(r.Commands) == 0 {
		return Command{}, false
	}
	return r.Commands[len(r.Commands)-1], true
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}
