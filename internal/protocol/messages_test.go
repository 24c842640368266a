package protocol

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestClientTarget(t *testing.T) {
	got := ClientTarget(0x1234)
	want := []byte{0x34, 0x12, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("ClientTarget = % x, want % x", got, want)
	}
}

func TestConsiderLayout(t *testing.T) {
	got := Consider(7, 42)
	if len(got) != 28 {
		t.Fatalf("Consider length = %d, want 28", len(got))
	}
	if v := binary.LittleEndian.Uint32(got[0:4]); v != 7 {
		t.Errorf("playerID = %d, want 7", v)
	}
	if v := binary.LittleEndian.Uint32(got[4:8]); v != 42 {
		t.Errorf("targetID = %d, want 42", v)
	}
	for i, b := range got[8:] {
		if b != 0 {
			t.Errorf("request byte %d = %#x, want zero", 8+i, b)
		}
	}
}

func TestAutoAttack(t *testing.T) {
	on := AutoAttack(true)
	off := AutoAttack(false)
	if len(on) != 4 || on[0] != 1 {
		t.Errorf("AutoAttack(true) = % x", on)
	}
	if len(off) != 4 || off[0] != 0 {
		t.Errorf("AutoAttack(false) = % x", off)
	}
}

func TestAutoFire(t *testing.T) {
	if got := AutoFire(true); len(got) != 1 || got[0] != 1 {
		t.Errorf("AutoFire(true) = % x", got)
	}
}

func TestCastSpellLayout(t *testing.T) {
	got := CastSpell(2, 1001, 42)
	if len(got) != 20 {
		t.Fatalf("CastSpell length = %d, want 20", len(got))
	}
	if v := binary.LittleEndian.Uint32(got[0:4]); v != 2 {
		t.Errorf("gem slot = %d, want 2", v)
	}
	if v := binary.LittleEndian.Uint32(got[4:8]); v != 1001 {
		t.Errorf("spellID = %d, want 1001", v)
	}
	if v := binary.LittleEndian.Uint32(got[8:12]); v != 0xFFFFFFFF {
		t.Errorf("inventory slot = %#x, want 0xFFFFFFFF", v)
	}
	if v := binary.LittleEndian.Uint32(got[12:16]); v != 42 {
		t.Errorf("targetID = %d, want 42", v)
	}
}

func TestLootItemLayout(t *testing.T) {
	got := LootItem(42, 7, 3, true)
	if len(got) != 16 {
		t.Fatalf("LootItem length = %d, want 16", len(got))
	}
	if v := binary.LittleEndian.Uint32(got[0:4]); v != 42 {
		t.Errorf("corpseID = %d, want 42", v)
	}
	if v := binary.LittleEndian.Uint32(got[4:8]); v != 7 {
		t.Errorf("looterID = %d, want 7", v)
	}
	if v := binary.LittleEndian.Uint16(got[8:10]); v != 3 {
		t.Errorf("slot = %d, want 3", v)
	}
	if v := binary.LittleEndian.Uint32(got[12:16]); v != 1 {
		t.Errorf("autoLoot = %d, want 1", v)
	}
}

func TestSpawnAppearanceSit(t *testing.T) {
	got := SpawnAppearance(7, AppearanceAnimation, AnimSitting)
	if len(got) != 8 {
		t.Fatalf("SpawnAppearance length = %d, want 8", len(got))
	}
	if v := binary.LittleEndian.Uint16(got[0:2]); v != 7 {
		t.Errorf("spawnID = %d, want 7", v)
	}
	if v := binary.LittleEndian.Uint16(got[2:4]); v != 14 {
		t.Errorf("appearance type = %d, want 14", v)
	}
	if v := binary.LittleEndian.Uint32(got[4:8]); v != 110 {
		t.Errorf("value = %d, want 110", v)
	}
}

func TestWriterLittleEndian(t *testing.T) {
	w := NewWriter(16)
	w.WriteUint16(0x0102)
	w.WriteUint32(0x03040506)
	w.WriteInt32(-1)
	w.WriteFloat32(1.5)

	got := w.Bytes()
	want := []byte{
		0x02, 0x01,
		0x06, 0x05, 0x04, 0x03,
		0xFF, 0xFF, 0xFF, 0xFF,
		0x00, 0x00, 0xC0, 0x3F,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("writer output = % x, want % x", got, want)
	}
	if w.Len() != 14 {
		t.Errorf("Len = %d, want 14", w.Len())
	}
}
