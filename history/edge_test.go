package history

import (
	"slices"
	"testing"

	"inputhistory/gamepad"
)

func vec(slots ...gamepad.Slot) Vector {
	var v Vector
	for _, s := range slots {
		v[s] = true
	}
	return v
}

func TestDetectVectorWide(t *testing.T) {
	var d EdgeDetector

	steps := []struct {
		cur  Vector
		want []gamepad.Slot
	}{
		{vec(gamepad.SlotB1), []gamepad.Slot{gamepad.SlotB1}},
		{vec(gamepad.SlotB1), nil},
		// B1 is still held and is listed again because B2 changed.
		{vec(gamepad.SlotB1, gamepad.SlotB2), []gamepad.Slot{gamepad.SlotB1, gamepad.SlotB2}},
		// Releasing B1 emits the slots still held.
		{vec(gamepad.SlotB2), []gamepad.Slot{gamepad.SlotB2}},
		{vec(), nil},
		{vec(gamepad.SlotA2, gamepad.SlotUp), []gamepad.Slot{gamepad.SlotUp, gamepad.SlotA2}},
	}
	for i, st := range steps {
		got := d.Detect(st.cur)
		if !slices.Equal(got, st.want) {
			t.Fatalf("step %d: Detect() = %v, want %v", i, got, st.want)
		}
		if d.Last() != st.cur {
			t.Fatalf("step %d: Last() not updated", i)
		}
	}
}

func TestDetectStrict(t *testing.T) {
	d := EdgeDetector{Strict: true}

	if got := d.Detect(vec(gamepad.SlotB1)); !slices.Equal(got, []gamepad.Slot{gamepad.SlotB1}) {
		t.Fatalf("Detect() = %v, want [B1]", got)
	}
	if got := d.Detect(vec(gamepad.SlotB1, gamepad.SlotB2)); !slices.Equal(got, []gamepad.Slot{gamepad.SlotB2}) {
		t.Fatalf("Detect() = %v, want [B2]", got)
	}
	if got := d.Detect(vec(gamepad.SlotB2)); len(got) != 0 {
		t.Fatalf("Detect() on release = %v, want none", got)
	}
}

func TestDetectReset(t *testing.T) {
	var d EdgeDetector
	d.Detect(vec(gamepad.SlotB1))
	d.Reset()
	if got := d.Detect(vec(gamepad.SlotB1)); len(got) != 1 {
		t.Fatalf("Detect() after Reset = %v, want [B1]", got)
	}
}
