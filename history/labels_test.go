package history

import (
	"testing"

	"inputhistory/gamepad"
)

func TestLabelSetsComplete(t *testing.T) {
	if len(labelSets) != 6 {
		t.Fatalf("len(labelSets) = %d, want 6", len(labelSets))
	}
	for mode, set := range labelSets {
		for slot, label := range set {
			if label == "" {
				t.Fatalf("mode %s slot %s has no label", gamepad.InputMode(mode), gamepad.Slot(slot))
			}
		}
	}
}

func TestLabels(t *testing.T) {
	tests := []struct {
		mode gamepad.InputMode
		slot gamepad.Slot
		want string
	}{
		{gamepad.InputModeXInput, gamepad.SlotB1, "A"},
		{gamepad.InputModeXInput, gamepad.SlotL1, "LB"},
		{gamepad.InputModeXInput, gamepad.SlotA1, "G"},
		{gamepad.InputModeSwitch, gamepad.SlotB1, "B"},
		{gamepad.InputModeSwitch, gamepad.SlotS1, "-"},
		{gamepad.InputModeSwitch, gamepad.SlotA2, "C"},
		{gamepad.InputModeHID, gamepad.SlotB3, "#"},
		{gamepad.InputModePS4, gamepad.SlotS2, "OP"},
		{gamepad.InputModePS4, gamepad.SlotA2, "T"},
		{gamepad.InputModeKeyboard, gamepad.SlotR3, "R3"},
		{gamepad.InputModeConfig, gamepad.SlotA1, "A1"},
		{gamepad.InputModeXInput, gamepad.SlotUp, "U"},
	}
	for _, tt := range tests {
		if got := Labels(tt.mode).Label(tt.slot); got != tt.want {
			t.Fatalf("Labels(%s).Label(%s) = %q, want %q", tt.mode, tt.slot, got, tt.want)
		}
	}
}

func TestLabelsFallback(t *testing.T) {
	hid := Labels(gamepad.InputModeHID)
	for _, mode := range []gamepad.InputMode{gamepad.InputModePS3, gamepad.InputModeXBOne, gamepad.InputModeGeneric, gamepad.InputMode(200)} {
		if got := Labels(mode); got != hid {
			t.Fatalf("Labels(%s) did not fall back to the HID set", mode)
		}
	}
}

func TestLabelOutOfRange(t *testing.T) {
	if got := Labels(gamepad.InputModeXInput).Label(gamepad.SlotCount); got != "" {
		t.Fatalf("Label(SlotCount) = %q, want empty", got)
	}
}
