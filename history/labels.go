package history

import "inputhistory/gamepad"

// LabelSet names every slot for one input mode.
type LabelSet [gamepad.SlotCount]string

// Label returns the mnemonic for slot, or "" when slot is out of range.
func (s *LabelSet) Label(slot gamepad.Slot) string {
	if int(slot) >= len(s) {
		return ""
	}
	return s[slot]
}

var labelSets = [...]LabelSet{
	gamepad.InputModeHID: {
		"U", "D", "L", "R",
		"X", "O", "#", "^",
		"L1", "R1", "L2", "R2",
		"SL", "ST", "L3", "R3", "PS", "A2",
	},
	gamepad.InputModeSwitch: {
		"U", "D", "L", "R",
		"B", "A", "Y", "X",
		"L", "R", "ZL", "ZR",
		"-", "+", "LS", "RS", "H", "C",
	},
	gamepad.InputModeXInput: {
		"U", "D", "L", "R",
		"A", "B", "X", "Y",
		"LB", "RB", "LT", "RT",
		"BK", "ST", "LS", "RS", "G", "A2",
	},
	gamepad.InputModeKeyboard: {
		"U", "D", "L", "R",
		"B1", "B2", "B3", "B4",
		"L1", "R1", "L2", "R2",
		"S1", "S2", "L3", "R3", "A1", "A2",
	},
	gamepad.InputModePS4: {
		"U", "D", "L", "R",
		"X", "O", "#", "^",
		"L1", "R1", "L2", "R2",
		"SH", "OP", "L3", "R3", "PS", "T",
	},
	gamepad.InputModeConfig: {
		"U", "D", "L", "R",
		"B1", "B2", "B3", "B4",
		"L1", "R1", "L2", "R2",
		"S1", "S2", "L3", "R3", "A1", "A2",
	},
}

// Labels returns the label set for mode. Modes without a table of their own
// use the HID names.
func Labels(mode gamepad.InputMode) *LabelSet {
	if int(mode) < len(labelSets) {
		return &labelSets[mode]
	}
	return &labelSets[gamepad.InputModeHID]
}
