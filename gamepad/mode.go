package gamepad

import (
	"fmt"
	"strings"
)

// InputMode is the protocol the controller reports with. It selects the
// label set used for on-screen button names.
type InputMode uint8

const (
	InputModeHID InputMode = iota
	InputModeSwitch
	InputModeXInput
	InputModeKeyboard
	InputModePS4
	InputModeConfig
	InputModePS3
	InputModeXBOne
	InputModeGeneric
)

var inputModeNames = []string{
	InputModeHID:      "hid",
	InputModeSwitch:   "switch",
	InputModeXInput:   "xinput",
	InputModeKeyboard: "keyboard",
	InputModePS4:      "ps4",
	InputModeConfig:   "config",
	InputModePS3:      "ps3",
	InputModeXBOne:    "xbone",
	InputModeGeneric:  "generic",
}

func (m InputMode) String() string {
	if int(m) < len(inputModeNames) {
		return inputModeNames[m]
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

func (m InputMode) MarshalText() ([]byte, error) {
	if int(m) >= len(inputModeNames) {
		return nil, fmt.Errorf("gamepad: unknown input mode %d", uint8(m))
	}
	return []byte(inputModeNames[m]), nil
}

func (m *InputMode) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range inputModeNames {
		if n == name {
			*m = InputMode(i)
			return nil
		}
	}
	return fmt.Errorf("gamepad: unknown input mode %q", name)
}

// DpadMode selects where directional presses come from.
type DpadMode uint8

const (
	DpadDigital DpadMode = iota
	DpadLeftAnalog
	DpadRightAnalog
)

var dpadModeNames = []string{
	DpadDigital:     "digital",
	DpadLeftAnalog:  "left_analog",
	DpadRightAnalog: "right_analog",
}

func (m DpadMode) String() string {
	if int(m) < len(dpadModeNames) {
		return dpadModeNames[m]
	}
	return fmt.Sprintf("dpad(%d)", uint8(m))
}

func (m DpadMode) MarshalText() ([]byte, error) {
	if int(m) >= len(dpadModeNames) {
		return nil, fmt.Errorf("gamepad: unknown dpad mode %d", uint8(m))
	}
	return []byte(dpadModeNames[m]), nil
}

func (m *DpadMode) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	name = strings.ReplaceAll(name, "-", "_")
	for i, n := range dpadModeNames {
		if n == name {
			*m = DpadMode(i)
			return nil
		}
	}
	return fmt.Errorf("gamepad: unknown dpad mode %q", name)
}
