// Package gamepad models the controller state shared by the input sources
// and the addons that consume it.
package gamepad

// Slot is one of the fixed logical input positions.
//
// The order is shared by every label table and by the sampler.
type Slot uint8

const (
	SlotUp Slot = iota
	SlotDown
	SlotLeft
	SlotRight
	SlotB1
	SlotB2
	SlotB3
	SlotB4
	SlotL1
	SlotR1
	SlotL2
	SlotR2
	SlotS1
	SlotS2
	SlotL3
	SlotR3
	SlotA1
	SlotA2

	SlotCount = 18
)

var slotNames = [SlotCount]string{
	"up", "down", "left", "right",
	"b1", "b2", "b3", "b4",
	"l1", "r1", "l2", "r2",
	"s1", "s2", "l3", "r3",
	"a1", "a2",
}

func (s Slot) String() string {
	if int(s) >= SlotCount {
		return "unknown"
	}
	return slotNames[s]
}

// ParseSlot resolves a slot by its lower-case name ("b1", "up", ...).
func ParseSlot(name string) (Slot, bool) {
	for i, n := range slotNames {
		if n == name {
			return Slot(i), true
		}
	}
	return 0, false
}

// Dpad bits.
const (
	DpadUp uint8 = 1 << iota
	DpadDown
	DpadLeft
	DpadRight
)

// Button bits, B1 first.
const (
	ButtonB1 uint32 = 1 << iota
	ButtonB2
	ButtonB3
	ButtonB4
	ButtonL1
	ButtonR1
	ButtonL2
	ButtonR2
	ButtonS1
	ButtonS2
	ButtonL3
	ButtonR3
	ButtonA1
	ButtonA2
)

// Analog stick range. Each axis rests at AxisMid.
const (
	AxisMin uint16 = 0
	AxisMid uint16 = 0x7FFF
	AxisMax uint16 = 0xFFFF
)

// State is a snapshot of the controller for one cycle.
type State struct {
	Dpad    uint8
	Buttons uint32
	LX, LY  uint16
	RX, RY  uint16
}

// Released returns a state with nothing pressed and both sticks centred.
func Released() State {
	return State{LX: AxisMid, LY: AxisMid, RX: AxisMid, RY: AxisMid}
}

// Press marks the slot as held.
func (s *State) Press(slot Slot) {
	switch {
	case slot <= SlotRight:
		s.Dpad |= 1 << slot
	case int(slot) < SlotCount:
		s.Buttons |= 1 << (slot - SlotB1)
	}
}

// Held reports whether the slot's digital input is down.
func (s State) Held(slot Slot) bool {
	switch {
	case slot <= SlotRight:
		return s.Dpad&(1<<slot) != 0
	case int(slot) < SlotCount:
		return s.Buttons&(1<<(slot-SlotB1)) != 0
	}
	return false
}

func (s State) PressedUp() bool    { return s.Dpad&DpadUp != 0 }
func (s State) PressedDown() bool  { return s.Dpad&DpadDown != 0 }
func (s State) PressedLeft() bool  { return s.Dpad&DpadLeft != 0 }
func (s State) PressedRight() bool { return s.Dpad&DpadRight != 0 }

// Options are the reporting settings of the controller.
type Options struct {
	InputMode InputMode
	DpadMode  DpadMode
}

// Reader is a source of raw controller state (pins, a host gamepad, a script).
type Reader interface {
	Read() State
}

// Provider exposes the latched state of the current cycle.
type Provider interface {
	State() State
	Options() Options
}

// Gamepad latches one Reader sample per cycle so that every consumer of the
// cycle sees the same state.
type Gamepad struct {
	src   Reader
	opts  Options
	state State
}

// New returns a gamepad reading from src. A nil src always reads released.
func New(src Reader, opts Options) *Gamepad {
	return &Gamepad{src: src, opts: opts, state: Released()}
}

// Poll latches the current source state.
func (g *Gamepad) Poll() {
	if g.src == nil {
		g.state = Released()
		return
	}
	g.state = g.src.Read()
}

func (g *Gamepad) State() State           { return g.state }
func (g *Gamepad) Options() Options       { return g.opts }
func (g *Gamepad) SetOptions(opts Options) { g.opts = opts }

// Static is a Reader that always returns the same state.
type Static State

func (s Static) Read() State { return State(s) }
