package history

import "inputhistory/gamepad"

// Vector is the held state of every slot for one cycle.
type Vector [gamepad.SlotCount]bool

// Sample reads one Vector. Directions are taken from processed and resolved
// through its dpad mode; buttons are taken from raw. A nil processed reads
// directions from raw as well.
func Sample(raw, processed gamepad.Provider) Vector {
	if processed == nil {
		processed = raw
	}

	var v Vector
	v[gamepad.SlotUp] = pressedUp(processed)
	v[gamepad.SlotDown] = pressedDown(processed)
	v[gamepad.SlotLeft] = pressedLeft(processed)
	v[gamepad.SlotRight] = pressedRight(processed)

	st := raw.State()
	for slot := gamepad.SlotB1; slot < gamepad.SlotCount; slot++ {
		v[slot] = st.Held(slot)
	}
	return v
}

func pressedUp(p gamepad.Provider) bool {
	st := p.State()
	switch p.Options().DpadMode {
	case gamepad.DpadDigital:
		return st.PressedUp()
	case gamepad.DpadLeftAnalog:
		return st.LY == gamepad.AxisMin
	case gamepad.DpadRightAnalog:
		return st.RY == gamepad.AxisMin
	}
	return false
}

func pressedDown(p gamepad.Provider) bool {
	st := p.State()
	switch p.Options().DpadMode {
	case gamepad.DpadDigital:
		return st.PressedDown()
	case gamepad.DpadLeftAnalog:
		return st.LY == gamepad.AxisMax
	case gamepad.DpadRightAnalog:
		return st.RY == gamepad.AxisMax
	}
	return false
}

func pressedLeft(p gamepad.Provider) bool {
	st := p.State()
	switch p.Options().DpadMode {
	case gamepad.DpadDigital:
		return st.PressedLeft()
	case gamepad.DpadLeftAnalog:
		return st.LX == gamepad.AxisMin
	case gamepad.DpadRightAnalog:
		return st.RX == gamepad.AxisMin
	}
	return false
}

func pressedRight(p gamepad.Provider) bool {
	st := p.State()
	switch p.Options().DpadMode {
	case gamepad.DpadDigital:
		return st.PressedRight()
	case gamepad.DpadLeftAnalog:
		return st.LX == gamepad.AxisMax
	case gamepad.DpadRightAnalog:
		return st.RX == gamepad.AxisMax
	}
	return false
}
