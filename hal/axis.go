package hal

import "inputhistory/gamepad"

// axisToRaw maps a stick position in [-1, 1] onto the gamepad axis range.
// Values at or past the ends saturate to AxisMin and AxisMax.
func axisToRaw(v float64) uint16 {
	if v <= -1 {
		return gamepad.AxisMin
	}
	if v >= 1 {
		return gamepad.AxisMax
	}
	raw := (v + 1) / 2 * float64(gamepad.AxisMax)
	return uint16(raw + 0.5)
}
