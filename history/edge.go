package history

import "inputhistory/gamepad"

// EdgeDetector turns consecutive vectors into the slots to record.
//
// By default any change in the vector emits every slot that is currently
// held, so a button kept down is listed again whenever another input
// changes. Strict emits only slots that went from released to held.
type EdgeDetector struct {
	Strict bool

	last Vector
}

// Detect compares cur with the previous vector and returns the slots to
// record in ascending order. An unchanged vector returns nil and keeps the
// previous vector.
func (d *EdgeDetector) Detect(cur Vector) []gamepad.Slot {
	if cur == d.last {
		return nil
	}

	var out []gamepad.Slot
	for i, held := range cur {
		if !held {
			continue
		}
		if d.Strict && d.last[i] {
			continue
		}
		out = append(out, gamepad.Slot(i))
	}
	d.last = cur
	return out
}

// Last returns the vector the next call compares against.
func (d *EdgeDetector) Last() Vector { return d.last }

// Reset forgets the previous vector.
func (d *EdgeDetector) Reset() { d.last = Vector{} }
