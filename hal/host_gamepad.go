//go:build !tinygo && cgo

package hal

import (
	"sync"

	"inputhistory/gamepad"

	"github.com/hajimehoshi/ebiten/v2"
)

// ebitenPad samples the first gamepad that has a standard layout, merged
// with the keyboard so the window is usable without a controller.
type ebitenPad struct {
	mu    sync.Mutex
	state gamepad.State
	ids   []ebiten.GamepadID
}

func newEbitenPad() *ebitenPad {
	return &ebitenPad{state: gamepad.Released()}
}

func (p *ebitenPad) Read() gamepad.State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// A2 has no standard button.
var standardButtons = []struct {
	btn  ebiten.StandardGamepadButton
	slot gamepad.Slot
}{
	{ebiten.StandardGamepadButtonLeftTop, gamepad.SlotUp},
	{ebiten.StandardGamepadButtonLeftBottom, gamepad.SlotDown},
	{ebiten.StandardGamepadButtonLeftLeft, gamepad.SlotLeft},
	{ebiten.StandardGamepadButtonLeftRight, gamepad.SlotRight},
	{ebiten.StandardGamepadButtonRightBottom, gamepad.SlotB1},
	{ebiten.StandardGamepadButtonRightRight, gamepad.SlotB2},
	{ebiten.StandardGamepadButtonRightLeft, gamepad.SlotB3},
	{ebiten.StandardGamepadButtonRightTop, gamepad.SlotB4},
	{ebiten.StandardGamepadButtonFrontTopLeft, gamepad.SlotL1},
	{ebiten.StandardGamepadButtonFrontTopRight, gamepad.SlotR1},
	{ebiten.StandardGamepadButtonFrontBottomLeft, gamepad.SlotL2},
	{ebiten.StandardGamepadButtonFrontBottomRight, gamepad.SlotR2},
	{ebiten.StandardGamepadButtonCenterLeft, gamepad.SlotS1},
	{ebiten.StandardGamepadButtonCenterRight, gamepad.SlotS2},
	{ebiten.StandardGamepadButtonLeftStick, gamepad.SlotL3},
	{ebiten.StandardGamepadButtonRightStick, gamepad.SlotR3},
	{ebiten.StandardGamepadButtonCenterCenter, gamepad.SlotA1},
}

var keyboardSlots = []struct {
	key  ebiten.Key
	slot gamepad.Slot
}{
	{ebiten.KeyArrowUp, gamepad.SlotUp},
	{ebiten.KeyArrowDown, gamepad.SlotDown},
	{ebiten.KeyArrowLeft, gamepad.SlotLeft},
	{ebiten.KeyArrowRight, gamepad.SlotRight},
	{ebiten.KeyZ, gamepad.SlotB1},
	{ebiten.KeyX, gamepad.SlotB2},
	{ebiten.KeyA, gamepad.SlotB3},
	{ebiten.KeyS, gamepad.SlotB4},
	{ebiten.KeyQ, gamepad.SlotL1},
	{ebiten.KeyW, gamepad.SlotR1},
	{ebiten.KeyE, gamepad.SlotL2},
	{ebiten.KeyR, gamepad.SlotR2},
	{ebiten.KeyBackspace, gamepad.SlotS1},
	{ebiten.KeyEnter, gamepad.SlotS2},
	{ebiten.KeyC, gamepad.SlotL3},
	{ebiten.KeyV, gamepad.SlotR3},
	{ebiten.KeyHome, gamepad.SlotA1},
	{ebiten.KeyEnd, gamepad.SlotA2},
}

// poll runs on the ebiten Update goroutine.
func (p *ebitenPad) poll() {
	st := gamepad.Released()

	for _, k := range keyboardSlots {
		if ebiten.IsKeyPressed(k.key) {
			st.Press(k.slot)
		}
	}

	p.ids = ebiten.AppendGamepadIDs(p.ids[:0])
	for _, id := range p.ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range standardButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, b.btn) {
				st.Press(b.slot)
			}
		}
		st.LX = axisToRaw(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal))
		st.LY = axisToRaw(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical))
		st.RX = axisToRaw(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal))
		st.RY = axisToRaw(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical))
		break
	}

	p.mu.Lock()
	p.state = st
	p.mu.Unlock()
}
