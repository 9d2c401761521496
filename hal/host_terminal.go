//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"inputhistory/gamepad"

	"github.com/gdamore/tcell/v2"
)

// TerminalConfig controls the terminal runner.
type TerminalConfig struct {
	Hz int
	// Hold is how long a key counts as held after its last key event.
	// Terminals report presses and repeats but no releases.
	Hold time.Duration
	// Log receives log lines; nil discards them.
	Log io.Writer
}

// RunTerminal shows the panel in the terminal with half-block cells and
// reads keys as gamepad buttons. It returns when ctx is done or on Esc/Ctrl-C.
func RunTerminal(ctx context.Context, newApp func(HAL) (func() error, error), cfg TerminalConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Hold <= 0 {
		cfg.Hold = 150 * time.Millisecond
	}
	if cfg.Log == nil {
		cfg.Log = io.Discard
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	pad := newTermPad(cfg.Hold, time.Now)
	h := newHost(cfg.Log, pad)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	scratch := make([]byte, len(h.fb.buf))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if slot, ok := keySlot(ev.Key(), ev.Rune()); ok {
					pad.press(slot)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			h.fb.snapshotRGB565(scratch)
			drawHalfBlocks(screen, scratch, h.fb.width, h.fb.height, h.fb.stride)
			screen.Show()
		}
	}
}

var (
	panelStyle = tcell.StyleDefault.Foreground(tcell.ColorAqua).Background(tcell.ColorBlack)
	helpStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

const terminalHelp = "arrows=dpad z x a s=B1-B4 q w e r=L1 R1 L2 R2 bksp/enter=S1/S2 c v=L3/R3 h j=A1/A2 esc=quit"

// drawHalfBlocks packs two panel rows into each terminal row.
func drawHalfBlocks(screen tcell.Screen, buf []byte, w, h, stride int) {
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			top := lit(buf, y*stride+x*2)
			bottom := y+1 < h && lit(buf, (y+1)*stride+x*2)
			screen.SetContent(x, y/2, halfBlock(top, bottom), nil, panelStyle)
		}
	}
	for i, r := range terminalHelp {
		screen.SetContent(i, (h+1)/2+1, r, nil, helpStyle)
	}
}

func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	}
	return ' '
}

var runeSlots = map[rune]gamepad.Slot{
	'z': gamepad.SlotB1,
	'x': gamepad.SlotB2,
	'a': gamepad.SlotB3,
	's': gamepad.SlotB4,
	'q': gamepad.SlotL1,
	'w': gamepad.SlotR1,
	'e': gamepad.SlotL2,
	'r': gamepad.SlotR2,
	'c': gamepad.SlotL3,
	'v': gamepad.SlotR3,
	'h': gamepad.SlotA1,
	'j': gamepad.SlotA2,
}

func keySlot(k tcell.Key, r rune) (gamepad.Slot, bool) {
	switch k {
	case tcell.KeyUp:
		return gamepad.SlotUp, true
	case tcell.KeyDown:
		return gamepad.SlotDown, true
	case tcell.KeyLeft:
		return gamepad.SlotLeft, true
	case tcell.KeyRight:
		return gamepad.SlotRight, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return gamepad.SlotS1, true
	case tcell.KeyEnter:
		return gamepad.SlotS2, true
	case tcell.KeyRune:
		slot, ok := runeSlots[r]
		return slot, ok
	}
	return 0, false
}

// termPad treats a key as held until Hold passes without a repeat.
type termPad struct {
	mu    sync.Mutex
	hold  time.Duration
	now   func() time.Time
	until [gamepad.SlotCount]time.Time
}

func newTermPad(hold time.Duration, now func() time.Time) *termPad {
	return &termPad{hold: hold, now: now}
}

func (p *termPad) press(slot gamepad.Slot) {
	if int(slot) >= gamepad.SlotCount {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.until[slot] = p.now().Add(p.hold)
}

func (p *termPad) Read() gamepad.State {
	p.mu.Lock()
	defer p.mu.Unlock()

	st := gamepad.Released()
	now := p.now()
	for slot, until := range p.until {
		if now.Before(until) {
			st.Press(gamepad.Slot(slot))
		}
	}
	return st
}
