package history

import (
	"testing"

	"inputhistory/config"
	"inputhistory/display"
	"inputhistory/gamepad"
)

type writeCall struct {
	s      string
	x, y   int
	f      display.Font
	invert bool
	render bool
}

type recordWriter struct {
	calls []writeCall
}

func (w *recordWriter) WriteString(s string, x, y int, f display.Font, invert, render bool) {
	w.calls = append(w.calls, writeCall{s, x, y, f, invert, render})
}

func newTestAddon(t *testing.T, length int, mode gamepad.InputMode) (*Addon, *fakeProvider) {
	t.Helper()
	cfg := config.Default()
	cfg.Addons.InputHistory.Enabled = true
	cfg.Addons.InputHistory.Length = length
	cfg.Gamepad.InputMode = mode

	p := &fakeProvider{st: gamepad.Released(), opts: cfg.Options()}
	a := New(&cfg, p, nil)
	if !a.Available() {
		t.Fatal("expected addon to be available")
	}
	a.Setup()
	return a, p
}

func press(slots ...gamepad.Slot) gamepad.State {
	st := gamepad.Released()
	for _, s := range slots {
		st.Press(s)
	}
	return st
}

func TestAvailable(t *testing.T) {
	cfg := config.Default()
	a := New(&cfg, nil, nil)
	if a.Available() {
		t.Fatal("disabled by default")
	}

	cfg.Addons.InputHistory.Enabled = true
	if !a.Available() {
		t.Fatal("expected available once enabled")
	}

	cfg.Display.Enabled = false
	if a.Available() {
		t.Fatal("expected unavailable with the display off")
	}
}

func TestProcessXInputScenario(t *testing.T) {
	a, p := newTestAddon(t, 10, gamepad.InputModeXInput)

	p.st = press(gamepad.SlotB1)
	a.Process()
	if a.Text() != "A" || a.Buffer().Len() != 1 {
		t.Fatalf("cycle 1: text %q, len %d", a.Text(), a.Buffer().Len())
	}

	a.Process()
	if a.Text() != "A" || a.Buffer().Len() != 1 {
		t.Fatalf("cycle 2: text %q, len %d", a.Text(), a.Buffer().Len())
	}

	p.st = press(gamepad.SlotB1, gamepad.SlotB2)
	a.Process()
	if a.Buffer().Newest() != "A+B" {
		t.Fatalf("cycle 3: newest %q, want %q", a.Buffer().Newest(), "A+B")
	}
	if a.Text() != "A A+B" {
		t.Fatalf("cycle 3: text %q, want %q", a.Text(), "A A+B")
	}
}

func TestProcessTruncatesSingleEntry(t *testing.T) {
	a, p := newTestAddon(t, 3, gamepad.InputModeXInput)

	p.st = press(gamepad.SlotL1, gamepad.SlotR1)
	a.Process()
	if a.Text() != "+RB" {
		t.Fatalf("Text() = %q, want %q", a.Text(), "+RB")
	}
}

func TestProcessLeftAnalogUp(t *testing.T) {
	a, p := newTestAddon(t, 21, gamepad.InputModeXInput)
	p.opts.DpadMode = gamepad.DpadLeftAnalog

	st := gamepad.Released()
	st.LY = gamepad.AxisMin
	p.st = st
	a.Process()
	if a.Text() != "U" {
		t.Fatalf("Text() = %q, want %q", a.Text(), "U")
	}
}

func TestProcessModeFollowsProvider(t *testing.T) {
	a, p := newTestAddon(t, 21, gamepad.InputModeXInput)

	p.opts.InputMode = gamepad.InputModeSwitch
	p.st = press(gamepad.SlotS2)
	a.Process()
	if a.Text() != "+" {
		t.Fatalf("Text() = %q, want %q", a.Text(), "+")
	}

	p.opts.InputMode = gamepad.InputModeGeneric
	p.st = press(gamepad.SlotB4)
	a.Process()
	if a.Text() != "+ ^" {
		t.Fatalf("Text() = %q, want %q", a.Text(), "+ ^")
	}
}

func TestProcessBounds(t *testing.T) {
	const length = 8
	a, p := newTestAddon(t, length, gamepad.InputModeKeyboard)

	slots := []gamepad.Slot{gamepad.SlotB1, gamepad.SlotB2, gamepad.SlotL2, gamepad.SlotA1, gamepad.SlotUp}
	for i := 0; i < 50; i++ {
		if i%2 == 0 {
			p.st = press(slots[i%len(slots)], slots[(i+1)%len(slots)])
		} else {
			p.st = gamepad.Released()
		}
		a.Process()
		if a.Buffer().Len() > length/2+1 {
			t.Fatalf("cycle %d: Len() = %d", i, a.Buffer().Len())
		}
		if len(a.Text()) > length {
			t.Fatalf("cycle %d: len(%q) > %d", i, a.Text(), length)
		}
	}
}

func TestProcessStrict(t *testing.T) {
	cfg := config.Default()
	cfg.Addons.InputHistory.Enabled = true
	cfg.Addons.InputHistory.StrictEdges = true
	p := &fakeProvider{st: gamepad.Released(), opts: cfg.Options()}
	a := New(&cfg, p, nil)
	a.Setup()

	p.st = press(gamepad.SlotB1)
	a.Process()
	p.st = press(gamepad.SlotB1, gamepad.SlotB2)
	a.Process()
	if a.Text() != "A B" {
		t.Fatalf("Text() = %q, want %q", a.Text(), "A B")
	}
}

func TestProcessZeroLength(t *testing.T) {
	a, p := newTestAddon(t, 0, gamepad.InputModeXInput)
	p.st = press(gamepad.SlotB1)
	a.Process()
	if a.Text() != "" {
		t.Fatalf("Text() = %q, want empty", a.Text())
	}
}

func TestSetupResetsHistory(t *testing.T) {
	a, p := newTestAddon(t, 21, gamepad.InputModeXInput)
	p.st = press(gamepad.SlotB1)
	a.Process()

	a.Setup()
	if a.Buffer().Len() != 0 || a.Text() != "" {
		t.Fatal("Setup did not reset the history")
	}
	a.Process()
	if a.Text() != "A" {
		t.Fatalf("Text() after Setup = %q, want %q", a.Text(), "A")
	}
}

func TestDraw(t *testing.T) {
	cfg := config.Default()
	cfg.Addons.InputHistory.Enabled = true
	cfg.Addons.InputHistory.Col = 3
	cfg.Addons.InputHistory.Row = 5
	p := &fakeProvider{st: press(gamepad.SlotB2), opts: cfg.Options()}
	a := New(&cfg, p, nil)
	a.Setup()
	a.Process()

	w := &recordWriter{}
	a.Draw(w)
	if len(w.calls) != 1 {
		t.Fatalf("WriteString called %d times, want 1", len(w.calls))
	}
	want := writeCall{s: "B", x: 3 * display.CellWidth, y: 5, f: display.Font6x8}
	if w.calls[0] != want {
		t.Fatalf("WriteString(%+v), want %+v", w.calls[0], want)
	}
}
