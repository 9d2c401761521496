package addon

import (
	"errors"
	"testing"

	"inputhistory/display"
)

type fakeAddon struct {
	name      string
	available bool
	panicOn   string

	setups    int
	processes int
	draws     int
	calls     *[]string
}

func (a *fakeAddon) Name() string    { return a.name }
func (a *fakeAddon) Available() bool { return a.available }

func (a *fakeAddon) Setup() {
	a.setups++
	if a.panicOn == "setup" {
		panic("setup failed")
	}
}

func (a *fakeAddon) Process() {
	a.processes++
	if a.calls != nil {
		*a.calls = append(*a.calls, a.name)
	}
	if a.panicOn == "process" {
		panic("process failed")
	}
}

func (a *fakeAddon) Draw(w display.Writer) {
	a.draws++
	w.WriteString(a.name, 0, 0, display.Font6x8, false, false)
}

type recordWriter struct {
	lines []string
}

func (w *recordWriter) WriteString(s string, x, y int, f display.Font, invert, render bool) {
	w.lines = append(w.lines, s)
}

func TestLoadSkipsUnavailable(t *testing.T) {
	m := NewManager()
	a := &fakeAddon{name: "off"}

	ok, err := m.Load(a)
	if err != nil || ok {
		t.Fatalf("Load(unavailable) = %v, %v, want false, nil", ok, err)
	}
	if a.setups != 0 {
		t.Fatalf("Setup called %d times on unavailable addon", a.setups)
	}
	if m.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", m.Len())
	}
}

func TestProcessRunsInLoadOrder(t *testing.T) {
	m := NewManager()
	var calls []string
	for _, name := range []string{"a", "b", "c"} {
		if ok, err := m.Load(&fakeAddon{name: name, available: true, calls: &calls}); !ok || err != nil {
			t.Fatalf("Load(%s) = %v, %v", name, ok, err)
		}
	}

	m.Process()
	m.Process()

	want := []string{"a", "b", "c", "a", "b", "c"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}
}

func TestPanicDisablesAddon(t *testing.T) {
	m := NewManager()
	var got []PanicInfo
	m.SetPanicHandler(func(info PanicInfo) { got = append(got, info) })

	bad := &fakeAddon{name: "bad", available: true, panicOn: "process"}
	good := &fakeAddon{name: "good", available: true}
	m.Load(bad)
	m.Load(good)

	m.Process()
	m.Process()

	if bad.processes != 1 {
		t.Fatalf("bad.processes = %d, want 1", bad.processes)
	}
	if good.processes != 2 {
		t.Fatalf("good.processes = %d, want 2", good.processes)
	}
	if len(got) != 1 || got[0].Name != "bad" || got[0].ID != 0 {
		t.Fatalf("panic infos = %+v", got)
	}
	if m.Enabled("bad") || !m.Enabled("good") {
		t.Fatal("expected only the panicking addon to be disabled")
	}
}

func TestSetupPanic(t *testing.T) {
	m := NewManager()
	a := &fakeAddon{name: "x", available: true, panicOn: "setup"}

	ok, err := m.Load(a)
	if ok || err != nil {
		t.Fatalf("Load = %v, %v, want false, nil", ok, err)
	}
	m.Process()
	if a.processes != 0 {
		t.Fatal("Process ran after Setup panicked")
	}
}

func TestDraw(t *testing.T) {
	m := NewManager()
	m.Load(&fakeAddon{name: "one", available: true})
	m.Load(&fakeAddon{name: "two", available: true})

	w := &recordWriter{}
	m.Draw(w)
	if len(w.lines) != 2 || w.lines[0] != "one" || w.lines[1] != "two" {
		t.Fatalf("drawn = %v", w.lines)
	}
}

func TestTableFull(t *testing.T) {
	m := NewManager()
	for i := 0; i < maxAddons; i++ {
		if _, err := m.Load(&fakeAddon{name: "a", available: true}); err != nil {
			t.Fatalf("Load #%d: %v", i, err)
		}
	}
	_, err := m.Load(&fakeAddon{name: "extra", available: true})
	if !errors.Is(err, ErrTableFull) {
		t.Fatalf("err = %v, want ErrTableFull", err)
	}
}
