// Package addon runs the per-cycle firmware extensions.
package addon

import (
	"errors"

	"inputhistory/display"
)

const maxAddons = 16

// ErrTableFull is returned when no addon slot is left.
var ErrTableFull = errors.New("addon: table full")

// ID is the position of a loaded addon in the manager.
type ID uint8

// Addon is a unit of firmware behavior run once per input cycle.
//
// Available is checked once at load time. Setup runs once if Available
// reports true. Process runs every cycle after the gamepad is polled.
type Addon interface {
	Name() string
	Available() bool
	Setup()
	Process()
}

// Drawer is implemented by addons that paint onto the status panel.
type Drawer interface {
	Draw(w display.Writer)
}

type addonState struct {
	addon   Addon
	enabled bool
}

// Manager is a fixed table of loaded addons run in load order.
type Manager struct {
	addons [maxAddons]addonState
	count  ID

	onPanic func(PanicInfo)
}

func NewManager() *Manager {
	return &Manager{}
}

// SetPanicHandler installs fn to be called when an addon panics.
// The panicking addon is disabled before fn runs.
func (m *Manager) SetPanicHandler(fn func(PanicInfo)) {
	m.onPanic = fn
}

// Load runs Setup and adds a to the table if it is available. It reports
// false for addons that are not available.
func (m *Manager) Load(a Addon) (bool, error) {
	if a == nil || !a.Available() {
		return false, nil
	}
	if m.count >= maxAddons {
		return false, ErrTableFull
	}

	id := m.count
	m.addons[id] = addonState{addon: a, enabled: true}
	m.count++
	if !m.guard(id, a.Setup) {
		return false, nil
	}
	return true, nil
}

func (m *Manager) Len() int { return int(m.count) }

// Enabled reports whether the addon with the given name is loaded and has
// not been disabled by a panic.
func (m *Manager) Enabled(name string) bool {
	for i := ID(0); i < m.count; i++ {
		st := &m.addons[i]
		if st.enabled && st.addon.Name() == name {
			return true
		}
	}
	return false
}

// Process runs one cycle of every enabled addon.
func (m *Manager) Process() {
	for i := ID(0); i < m.count; i++ {
		st := &m.addons[i]
		if !st.enabled {
			continue
		}
		m.guard(i, st.addon.Process)
	}
}

// Draw lets every enabled Drawer paint onto w.
func (m *Manager) Draw(w display.Writer) {
	for i := ID(0); i < m.count; i++ {
		st := &m.addons[i]
		if !st.enabled {
			continue
		}
		d, ok := st.addon.(Drawer)
		if !ok {
			continue
		}
		m.guard(i, func() { d.Draw(w) })
	}
}

// guard runs fn and disables the addon if fn panics.
func (m *Manager) guard(id ID, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			st := &m.addons[id]
			st.enabled = false
			ok = false
			if m.onPanic != nil {
				m.onPanic(PanicInfo{
					ID:    id,
					Name:  st.addon.Name(),
					Value: r,
					Stack: captureStack(),
				})
			}
		}
	}()
	fn()
	return true
}
