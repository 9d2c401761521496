// Package script reads recorded controller input as YAML and plays it back
// as a gamepad source.
//
//	config:
//	  gamepad: {input_mode: xinput}
//	  addons:
//	    input_history: {enabled: true, length: 10}
//	frames:
//	  - hold: [b1]
//	  - hold: [b1, b2]
//	    repeat: 3
//	  - {}
//	  - axes: {ly: 0}
package script

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"inputhistory/config"
	"inputhistory/gamepad"
)

// ErrUnknownSlot reports a hold entry that names no slot.
var ErrUnknownSlot = errors.New("unknown slot")

// Script is a config plus the frames to play against it.
type Script struct {
	Config config.Config `yaml:"config"`
	Frames []Frame       `yaml:"frames"`
}

// Frame is the controller state for Repeat consecutive cycles.
type Frame struct {
	Hold   []string `yaml:"hold"`
	Axes   Axes     `yaml:"axes"`
	Repeat int      `yaml:"repeat"`
}

// Axes overrides stick positions. Missing axes rest at the centre.
type Axes struct {
	LX *uint16 `yaml:"lx"`
	LY *uint16 `yaml:"ly"`
	RX *uint16 `yaml:"rx"`
	RY *uint16 `yaml:"ry"`
}

// Decode reads a script. The config starts from config.Default.
func Decode(r io.Reader) (*Script, error) {
	s := &Script{Config: config.Default()}
	if err := yaml.NewDecoder(r).Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("script: could not decode: %w", err)
	}
	if err := s.Config.Validate(); err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return s, nil
}

// Load reads the script file name from fsys.
func Load(fsys fs.FS, name string) (*Script, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("script: could not open: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// State returns the controller state of f.
func (f Frame) State() (gamepad.State, error) {
	st := gamepad.Released()
	for _, name := range f.Hold {
		slot, ok := gamepad.ParseSlot(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return st, fmt.Errorf("%q: %w", name, ErrUnknownSlot)
		}
		st.Press(slot)
	}
	setAxis(&st.LX, f.Axes.LX)
	setAxis(&st.LY, f.Axes.LY)
	setAxis(&st.RX, f.Axes.RX)
	setAxis(&st.RY, f.Axes.RY)
	return st, nil
}

func setAxis(dst *uint16, v *uint16) {
	if v != nil {
		*dst = *v
	}
}

// States expands the frames into one state per cycle.
func (s *Script) States() ([]gamepad.State, error) {
	var out []gamepad.State
	for i, f := range s.Frames {
		st, err := f.State()
		if err != nil {
			return nil, fmt.Errorf("script: frame %d: %w", i, err)
		}
		n := f.Repeat
		if n <= 0 {
			n = 1
		}
		for j := 0; j < n; j++ {
			out = append(out, st)
		}
	}
	return out, nil
}
