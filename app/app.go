// Package app wires the HAL, the settings and the addons into the per-cycle
// step the runners drive.
package app

import (
	"fmt"

	"inputhistory/addon"
	"inputhistory/config"
	"inputhistory/display"
	"inputhistory/gamepad"
	"inputhistory/hal"
	"inputhistory/history"
	"inputhistory/internal/buildinfo"
)

type system struct {
	log    hal.Logger
	cfg    config.Config
	pad    *gamepad.Gamepad
	addons *addon.Manager

	screen *display.Framebuffer
	text   display.Writer

	fault string
}

// New loads the addons for cfg and returns the step to run once per cycle.
func New(h hal.HAL, cfg config.Config) (func() error, error) {
	s, err := newSystem(h, cfg)
	if err != nil {
		return nil, err
	}
	return s.step, nil
}

func newSystem(h hal.HAL, cfg config.Config) (*system, error) {
	if h == nil {
		return nil, fmt.Errorf("app: %w", hal.ErrNotImplemented)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	s := &system{
		log:    h.Logger(),
		cfg:    cfg,
		addons: addon.NewManager(),
	}
	s.logf("inputhistory %s", buildinfo.Short())

	var src gamepad.Reader
	if in := h.Input(); in != nil {
		src = in.Gamepad()
	}
	if src == nil {
		s.logf("input: no gamepad source")
	}
	s.pad = gamepad.New(src, s.cfg.Options())
	s.logf("input: mode=%s dpad=%s", s.cfg.Gamepad.InputMode, s.cfg.Gamepad.DpadMode)

	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if fb != nil {
		s.screen = display.NewFramebuffer(fb)
		s.text = display.NewText(s.screen)
	} else {
		s.logf("display: no framebuffer")
	}

	installPanicHandler(s)

	ih := s.cfg.Addons.InputHistory
	if err := s.load(history.New(&s.cfg, s.pad, s.pad)); err != nil {
		return nil, err
	}
	if s.addons.Enabled(history.Name) {
		s.logf("%s: setup length=%d col=%d row=%d strict=%t", history.Name, ih.Length, ih.Col, ih.Row, ih.StrictEdges)
	}
	return s, nil
}

func (s *system) load(a addon.Addon) error {
	ok, err := s.addons.Load(a)
	if err != nil {
		return fmt.Errorf("app: load %s: %w", a.Name(), err)
	}
	if !ok {
		s.logf("%s: not available", a.Name())
	}
	return nil
}

// step runs one cycle: latch the inputs, run the addons, repaint the panel.
func (s *system) step() error {
	s.pad.Poll()
	s.addons.Process()

	if s.screen == nil {
		return nil
	}
	s.screen.Clear()
	if s.fault != "" {
		s.text.WriteString(s.fault, 0, 0, display.Font6x8, true, false)
	}
	s.addons.Draw(s.text)
	if err := s.screen.Display(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

func (s *system) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}
