//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"inputhistory/gamepad"
)

type hostHAL struct {
	logger *hostLogger
	gpio   GPIO
	pins   []*virtualPin
	fb     *hostFramebuffer
	pad    gamepad.Reader
}

// New returns a host HAL whose gamepad is a bank of virtual pins.
func New() HAL {
	return newHost(os.Stdout, nil)
}

// newHost builds a host HAL logging to w. A nil pad reads the virtual pins.
func newHost(w io.Writer, pad gamepad.Reader) *hostHAL {
	h := &hostHAL{
		logger: &hostLogger{w: w},
		fb:     newHostFramebuffer(PanelWidth, PanelHeight),
	}

	pins := make([]GPIOPin, gamepad.SlotCount)
	var ids [gamepad.SlotCount]int
	for i := range pins {
		vp := newVirtualPin(fmt.Sprintf("GP%d", i), GPIOCapInput|GPIOCapOutput|GPIOCapPullUp|GPIOCapPullDown)
		h.pins = append(h.pins, vp)
		pins[i] = vp
		ids[i] = i
	}
	h.gpio = newVirtualGPIO(pins)

	if pad == nil {
		pp, err := NewPinPad(h.gpio, ids, true)
		if err != nil {
			h.logger.WriteLineString("hal: virtual pins: " + err.Error())
		} else {
			pad = pp
		}
	}
	h.pad = pad
	return h
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) GPIO() GPIO       { return h.gpio }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{pad: h.pad} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	pad gamepad.Reader
}

func (in hostInput) Gamepad() gamepad.Reader { return in.pad }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// NewHost returns a host HAL logging to w and reading pad. A nil pad reads
// the virtual pins.
func NewHost(w io.Writer, pad gamepad.Reader) HAL {
	return newHost(w, pad)
}
