//go:build tinygo && baremetal

package hal

import (
	"image/color"
	"machine"

	"inputhistory/gamepad"

	"tinygo.org/x/drivers/ssd1306"
)

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoInput struct {
	pad gamepad.Reader
}

func (in tinyGoInput) Gamepad() gamepad.Reader { return in.pad }

type serialLogger struct {
	out machine.Serialer
}

func (l *serialLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.out.WriteByte(s[i])
	}
	l.out.WriteByte('\r')
	l.out.WriteByte('\n')
}

func (l *serialLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.out.WriteByte(b[i])
	}
	l.out.WriteByte('\r')
	l.out.WriteByte('\n')
}

type machinePin struct {
	name string
	pin  machine.Pin
}

func (p *machinePin) Name() string { return p.name }
func (p *machinePin) Caps() GPIOCaps {
	return GPIOCapInput | GPIOCapOutput | GPIOCapPullUp | GPIOCapPullDown
}

func (p *machinePin) Configure(mode GPIOMode, pull GPIOPull) error {
	var m machine.PinMode
	switch mode {
	case GPIOModeOutput:
		m = machine.PinOutput
	case GPIOModeInput:
		switch pull {
		case GPIOPullUp:
			m = machine.PinInputPullup
		case GPIOPullDown:
			m = machine.PinInputPulldown
		default:
			m = machine.PinInput
		}
	default:
		return ErrNotImplemented
	}
	p.pin.Configure(machine.PinConfig{Mode: m})
	return nil
}

func (p *machinePin) Read() (bool, error) { return p.pin.Get(), nil }

func (p *machinePin) Write(level bool) error {
	p.pin.Set(level)
	return nil
}

// oledFramebuffer keeps an RGB565 copy of the panel and pushes it to the
// monochrome OLED on Present.
type oledFramebuffer struct {
	dev    *ssd1306.Device
	width  int
	height int
	stride int
	buf    []byte
}

func newOLEDFramebuffer(dev *ssd1306.Device) *oledFramebuffer {
	w, h := dev.Size()
	stride := int(w) * 2
	return &oledFramebuffer{
		dev:    dev,
		width:  int(w),
		height: int(h),
		stride: stride,
		buf:    make([]byte, stride*int(h)),
	}
}

func (f *oledFramebuffer) Width() int          { return f.width }
func (f *oledFramebuffer) Height() int         { return f.height }
func (f *oledFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *oledFramebuffer) StrideBytes() int    { return f.stride }
func (f *oledFramebuffer) Buffer() []byte      { return f.buf }

func (f *oledFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := RGB565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

var (
	oledOn  = color.RGBA{255, 255, 255, 255}
	oledOff = color.RGBA{0, 0, 0, 255}
)

func (f *oledFramebuffer) Present() error {
	for y := 0; y < f.height; y++ {
		row := y * f.stride
		for x := 0; x < f.width; x++ {
			c := oledOff
			if lit(f.buf, row+x*2) {
				c = oledOn
			}
			f.dev.SetPixel(int16(x), int16(y), c)
		}
	}
	return f.dev.Display()
}
