//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"

	"inputhistory/gamepad"

	"tinygo.org/x/drivers/ssd1306"
)

// Button pins in slot order, the GP2040-CE Pico defaults.
var buttonPins = [gamepad.SlotCount]machine.Pin{
	gamepad.SlotUp:    machine.GP2,
	gamepad.SlotDown:  machine.GP3,
	gamepad.SlotRight: machine.GP4,
	gamepad.SlotLeft:  machine.GP5,
	gamepad.SlotB1:    machine.GP6,
	gamepad.SlotB2:    machine.GP7,
	gamepad.SlotR2:    machine.GP8,
	gamepad.SlotL2:    machine.GP9,
	gamepad.SlotB3:    machine.GP10,
	gamepad.SlotB4:    machine.GP11,
	gamepad.SlotR1:    machine.GP12,
	gamepad.SlotL1:    machine.GP13,
	gamepad.SlotS1:    machine.GP16,
	gamepad.SlotS2:    machine.GP17,
	gamepad.SlotL3:    machine.GP18,
	gamepad.SlotR3:    machine.GP19,
	gamepad.SlotA1:    machine.GP20,
	gamepad.SlotA2:    machine.GP21,
}

type tinyGoHAL struct {
	logger *serialLogger
	gpio   GPIO
	fb     Framebuffer
	pad    gamepad.Reader
}

// New returns a Raspberry Pi Pico HAL.
//
// Logs: USB CDC serial. Display: SSD1306 128x64 on I2C0, SDA GP0 / SCL GP1,
// address 0x3C. Buttons: 18 pins to ground with internal pull-ups.
func New() HAL {
	h := &tinyGoHAL{logger: &serialLogger{out: machine.Serial}}

	pins := make([]GPIOPin, 0, gamepad.SlotCount)
	var ids [gamepad.SlotCount]int
	for slot, p := range buttonPins {
		ids[slot] = len(pins)
		pins = append(pins, &machinePin{name: gamepad.Slot(slot).String(), pin: p})
	}
	h.gpio = newVirtualGPIO(pins)

	pad, err := NewPinPad(h.gpio, ids, true)
	if err != nil {
		h.logger.WriteLineString("hal: buttons: " + err.Error())
	} else {
		h.pad = pad
	}

	bus := machine.I2C0
	if err := bus.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.GP0,
		SCL:       machine.GP1,
	}); err != nil {
		h.logger.WriteLineString("hal: i2c: " + err.Error())
		return h
	}
	oled := ssd1306.NewI2C(bus)
	oled.Configure(ssd1306.Config{
		Width:   PanelWidth,
		Height:  PanelHeight,
		Address: ssd1306.Address_128_32,
	})
	oled.ClearDisplay()
	h.fb = newOLEDFramebuffer(oled)
	return h
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) GPIO() GPIO       { return h.gpio }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Input() Input     { return tinyGoInput{pad: h.pad} }

// Run calls newApp once and then its step every millisecond. It returns
// only if setup or a step fails.
func Run(newApp func(HAL) (func() error, error)) error {
	h := New()
	step, err := newApp(h)
	if err != nil {
		h.Logger().WriteLineString("setup: " + err.Error())
		return err
	}

	ticker := time.NewTicker(1 * time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		if step == nil {
			continue
		}
		if err := step(); err != nil {
			h.Logger().WriteLineString("step: " + err.Error())
			return err
		}
	}
	return nil
}
