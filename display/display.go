// Package display paints text onto the status panel.
package display

import (
	"image/color"

	"inputhistory/fonts/font6x8"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Font selects the bitmap font of a WriteString call.
type Font uint8

const (
	Font6x8 Font = iota
)

// Cell size of Font6x8.
const (
	CellWidth  = font6x8.Width
	LineHeight = font6x8.Height
)

// Writer is the text primitive of the panel.
//
// x is a pixel column. y is a text line: line n covers pixel rows
// n*LineHeight through n*LineHeight+LineHeight-1. invert paints dark text on a
// lit background. render pushes the panel to the device after painting.
type Writer interface {
	WriteString(s string, x, y int, f Font, invert, render bool)
}

type filler interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

var (
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
)

// Text implements Writer on any tinygo displayer.
type Text struct {
	d drivers.Displayer
}

func NewText(d drivers.Displayer) *Text {
	return &Text{d: d}
}

func (t *Text) WriteString(s string, x, y int, f Font, invert, render bool) {
	if t.d == nil || s == "" {
		return
	}

	font := fonter(f)
	fg := white
	if invert {
		fg = black
		t.fill(int16(x), int16(y*LineHeight), int16(len(s)*CellWidth), LineHeight, white)
	}

	tinyfont.WriteLine(t.d, font, int16(x), int16(y*LineHeight+font6x8.Baseline), s, fg)
	if render {
		_ = t.d.Display()
	}
}

func (t *Text) fill(x, y, w, h int16, c color.RGBA) {
	if f, ok := t.d.(filler); ok {
		_ = f.FillRectangle(x, y, w, h, c)
		return
	}
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			t.d.SetPixel(px, py, c)
		}
	}
}

func fonter(f Font) tinyfont.Fonter {
	_ = f // Font6x8 is the only font.
	return font6x8.Font
}
