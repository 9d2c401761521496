// Command histreplay plays a YAML input script through the input history
// addon and prints the line it would show on every cycle.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"inputhistory/display"
	"inputhistory/gamepad"
	"inputhistory/hal"
	"inputhistory/history"
	"inputhistory/internal/script"
)

func main() {
	var (
		inPath  = flag.String("in", "", "Input script (.yaml).")
		length  = flag.Int("length", -1, "Override the character budget (-1 keeps the script's).")
		mode    = flag.String("mode", "", "Override the input mode (hid|switch|xinput|keyboard|ps4|config|...).")
		strict  = flag.Bool("strict", false, "Record only newly pressed slots.")
		changes = flag.Bool("changes", false, "Print only cycles where the line changed.")
		panel   = flag.Bool("panel", false, "Print the final panel as text art.")
	)
	flag.Parse()

	if *inPath == "" {
		fatalf("usage: histreplay -in script.yaml [-length N] [-mode xinput] [-strict] [-changes] [-panel]")
	}

	s, err := script.Load(os.DirFS(filepath.Dir(*inPath)), filepath.Base(*inPath))
	if err != nil {
		fatalf("%v", err)
	}
	if *length >= 0 {
		s.Config.Addons.InputHistory.Length = *length
	}
	if *mode != "" {
		var m gamepad.InputMode
		if err := m.UnmarshalText([]byte(*mode)); err != nil {
			fatalf("mode: %v", err)
		}
		s.Config.Gamepad.InputMode = m
	}
	if *strict {
		s.Config.Addons.InputHistory.StrictEdges = true
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	a, err := replay(s, out, *changes)
	if err != nil {
		out.Flush()
		fatalf("replay: %v", err)
	}
	if *panel {
		if err := printPanel(out, a); err != nil {
			out.Flush()
			fatalf("panel: %v", err)
		}
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// replay runs every scripted cycle and writes "cycle<TAB>line" rows.
func replay(s *script.Script, w io.Writer, changesOnly bool) (*history.Addon, error) {
	states, err := s.States()
	if err != nil {
		return nil, err
	}

	cfg := s.Config
	cfg.Addons.InputHistory.Enabled = true
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pad := gamepad.New(script.NewPlayer(states), cfg.Options())
	a := history.New(&cfg, pad, pad)
	if !a.Available() {
		return nil, fmt.Errorf("%s: display disabled", history.Name)
	}
	a.Setup()

	last := ""
	for i := range states {
		pad.Poll()
		a.Process()
		line := a.Text()
		if changesOnly && line == last {
			continue
		}
		last = line
		if _, err := fmt.Fprintf(w, "%d\t%q\n", i, line); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// textPanel is a monochrome panel that prints as text.
type textPanel struct {
	px [hal.PanelHeight][hal.PanelWidth]bool
}

func (p *textPanel) Size() (x, y int16) { return hal.PanelWidth, hal.PanelHeight }
func (p *textPanel) Display() error     { return nil }

func (p *textPanel) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || int(x) >= hal.PanelWidth || int(y) >= hal.PanelHeight {
		return
	}
	p.px[y][x] = c.R != 0 || c.G != 0 || c.B != 0
}

func (p *textPanel) WriteTo(w io.Writer) (int64, error) {
	var n int64
	row := make([]byte, hal.PanelWidth+1)
	row[hal.PanelWidth] = '\n'
	for y := range p.px {
		for x, on := range p.px[y] {
			row[x] = '.'
			if on {
				row[x] = '#'
			}
		}
		m, err := w.Write(row)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func printPanel(w io.Writer, a *history.Addon) error {
	p := &textPanel{}
	a.Draw(display.NewText(p))
	_, err := p.WriteTo(w)
	return err
}
