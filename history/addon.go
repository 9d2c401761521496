package history

import (
	"inputhistory/config"
	"inputhistory/display"
	"inputhistory/gamepad"
)

// Name identifies the addon in logs and in the addon manager.
const Name = "inputhistory"

// Addon records the recent inputs and paints them as one line.
type Addon struct {
	cfg       *config.Config
	raw       gamepad.Provider
	processed gamepad.Provider

	length int
	col    int
	row    int

	edges EdgeDetector
	buf   *Buffer
	text  string
}

// New returns an addon reading buttons from raw and directions from
// processed. A nil processed reads directions from raw.
func New(cfg *config.Config, raw, processed gamepad.Provider) *Addon {
	return &Addon{cfg: cfg, raw: raw, processed: processed}
}

func (a *Addon) Name() string { return Name }

func (a *Addon) Available() bool {
	return a.cfg != nil && a.cfg.Display.Enabled && a.cfg.Addons.InputHistory.Enabled
}

// Setup reads the configuration and starts with an empty history.
func (a *Addon) Setup() {
	opts := a.cfg.Addons.InputHistory
	a.length = opts.Length
	a.col = opts.Col
	a.row = opts.Row

	a.edges = EdgeDetector{Strict: opts.StrictEdges}
	a.buf = NewBuffer(a.length)
	a.text = ""
}

// Process samples the inputs and updates the history and the line.
func (a *Addon) Process() {
	if a.buf == nil || a.raw == nil {
		return
	}

	slots := a.edges.Detect(Sample(a.raw, a.processed))
	if len(slots) > 0 {
		set := Labels(a.raw.Options().InputMode)
		labels := make([]string, 0, len(slots))
		for _, slot := range slots {
			labels = append(labels, set.Label(slot))
		}
		a.buf.Append(labels)
	} else {
		a.buf.Trim()
	}

	a.text = Render(a.buf.Entries(), a.length)
}

// Draw paints the line at the configured cell.
func (a *Addon) Draw(w display.Writer) {
	if w == nil {
		return
	}
	w.WriteString(a.text, a.col*display.CellWidth, a.row, display.Font6x8, false, false)
}

// Text returns the line computed by the last Process.
func (a *Addon) Text() string { return a.text }

// Buffer returns the history. It is nil before Setup.
func (a *Addon) Buffer() *Buffer { return a.buf }
