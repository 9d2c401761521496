// Package config holds the persisted settings read by the addons at setup.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"

	"inputhistory/gamepad"
)

// Character grid of the 128x64 panel with the 6x8 font.
const (
	Columns = 21
	Rows    = 8
)

// ErrInvalid reports a setting outside its allowed range.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Display Display `yaml:"display"`
	Gamepad Gamepad `yaml:"gamepad"`
	Addons  Addons  `yaml:"addons"`
}

type Display struct {
	Enabled bool `yaml:"enabled"`
}

type Gamepad struct {
	InputMode gamepad.InputMode `yaml:"input_mode"`
	DpadMode  gamepad.DpadMode  `yaml:"dpad_mode"`
}

type Addons struct {
	InputHistory InputHistory `yaml:"input_history"`
}

// InputHistory configures the input history line.
type InputHistory struct {
	Enabled bool `yaml:"enabled"`
	// Length is the character budget of the line.
	Length int `yaml:"length"`
	Col    int `yaml:"col"`
	Row    int `yaml:"row"`
	// StrictEdges records only newly pressed slots instead of every held
	// slot on each change.
	StrictEdges bool `yaml:"strict_edges"`
}

// Default returns the factory settings.
func Default() Config {
	return Config{
		Display: Display{Enabled: true},
		Gamepad: Gamepad{
			InputMode: gamepad.InputModeXInput,
			DpadMode:  gamepad.DpadDigital,
		},
		Addons: Addons{
			InputHistory: InputHistory{
				Enabled: false,
				Length:  21,
				Col:     0,
				Row:     7,
			},
		},
	}
}

// Options returns the gamepad options the config selects.
func (c *Config) Options() gamepad.Options {
	return gamepad.Options{InputMode: c.Gamepad.InputMode, DpadMode: c.Gamepad.DpadMode}
}

// Validate normalizes c in place. A negative length becomes 0, which renders
// an empty line. A position off the character grid is an error.
func (c *Config) Validate() error {
	ih := &c.Addons.InputHistory
	if ih.Length < 0 {
		ih.Length = 0
	}
	if ih.Col < 0 || ih.Col >= Columns {
		return fmt.Errorf("input_history.col %d outside 0..%d: %w", ih.Col, Columns-1, ErrInvalid)
	}
	if ih.Row < 0 || ih.Row >= Rows {
		return fmt.Errorf("input_history.row %d outside 0..%d: %w", ih.Row, Rows-1, ErrInvalid)
	}
	return nil
}

// Decode reads YAML from r over the defaults and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("could not decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the config file name from fsys.
func Load(fsys fs.FS, name string) (Config, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return Config{}, fmt.Errorf("could not open: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", name, err)
	}
	return cfg, nil
}

// Encode writes cfg as YAML.
func Encode(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("could not encode: %w", err)
	}
	return enc.Close()
}
