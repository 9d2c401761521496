package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"inputhistory/gamepad"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	ih := cfg.Addons.InputHistory
	if ih.Enabled || ih.Length != 21 || ih.Col != 0 || ih.Row != 7 {
		t.Fatalf("Default().InputHistory = %+v", ih)
	}
	if !cfg.Display.Enabled {
		t.Fatal("display should be enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate(default): %v", err)
	}
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"pad.yaml": &fstest.MapFile{Data: []byte(`
gamepad:
  input_mode: switch
  dpad_mode: left_analog
addons:
  input_history:
    enabled: true
    length: 10
    row: 2
`)},
	}

	cfg, err := Load(fsys, "pad.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Gamepad.InputMode != gamepad.InputModeSwitch {
		t.Fatalf("InputMode = %s, want switch", cfg.Gamepad.InputMode)
	}
	if cfg.Gamepad.DpadMode != gamepad.DpadLeftAnalog {
		t.Fatalf("DpadMode = %s, want left_analog", cfg.Gamepad.DpadMode)
	}
	ih := cfg.Addons.InputHistory
	if !ih.Enabled || ih.Length != 10 || ih.Row != 2 || ih.Col != 0 {
		t.Fatalf("InputHistory = %+v", ih)
	}
	if !cfg.Display.Enabled {
		t.Fatal("absent display section should keep the default")
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "nope.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDecodeEmpty(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Decode(empty): %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Decode(empty) = %+v, want defaults", cfg)
	}
}

func TestDecodeUnknownMode(t *testing.T) {
	_, err := Decode(strings.NewReader("gamepad:\n  input_mode: n64\n"))
	if err == nil {
		t.Fatal("expected error for unknown input mode")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		edit    func(*InputHistory)
		wantErr bool
		wantLen int
	}{
		{name: "negative length clamps", edit: func(ih *InputHistory) { ih.Length = -5 }, wantLen: 0},
		{name: "zero length", edit: func(ih *InputHistory) { ih.Length = 0 }, wantLen: 0},
		{name: "last column", edit: func(ih *InputHistory) { ih.Col = Columns - 1 }, wantLen: 21},
		{name: "column off grid", edit: func(ih *InputHistory) { ih.Col = Columns }, wantErr: true},
		{name: "negative row", edit: func(ih *InputHistory) { ih.Row = -1 }, wantErr: true},
		{name: "row off grid", edit: func(ih *InputHistory) { ih.Row = Rows }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.edit(&cfg.Addons.InputHistory)
			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalid) {
					t.Fatalf("Validate() = %v, want ErrInvalid", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() = %v", err)
			}
			if got := cfg.Addons.InputHistory.Length; got != tt.wantLen {
				t.Fatalf("Length = %d, want %d", got, tt.wantLen)
			}
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	cfg := Default()
	cfg.Gamepad.InputMode = gamepad.InputModePS4
	cfg.Addons.InputHistory.StrictEdges = true

	var buf bytes.Buffer
	if err := Encode(&buf, cfg); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(buf.String(), "input_mode: ps4") {
		t.Fatalf("encoded config missing mode name:\n%s", buf.String())
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != cfg {
		t.Fatalf("Decode(Encode()) = %+v, want %+v", got, cfg)
	}
}
