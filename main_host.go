//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"inputhistory/app"
	"inputhistory/config"
	"inputhistory/hal"
	"inputhistory/internal/buildinfo"
	"inputhistory/internal/script"
)

type options struct {
	headless    hal.HeadlessConfig
	terminal    hal.TerminalConfig
	term        bool
	configPath  string
	scriptPath  string
	logPath     string
	enable      bool
	printConfig bool
	version     bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Config file (default: built-in settings).")
	flag.BoolVar(&opts.headless.Enabled, "headless", false, "Run without a window.")
	flag.BoolVar(&opts.term, "term", false, "Show the panel in the terminal.")
	flag.IntVar(&opts.headless.Hz, "hz", 60, "Cycle rate in headless and terminal mode.")
	flag.Uint64Var(&opts.headless.Ticks, "ticks", 0, "Stop after N cycles in headless mode (0 = run forever, or the script length).")
	flag.DurationVar(&opts.terminal.Hold, "hold", 150*time.Millisecond, "How long a key stays held in terminal mode.")
	flag.StringVar(&opts.scriptPath, "script", "", "Play a YAML input script instead of the virtual pins (headless).")
	flag.StringVar(&opts.logPath, "log", "", "Write log lines to this file.")
	flag.BoolVar(&opts.enable, "enable", false, "Force the input history addon on.")
	flag.BoolVar(&opts.printConfig, "print-config", false, "Print the effective config and exit.")
	flag.BoolVar(&opts.version, "version", false, "Print the build stamp and exit.")
	flag.Parse()

	if opts.version {
		fmt.Println(buildinfo.String())
		return
	}

	if err := run(opts); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	hcfg, tcfg := opts.headless, opts.terminal

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	if opts.scriptPath != "" {
		s, err := script.Load(os.DirFS(filepath.Dir(opts.scriptPath)), filepath.Base(opts.scriptPath))
		if err != nil {
			return err
		}
		states, err := s.States()
		if err != nil {
			return err
		}
		if opts.configPath == "" {
			cfg = s.Config
		}
		hcfg.Enabled = true
		hcfg.Pad = script.NewPlayer(states)
		if hcfg.Ticks == 0 {
			hcfg.Ticks = uint64(len(states))
		}
	}

	if opts.enable {
		cfg.Addons.InputHistory.Enabled = true
	}
	if opts.printConfig {
		return config.Encode(os.Stdout, cfg)
	}

	var logw io.Writer
	if opts.logPath != "" {
		f, err := os.Create(opts.logPath)
		if err != nil {
			return fmt.Errorf("log: %w", err)
		}
		defer f.Close()
		logw = f
	}

	newApp := func(h hal.HAL) (func() error, error) {
		return app.New(h, cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case opts.term:
		tcfg.Hz = hcfg.Hz
		tcfg.Log = logw
		return hal.RunTerminal(ctx, newApp, tcfg)
	case hcfg.Enabled:
		hcfg.Log = logw
		return hal.RunHeadless(ctx, newApp, hcfg)
	}
	return hal.RunWindow(newApp)
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return loadDefaults()
	}
	return config.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}
