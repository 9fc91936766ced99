package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/LISSConsulting/LISSTech.Floater/internal/config"
	"github.com/LISSConsulting/LISSTech.Floater/internal/trace"
	"github.com/LISSConsulting/LISSTech.Floater/internal/tui"
)

// Fallback frame size when stdout is not a terminal.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// openLogger returns the logger for controller warnings. While the TUI owns
// the screen they must not reach stderr, so an empty path discards them.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, "", log.LstdFlags), func() { _ = f.Close() }, nil
}

// openTrace starts a new session trace in cfg.Dir and prunes old ones.
// It returns nil when tracing is disabled.
func openTrace(cfg config.TraceConfig) (*trace.JSONL, error) {
	if cfg.Dir == "" {
		return nil, nil
	}
	rec, err := trace.NewJSONL(cfg.Dir)
	if err != nil {
		return nil, err
	}
	if err := trace.EnforceRetention(cfg.Dir, cfg.Retention); err != nil {
		_ = rec.Close()
		return nil, err
	}
	return rec, nil
}

// demoOptions maps the configuration onto the demo model.
func demoOptions(cfg *config.Config, logger *log.Logger) tui.Options {
	return tui.Options{
		Direction:   cfg.Direction(),
		Offset:      cfg.Offset(),
		Clamp:       cfg.Menu.DynamicOffset,
		Mode:        cfg.Mode(),
		AccentColor: cfg.TUI.AccentColor,
		DocOptions:  cfg.DocumentOptions(),
		Logger:      logger,
	}
}

// terminalSize returns f's size in cells, or 80×24 if f is not a terminal.
func terminalSize(f *os.File) (width, height int) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return defaultWidth, defaultHeight
	}
	return w, h
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// signalContext returns a context that is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
