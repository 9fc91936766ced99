package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LISSConsulting/LISSTech.Floater/internal/floating"
	"github.com/LISSConsulting/LISSTech.Floater/internal/geometry"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"menu.direction", cfg.Menu.Direction, "bottom"},
		{"menu.offset_top", cfg.Menu.OffsetTop, 0.0},
		{"menu.dynamic_offset", cfg.Menu.DynamicOffset, false},
		{"mount.strategy", cfg.Mount.Strategy, "auto"},
		{"host.cell_width", cfg.Host.CellWidth, 8.0},
		{"host.cell_height", cfg.Host.CellHeight, 16.0},
		{"host.portal", cfg.Host.Portal, true},
		{"tui.accent_color", cfg.TUI.AccentColor, DefaultAccentColor},
		{"trace.dir", cfg.Trace.Dir, ""},
		{"trace.retention", cfg.Trace.Retention, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		path := writeConfig(t, `
[menu]
direction = "left"
offset_top = 2.0
offset_left = -3.5
dynamic_offset = true

[mount]
strategy = "fallback"

[host]
cell_width = 10.0
cell_height = 20.0
portal = false

[tui]
accent_color = "#112233"
log_file = "floater.log"

[trace]
dir = ".floater/traces"
retention = 5
`)

		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}

		tests := []struct {
			name string
			got  any
			want any
		}{
			{"direction", cfg.Direction(), geometry.DirectionLeft},
			{"offset", cfg.Offset(), geometry.FixedOffset{Top: 2, Left: -3.5}},
			{"dynamic_offset", cfg.Menu.DynamicOffset, true},
			{"mode", cfg.Mode(), floating.ModeFallback},
			{"cell_width", cfg.Host.CellWidth, 10.0},
			{"portal", cfg.Host.Portal, false},
			{"accent", cfg.TUI.AccentColor, "#112233"},
			{"log_file", cfg.TUI.LogFile, "floater.log"},
			{"trace.dir", cfg.Trace.Dir, ".floater/traces"},
			{"trace.retention", cfg.Trace.Retention, 5},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if tt.got != tt.want {
					t.Errorf("got %v, want %v", tt.got, tt.want)
				}
			})
		}
		if n := len(cfg.DocumentOptions()); n != 2 {
			t.Errorf("DocumentOptions: got %d options", n)
		}
	})

	t.Run("partial config uses defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "[menu]\ndirection = \"top\"\n"))
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Direction() != geometry.DirectionTop {
			t.Errorf("direction: got %q", cfg.Direction())
		}
		if cfg.Mode() != floating.ModeAuto {
			t.Errorf("mode: got %q, want auto (default)", cfg.Mode())
		}
		if cfg.Host.CellHeight != 16 {
			t.Errorf("cell_height: got %v, want 16 (default)", cfg.Host.CellHeight)
		}
	})

	t.Run("unknown keys rejected", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[menu]\ndirecton = \"top\"\n"))
		if err == nil || !strings.Contains(err.Error(), "menu.directon") {
			t.Errorf("expected unknown key error, got %v", err)
		}
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[menu]\ndirection = \"up\"\n[mount]\nstrategy = \"magic\"\n"))
		if err == nil {
			t.Fatal("expected validation error")
		}
		for _, want := range []string{"menu.direction", "mount.strategy"} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("error %q should mention %s", err, want)
			}
		}
	})

	t.Run("missing file returns error", func(t *testing.T) {
		if _, err := Load("/nonexistent/floater.toml"); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("invalid toml returns error", func(t *testing.T) {
		if _, err := Load(writeConfig(t, "not valid [[[ toml")); err == nil {
			t.Error("expected error for invalid TOML")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero cell width", func(c *Config) { c.Host.CellWidth = 0 }, "host.cell_width"},
		{"negative cell height", func(c *Config) { c.Host.CellHeight = -1 }, "host.cell_height"},
		{"bad accent", func(c *Config) { c.TUI.AccentColor = "indigo" }, "tui.accent_color"},
		{"negative retention", func(c *Config) { c.Trace.Retention = -1 }, "trace.retention"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %s, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadAutoDiscovery(t *testing.T) {
	t.Run("finds floater.toml in parent directory", func(t *testing.T) {
		root := t.TempDir()
		child := filepath.Join(root, "sub", "dir")
		if err := os.MkdirAll(child, 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(root, FileName), []byte("[menu]\ndirection = \"right\"\n"), 0644); err != nil {
			t.Fatal(err)
		}

		chdirTest(t, child)

		cfg, err := Load("")
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Direction() != geometry.DirectionRight {
			t.Errorf("direction: got %q, want right", cfg.Direction())
		}
	})

	t.Run("not found anywhere", func(t *testing.T) {
		dir := t.TempDir()
		chdirTest(t, dir)

		if _, err := Load(""); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}

		cfg, err := LoadOrDefault("")
		if err != nil {
			t.Fatalf("LoadOrDefault: %v", err)
		}
		if cfg.Direction() != geometry.DirectionBottom {
			t.Errorf("fallback direction: got %q", cfg.Direction())
		}
	})
}

func TestInitFile(t *testing.T) {
	t.Run("creates floater.toml", func(t *testing.T) {
		dir := t.TempDir()
		path, err := InitFile(dir)
		if err != nil {
			t.Fatal(err)
		}
		if filepath.Base(path) != FileName {
			t.Errorf("expected %s, got %s", FileName, filepath.Base(path))
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("generated file is not valid: %v", err)
		}
		if cfg.Mode() != floating.ModeAuto {
			t.Errorf("default strategy: got %q", cfg.Mode())
		}
	})

	t.Run("refuses to overwrite existing", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, FileName), []byte("existing"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := InitFile(dir); err == nil {
			t.Errorf("expected error when %s already exists", FileName)
		}
	})
}
