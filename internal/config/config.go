// Package config parses floater.toml configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/LISSConsulting/LISSTech.Floater/internal/dom"
	"github.com/LISSConsulting/LISSTech.Floater/internal/floating"
	"github.com/LISSConsulting/LISSTech.Floater/internal/geometry"
)

// FileName is the configuration file looked up by Load.
const FileName = "floater.toml"

// DefaultAccentColor is the default TUI accent color (indigo).
const DefaultAccentColor = "#7D56F4"

// ErrNotFound is returned by Load when no floater.toml exists in the
// current directory or any parent.
var ErrNotFound = errors.New("config: " + FileName + " not found")

// hexColorRe matches a 6-digit hex color string like "#7D56F4".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is the top-level floater.toml configuration.
type Config struct {
	Menu  MenuConfig  `toml:"menu"`
	Mount MountConfig `toml:"mount"`
	Host  HostConfig  `toml:"host"`
	TUI   TUIConfig   `toml:"tui"`
	Trace TraceConfig `toml:"trace"`
}

// MenuConfig sets the default floating menu placement.
type MenuConfig struct {
	Direction     string  `toml:"direction"`
	OffsetTop     float64 `toml:"offset_top"`
	OffsetLeft    float64 `toml:"offset_left"`
	DynamicOffset bool    `toml:"dynamic_offset"` // center the caret on the trigger instead of a fixed offset
}

// MountConfig selects the mount strategy.
type MountConfig struct {
	Strategy string `toml:"strategy"` // auto, portal or fallback
}

// HostConfig describes the document host.
type HostConfig struct {
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
	Portal     bool    `toml:"portal"`
}

// TUIConfig controls the terminal UI appearance.
type TUIConfig struct {
	AccentColor string `toml:"accent_color"`
	LogFile     string `toml:"log_file"` // warnings go here while the TUI owns the screen; empty = discard
}

// TraceConfig controls the JSONL event trace.
type TraceConfig struct {
	Dir       string `toml:"dir"`       // empty = tracing disabled
	Retention int    `toml:"retention"` // number of session traces to keep; 0 = unlimited
}

// Validate checks the configuration for issues that would cause confusing
// runtime behavior. It returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if _, err := geometry.ParseDirection(c.Menu.Direction); err != nil {
		errs = append(errs, fmt.Errorf("menu.direction must be left, top, right or bottom"))
	}
	if _, err := floating.ParseMode(c.Mount.Strategy); err != nil {
		errs = append(errs, fmt.Errorf("mount.strategy must be auto, portal or fallback"))
	}
	if c.Host.CellWidth <= 0 {
		errs = append(errs, fmt.Errorf("host.cell_width must be > 0"))
	}
	if c.Host.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("host.cell_height must be > 0"))
	}
	if c.TUI.AccentColor != "" && !hexColorRe.MatchString(c.TUI.AccentColor) {
		errs = append(errs, fmt.Errorf("tui.accent_color must be a hex color (e.g. \"#7D56F4\")"))
	}
	if c.Trace.Retention < 0 {
		errs = append(errs, fmt.Errorf("trace.retention must be >= 0 (0 = unlimited)"))
	}

	return errors.Join(errs...)
}

// Direction returns the validated default direction.
func (c *Config) Direction() geometry.Direction {
	d, err := geometry.ParseDirection(c.Menu.Direction)
	if err != nil {
		return geometry.DirectionBottom
	}
	return d
}

// Mode returns the validated mount strategy.
func (c *Config) Mode() floating.Mode {
	m, err := floating.ParseMode(c.Mount.Strategy)
	if err != nil {
		return floating.ModeAuto
	}
	return m
}

// Offset returns the configured fixed offset.
func (c *Config) Offset() geometry.FixedOffset {
	return geometry.FixedOffset{Top: c.Menu.OffsetTop, Left: c.Menu.OffsetLeft}
}

// DocumentOptions returns the dom options matching [host].
func (c *Config) DocumentOptions() []dom.Option {
	return []dom.Option{
		dom.WithCellSize(c.Host.CellWidth, c.Host.CellHeight),
		dom.WithPortal(c.Host.Portal),
	}
}

// Defaults returns a Config with sensible defaults.
func Defaults() Config {
	return Config{
		Menu: MenuConfig{
			Direction: string(geometry.DirectionBottom),
		},
		Mount: MountConfig{
			Strategy: string(floating.ModeAuto),
		},
		Host: HostConfig{
			CellWidth:  dom.DefaultCellWidth,
			CellHeight: dom.DefaultCellHeight,
			Portal:     true,
		},
		TUI: TUIConfig{
			AccentColor: DefaultAccentColor,
		},
		Trace: TraceConfig{
			Dir:       "",
			Retention: 20,
		},
	}
}

// Load reads floater.toml from the given path. If path is empty, it walks up
// from the current working directory looking for floater.toml and returns
// ErrNotFound if there is none. Unknown keys (likely typos) are an error.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := findConfig()
		if err != nil {
			return nil, err
		}
		path = found
	}

	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, joinKeys(keys))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadOrDefault behaves like Load but falls back to Defaults when path is
// empty and no floater.toml is found.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if path == "" && errors.Is(err, ErrNotFound) {
		d := Defaults()
		return &d, nil
	}
	return cfg, err
}

// joinKeys formats a slice of key names for display.
func joinKeys(keys []string) string {
	return strings.Join(keys, ", ")
}

// findConfig walks up from the current directory looking for floater.toml.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w (searched up from %s)", ErrNotFound, dir)
		}
		dir = parent
	}
}

// InitFile writes a default floater.toml template to the given directory.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: %s already exists at %s", FileName, path)
	}

	content := `# floater.toml: floating menu configuration

[menu]
direction = "bottom"   # left, top, right or bottom
offset_top = 0.0       # px added along the anchoring axis
offset_left = 0.0      # px added across the anchoring axis
dynamic_offset = false # compute the offset from the measured menu instead

[mount]
strategy = "auto"      # auto, portal or fallback

[host]
cell_width = 8.0       # px per terminal column
cell_height = 16.0     # px per terminal row
portal = true          # host supports detached-node portals

[tui]
accent_color = "#7D56F4"
log_file = ""          # warnings while the TUI is running; empty = discard

[trace]
dir = ""               # write JSONL lifecycle traces here; empty = disabled
retention = 20         # number of traces to keep; 0 = unlimited
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}
