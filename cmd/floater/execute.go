package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/LISSConsulting/LISSTech.Floater/internal/config"
	"github.com/LISSConsulting/LISSTech.Floater/internal/floating"
	"github.com/LISSConsulting/LISSTech.Floater/internal/geometry"
	"github.com/LISSConsulting/LISSTech.Floater/internal/trace"
	"github.com/LISSConsulting/LISSTech.Floater/internal/tui"
)

// executeDemo runs the interactive playground until the user quits. A trace
// summary is written to w afterwards when tracing is enabled.
func executeDemo(w io.Writer, cfg *config.Config) error {
	if !isTerminal(os.Stdout) {
		return errors.New("demo needs an interactive terminal; use 'floater preview' instead")
	}

	logger, closeLog, err := openLogger(cfg.TUI.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	rec, err := openTrace(cfg.Trace)
	if err != nil {
		return err
	}

	opts := demoOptions(cfg, logger)
	if rec != nil {
		defer func() { _ = rec.Close() }()
		opts.Observer = rec.Observer(logger)
	}

	ctx, cancel := signalContext()
	defer cancel()

	program := tea.NewProgram(tui.New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("demo: %w", err)
	}

	if rec != nil {
		sum, err := rec.SessionSummary()
		if err != nil {
			return err
		}
		fmt.Fprint(w, formatSessionSummary(rec.Path(), sum))
	}
	return nil
}

// placeRequest is the input of a one-shot position computation.
type placeRequest struct {
	Ref       geometry.Rect
	Size      geometry.Size
	Direction geometry.Direction
	Offset    geometry.Point
	ScrollY   float64
}

// placement is what `floater place` reports.
type placement struct {
	Direction geometry.Direction `json:"direction" yaml:"direction"`
	Ref       geometry.Rect      `json:"ref" yaml:"ref"`
	Size      geometry.Size      `json:"size" yaml:"size"`
	Offset    geometry.Point     `json:"offset" yaml:"offset"`
	ScrollY   float64            `json:"scroll_y" yaml:"scroll_y"`
	Position  geometry.Point     `json:"position" yaml:"position"`
}

func placeRequestFromFlags(cmd *cobra.Command) (placeRequest, error) {
	var req placeRequest
	refFlag, _ := cmd.Flags().GetString("ref")
	sizeFlag, _ := cmd.Flags().GetString("size")
	dirFlag, _ := cmd.Flags().GetString("direction")
	offsetFlag, _ := cmd.Flags().GetString("offset")
	req.ScrollY, _ = cmd.Flags().GetFloat64("scroll")

	var err error
	if req.Ref, err = parseRect(refFlag); err != nil {
		return req, err
	}
	if req.Size, err = parseSize(sizeFlag); err != nil {
		return req, err
	}
	if req.Offset, err = parsePoint(offsetFlag); err != nil {
		return req, err
	}
	if req.Direction, err = geometry.ParseDirection(dirFlag); err != nil {
		return req, err
	}
	return req, nil
}

// executePlace computes the position for req and writes it in format.
func executePlace(w io.Writer, req placeRequest, format string) error {
	pos, ok := geometry.ComputeFloatingPosition(geometry.Params{
		MenuSize:  req.Size,
		RefRect:   req.Ref,
		Offset:    req.Offset,
		Direction: req.Direction,
		ScrollY:   req.ScrollY,
	})
	if !ok {
		return fmt.Errorf("unknown direction %q", req.Direction)
	}
	p := placement{
		Direction: req.Direction,
		Ref:       req.Ref,
		Size:      req.Size,
		Offset:    req.Offset,
		ScrollY:   req.ScrollY,
		Position:  pos,
	}

	switch format {
	case "", "text":
		_, err := fmt.Fprintf(w, "%s: left=%gpx top=%gpx\n", p.Direction, p.Position.Left, p.Position.Top)
		return err
	case "json":
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal placement: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "yaml":
		data, err := yaml.Marshal(p)
		if err != nil {
			return fmt.Errorf("marshal placement: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

// previewRequest selects the frame size and which menu `floater preview` opens.
type previewRequest struct {
	Width, Height int
	Trigger       int
}

// executePreview opens one menu on a headless demo model and writes the
// composed frame to w.
func executePreview(w io.Writer, cfg *config.Config, req previewRequest) error {
	if req.Width < tui.MinWidth || req.Height < tui.MinHeight {
		return fmt.Errorf("preview needs at least %d×%d cells, got %d×%d", tui.MinWidth, tui.MinHeight, req.Width, req.Height)
	}

	opts := demoOptions(cfg, log.New(os.Stderr, "floater: ", 0))
	m := tui.New(opts).Resize(req.Width, req.Height)
	if req.Trigger < 0 || req.Trigger >= m.Triggers() {
		return fmt.Errorf("trigger %d out of range (0..%d)", req.Trigger, m.Triggers()-1)
	}

	m = m.Select(req.Trigger).Toggle()
	_, err := fmt.Fprintln(w, m.View())
	m.Toggle()
	return err
}

// showTrace prints every event recorded in a trace file.
func showTrace(w io.Writer, path string) error {
	events, err := trace.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, formatTrace(filepath.Base(path), events))
	return err
}

// listTraces prints one line per trace file in dir, oldest first.
func listTraces(w io.Writer, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read trace dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".jsonl") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		fmt.Fprintf(w, "No traces found in %s\n", dir)
		return nil
	}
	for _, name := range names {
		events, err := trace.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		c := countEvents(events)
		fmt.Fprintf(w, "  %-32s  %3d events  %2d cycles  %3d positions\n", name, len(events), c.cycles, c.positions)
	}
	return nil
}

type eventCounts struct {
	cycles, positions, skips int
}

func countEvents(events []floating.Event) eventCounts {
	var c eventCounts
	for _, e := range events {
		switch e.Kind {
		case floating.EventMount:
			c.cycles++
		case floating.EventPosition:
			c.positions++
		case floating.EventSkip:
			c.skips++
		}
	}
	return c
}

// formatTrace renders a trace file's events under a heading.
func formatTrace(name string, events []floating.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Trace %s\n", name)
	b.WriteString(strings.Repeat("─", len("Trace ")+len(name)) + "\n")
	if len(events) == 0 {
		b.WriteString("  (no events)\n")
		return b.String()
	}
	theme := tui.NewTheme("")
	for _, e := range events {
		b.WriteString("  " + theme.RenderEvent(e) + "\n")
	}
	c := countEvents(events)
	fmt.Fprintf(&b, "\n%d events, %d mount cycles, %d positions, %d skips\n", len(events), c.cycles, c.positions, c.skips)
	return b.String()
}

// formatSessionSummary renders the end-of-demo trace summary.
func formatSessionSummary(path string, s trace.SessionSummary) string {
	return fmt.Sprintf("Trace written to %s\n  %d events, %d completed mount cycles, %d positions, %d skips\n",
		path, s.Events, s.Cycles, s.Positions, s.Skips)
}

// parseFloats splits s on sep into exactly n numbers.
func parseFloats(s, sep string, n int) ([]float64, error) {
	parts := strings.Split(s, sep)
	if len(parts) != n {
		return nil, fmt.Errorf("want %d values separated by %q, got %q", n, sep, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseRect parses "top,left,right,bottom".
func parseRect(s string) (geometry.Rect, error) {
	v, err := parseFloats(s, ",", 4)
	if err != nil {
		return geometry.Rect{}, fmt.Errorf("--ref: %w", err)
	}
	return geometry.Rect{Top: v[0], Left: v[1], Right: v[2], Bottom: v[3]}, nil
}

// parseSize parses "WIDTHxHEIGHT".
func parseSize(s string) (geometry.Size, error) {
	v, err := parseFloats(strings.ToLower(s), "x", 2)
	if err != nil {
		return geometry.Size{}, fmt.Errorf("--size: %w", err)
	}
	return geometry.Size{Width: v[0], Height: v[1]}, nil
}

// parsePoint parses "top,left".
func parsePoint(s string) (geometry.Point, error) {
	v, err := parseFloats(s, ",", 2)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("--offset: %w", err)
	}
	return geometry.Point{Top: v[0], Left: v[1]}, nil
}
