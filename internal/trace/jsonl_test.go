package trace_test

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/LISSConsulting/LISSTech.Floater/internal/dom"
	"github.com/LISSConsulting/LISSTech.Floater/internal/floating"
	"github.com/LISSConsulting/LISSTech.Floater/internal/geometry"
	"github.com/LISSConsulting/LISSTech.Floater/internal/trace"
)

// Compile-time check: *JSONL implements Store.
var _ trace.Store = (*trace.JSONL)(nil)

func newStore(t *testing.T) *trace.JSONL {
	t.Helper()
	s, err := trace.NewJSONL(t.TempDir())
	if err != nil {
		t.Fatalf("NewJSONL: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNewJSONL_CreatesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "traces")
	s, err := trace.NewJSONL(dir)
	if err != nil {
		t.Fatalf("NewJSONL: %v", err)
	}
	defer func() { _ = s.Close() }()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 file, got %d", len(entries))
	}
	if filepath.Join(dir, entries[0].Name()) != s.Path() {
		t.Errorf("Path: got %q", s.Path())
	}
	if ext := filepath.Ext(entries[0].Name()); ext != ".jsonl" {
		t.Errorf("expected .jsonl extension, got %q", ext)
	}
}

func TestAppendAndCycleLog(t *testing.T) {
	s := newStore(t)
	now := time.Now().UTC().Truncate(time.Second)
	pos := geometry.Point{Top: 128, Left: 80}

	events := []floating.Event{
		{Kind: floating.EventMount, Strategy: "portal", Direction: geometry.DirectionBottom, At: now},
		{Kind: floating.EventSkip, Strategy: "portal", Reason: floating.ReasonZeroSize, At: now},
		{Kind: floating.EventPosition, Strategy: "portal", Direction: geometry.DirectionBottom, Position: &pos, At: now},
		{Kind: floating.EventUnmount, Strategy: "portal", At: now},
		{Kind: floating.EventMount, Strategy: "portal", Direction: geometry.DirectionTop, At: now},
	}
	for _, e := range events {
		if err := s.Append(e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := s.CycleLog(1)
	if err != nil {
		t.Fatalf("CycleLog(1): %v", err)
	}
	if diff := cmp.Diff(events[:4], got); diff != "" {
		t.Errorf("cycle 1 events (-want +got):\n%s", diff)
	}

	if _, err := s.CycleLog(2); err == nil {
		t.Error("open cycle 2 should not be readable yet")
	}

	cycles, err := s.Cycles()
	if err != nil {
		t.Fatal(err)
	}
	want := []trace.CycleSummary{{
		Number:       1,
		Strategy:     "portal",
		Direction:    geometry.DirectionBottom,
		Positions:    1,
		Skips:        1,
		LastPosition: &pos,
		MountedAt:    now,
		UnmountedAt:  now,
	}}
	if diff := cmp.Diff(want, cycles); diff != "" {
		t.Errorf("cycles (-want +got):\n%s", diff)
	}

	sum, err := s.SessionSummary()
	if err != nil {
		t.Fatal(err)
	}
	if sum.Cycles != 1 || sum.Events != 5 || sum.Positions != 1 || sum.Skips != 1 {
		t.Errorf("summary: %+v", sum)
	}
	if sum.SessionID == "" {
		t.Error("session ID should be set")
	}
}

func TestObserver_RecordsControllerLifecycle(t *testing.T) {
	s := newStore(t)
	doc := dom.NewDocument()
	c := floating.New(doc, floating.Props{
		Child:        &dom.Element{Content: "menu"},
		MenuPosition: geometry.Rect{Top: 0, Left: 0, Right: 32, Bottom: 16},
	}, floating.WithObserver(s.Observer(nil)))

	c.Mount()
	c.Unmount()

	events, err := trace.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var kinds []floating.EventKind
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	want := []floating.EventKind{floating.EventMount, floating.EventPosition, floating.EventUnmount}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("recorded kinds (-want +got):\n%s", diff)
	}
}

func TestObserver_LogsWriteFailure(t *testing.T) {
	s, err := trace.NewJSONL(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	_ = s.Close()

	var buf bytes.Buffer
	s.Observer(log.New(&buf, "", 0))(floating.Event{Kind: floating.EventMount})

	if buf.Len() == 0 {
		t.Error("failed append should be logged")
	}
}

func TestReadFile_SkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.jsonl")
	content := `{"kind":"mount","strategy":"fallback","at":"2026-01-02T03:04:05Z"}
not json

{"kind":"unmount","strategy":"fallback","at":"2026-01-02T03:04:06Z"}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	events, err := trace.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[1].Kind != floating.EventUnmount {
		t.Errorf("events[1].Kind: got %q", events[1].Kind)
	}

	if _, err := trace.ReadFile(filepath.Join(t.TempDir(), "missing.jsonl")); err == nil {
		t.Error("missing file should error")
	}
}

func TestEnforceRetention(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		name := filepath.Join(dir, fmt.Sprintf("%d-abcdef01.jsonl", 1000+i))
		if err := os.WriteFile(name, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	if err := trace.EnforceRetention(dir, 2); err != nil {
		t.Fatalf("EnforceRetention: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	want := []string{"1003-abcdef01.jsonl", "1004-abcdef01.jsonl", "notes.txt"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("remaining files (-want +got):\n%s", diff)
	}

	if err := trace.EnforceRetention(filepath.Join(dir, "missing"), 1); err != nil {
		t.Errorf("missing dir should be ignored, got %v", err)
	}
	if err := trace.EnforceRetention(dir, 0); err != nil {
		t.Errorf("maxKeep 0 should be a no-op, got %v", err)
	}
}
