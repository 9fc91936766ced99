package trace

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/LISSConsulting/LISSTech.Floater/internal/floating"
)

// JSONL is a Store backed by an append-only JSONL file. Each line is one
// JSON-encoded floating.Event. The file is synced after every Append.
//
// Session files are named "<unix-timestamp>-<short-uuid>.jsonl" so that
// names sort chronologically for retention.
type JSONL struct {
	file      *os.File
	path      string
	mu        sync.Mutex
	idx       *fileIndex
	sessionID string
	startedAt time.Time
	pos       int64 // current write position in the file
}

// NewJSONL creates a new session log in dir, creating dir if needed.
func NewJSONL(dir string) (*JSONL, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("trace: mkdir %q: %w", dir, err)
	}
	now := time.Now()
	sessionID := fmt.Sprintf("%d-%s", now.Unix(), uuid.New().String()[:8])
	path := filepath.Join(dir, sessionID+".jsonl")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("trace: open %q: %w", path, err)
	}
	pos, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("trace: seek: %w", err)
	}
	return &JSONL{
		file:      f,
		path:      path,
		idx:       newFileIndex(),
		sessionID: sessionID,
		startedAt: now,
		pos:       pos,
	}, nil
}

// Path returns the session file path.
func (j *JSONL) Path() string { return j.path }

// Append serializes e as a JSON line, writes it, and syncs.
// It is safe to call from multiple goroutines.
func (j *JSONL) Append(e floating.Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("trace: marshal: %w", err)
	}
	data = append(data, '\n')

	j.mu.Lock()
	defer j.mu.Unlock()

	lineOffset := j.pos
	if _, err := j.file.Write(data); err != nil {
		return fmt.Errorf("trace: write: %w", err)
	}
	if err := j.file.Sync(); err != nil {
		return fmt.Errorf("trace: sync: %w", err)
	}
	lineLen := int64(len(data))
	j.pos += lineLen
	j.idx.onAppend(e, lineOffset, lineLen)
	return nil
}

// Observer returns a floating.Observer that appends every event. Write
// failures are logged and dropped so the UI keeps running.
func (j *JSONL) Observer(logger *log.Logger) floating.Observer {
	if logger == nil {
		logger = log.Default()
	}
	return func(e floating.Event) {
		if err := j.Append(e); err != nil {
			logger.Printf("trace: dropping %s event: %v", e.Kind, err)
		}
	}
}

// Close closes the underlying file.
func (j *JSONL) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.file.Close()
}

// Cycles returns summaries for all completed mount cycles, as a copy.
func (j *JSONL) Cycles() ([]CycleSummary, error) {
	j.mu.Lock()
	result := make([]CycleSummary, len(j.idx.summaries))
	copy(result, j.idx.summaries)
	j.mu.Unlock()
	return result, nil
}

// CycleLog returns every event of completed mount cycle n, read back from
// the file through the byte-offset index.
func (j *JSONL) CycleLog(n int) ([]floating.Event, error) {
	j.mu.Lock()
	r, ok := j.idx.ranges[n]
	j.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("trace: mount cycle %d not found", n)
	}
	size := r.end - r.start
	if size <= 0 {
		return nil, nil
	}
	buf := make([]byte, size)
	if _, err := j.file.ReadAt(buf, r.start); err != nil {
		return nil, fmt.Errorf("trace: read cycle %d: %w", n, err)
	}
	return decodeLines(bytes.NewReader(buf), fmt.Sprintf("cycle %d", n))
}

// SessionSummary returns counters for the current session.
func (j *JSONL) SessionSummary() (SessionSummary, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return SessionSummary{
		SessionID: j.sessionID,
		StartedAt: j.startedAt,
		Cycles:    len(j.idx.summaries),
		Events:    j.idx.events,
		Positions: j.idx.positions,
		Skips:     j.idx.skips,
	}, nil
}

// ReadFile decodes every event in a session log at path.
func ReadFile(path string) ([]floating.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("trace: open %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return decodeLines(f, filepath.Base(path))
}

func decodeLines(r io.Reader, what string) ([]floating.Event, error) {
	var events []floating.Event
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var e floating.Event
		if err := json.Unmarshal(line, &e); err != nil {
			log.Printf("trace: skipping malformed line in %s: %v", what, err)
			continue
		}
		events = append(events, e)
	}
	if err := sc.Err(); err != nil {
		return events, fmt.Errorf("trace: scan %s: %w", what, err)
	}
	return events, nil
}

// EnforceRetention removes the oldest session logs in dir, keeping at most
// maxKeep. maxKeep <= 0 keeps everything. A missing dir is not an error.
func EnforceRetention(dir string, maxKeep int) error {
	if maxKeep <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("trace: read dir %q: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".jsonl") {
			files = append(files, e.Name())
		}
	}

	sort.Strings(files) // timestamp-prefixed names sort chronologically

	toDelete := len(files) - maxKeep
	for i := 0; i < toDelete; i++ {
		path := filepath.Join(dir, files[i])
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("trace: remove %q: %w", path, err)
		}
	}
	return nil
}
