// Package trace persists floating controller events to a JSONL session log
// and provides indexed read-back of past mount cycles. A mount cycle runs
// from an EventMount to the matching EventUnmount.
package trace

import (
	"time"

	"github.com/LISSConsulting/LISSTech.Floater/internal/floating"
	"github.com/LISSConsulting/LISSTech.Floater/internal/geometry"
)

// Writer persists controller events to durable storage.
type Writer interface {
	Append(e floating.Event) error
	Close() error
}

// Reader retrieves past mount cycles from storage.
type Reader interface {
	Cycles() ([]CycleSummary, error)
	CycleLog(n int) ([]floating.Event, error)
	SessionSummary() (SessionSummary, error)
}

// Store combines Writer and Reader into a single session-scoped handle.
type Store interface {
	Writer
	Reader
}

// CycleSummary summarises one completed mount cycle.
type CycleSummary struct {
	Number       int
	Strategy     string
	Direction    geometry.Direction
	Positions    int
	Skips        int
	LastPosition *geometry.Point
	MountedAt    time.Time
	UnmountedAt  time.Time
}

// SessionSummary summarises the current session.
type SessionSummary struct {
	SessionID string
	StartedAt time.Time
	Cycles    int
	Events    int
	Positions int
	Skips     int
}
