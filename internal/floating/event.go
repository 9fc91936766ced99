package floating

import (
	"time"

	"github.com/LISSConsulting/LISSTech.Floater/internal/geometry"
)

// EventKind identifies a controller lifecycle event.
type EventKind string

const (
	EventMount    EventKind = "mount"
	EventUpdate   EventKind = "update"
	EventSkip     EventKind = "skip"
	EventPosition EventKind = "position"
	EventUnmount  EventKind = "unmount"
)

// Reasons attached to EventSkip.
const (
	ReasonNoTarget      = "no-target"
	ReasonZeroSize      = "zero-size"
	ReasonOffsetPending = "offset-pending"
	ReasonBadDirection  = "invalid-direction"
)

// Event describes one step of the controller lifecycle. Size and Position are
// set only when a measurement produced them.
type Event struct {
	Kind      EventKind          `json:"kind"`
	Strategy  string             `json:"strategy"`
	Direction geometry.Direction `json:"direction,omitempty"`
	Size      *geometry.Size     `json:"size,omitempty"`
	Position  *geometry.Point    `json:"position,omitempty"`
	Reason    string             `json:"reason,omitempty"`
	At        time.Time          `json:"at"`
}

// Observer receives controller events synchronously.
type Observer func(Event)
