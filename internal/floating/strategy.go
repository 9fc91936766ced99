package floating

import (
	"fmt"

	"github.com/LISSConsulting/LISSTech.Floater/internal/dom"
)

// Mode selects how the floating element is attached to the document.
type Mode string

const (
	// ModeAuto uses a portal when the host supports it, else the fallback.
	ModeAuto Mode = "auto"
	// ModePortal renders into a detached node and reparents its root under body.
	ModePortal Mode = "portal"
	// ModeFallback appends an owned container to body and renders into it imperatively.
	ModeFallback Mode = "fallback"
)

// ParseMode validates s. The empty string means ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModePortal, ModeFallback:
		return m, nil
	}
	return "", fmt.Errorf("floating: unknown mount strategy %q (want auto, portal or fallback)", s)
}

// binding is the controller side of a mount strategy.
type binding interface {
	// child returns the floating element with the current position styling,
	// or nil when there is nothing to render.
	child() *dom.Element
	// measure runs the measurement trigger against target and reports
	// whether the committed position changed.
	measure(target *dom.Node) bool
}

// MountStrategy attaches the floating element's markup to the document
// outside the normal parent/child flow. Both implementations leave the
// rendered root reachable through Target for measurement.
type MountStrategy interface {
	Name() string
	Mount(b binding)
	Update(b binding)
	Unmount()
	Target() *dom.Node
}

// NewStrategy returns the strategy for mode on host. Asking for a portal on a
// host without portal support yields the fallback.
func NewStrategy(host dom.Host, mode Mode) MountStrategy {
	if resolveMode(host, mode) == ModePortal {
		return newPortalStrategy(host)
	}
	return newFallbackStrategy(host)
}

func resolveMode(host dom.Host, mode Mode) Mode {
	if mode == ModeFallback || !host.SupportsPortal() {
		return ModeFallback
	}
	return ModePortal
}
