// Package display discovers physical monitors and correlates them with the
// wallpaper engine's own monitor identifiers.
package display

import (
	"github.com/darkawower/multiwall/internal/platform"
)

// MonitorInfo describes one physical monitor. The OS device path and the
// wallpaper-engine identifier are two independent identity schemes; both are
// kept so a monitor can be re-correlated after a refresh.
type MonitorInfo struct {
	// Handle is the opaque OS monitor identity, valid for one enumeration
	// pass only.
	Handle platform.MonitorHandle

	// Rect is the monitor bounding rectangle.
	Rect platform.Rect

	// DevicePath is the OS device path (e.g. `\\.\DISPLAY1`).
	DevicePath string

	// EngineID is the wallpaper engine's identifier for this monitor.
	// Empty until correlation succeeds.
	EngineID string

	// Primary indicates the primary display.
	Primary bool
}

// Enumerate queries the display capability once and returns all monitors in
// enumeration order. Absent monitors yield an empty slice, never an error.
func Enumerate(svc platform.DisplayService) []MonitorInfo {
	raw := svc.ListMonitors()

	monitors := make([]MonitorInfo, 0, len(raw))
	for _, m := range raw {
		monitors = append(monitors, MonitorInfo{
			Handle:     m.Handle,
			Rect:       m.Rect,
			DevicePath: m.DevicePath,
			Primary:    m.Primary,
		})
	}
	return monitors
}
