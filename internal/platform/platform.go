// Package platform provides OS-agnostic abstractions for display and wallpaper operations.
package platform

// MonitorHandle is an opaque OS monitor identity. It is owned by the OS and
// only valid for the duration of a single enumeration pass; never persist it.
type MonitorHandle uintptr

// Rect is a monitor bounding rectangle in pixels, monitor-coordinate space.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() int32 { return r.Right - r.Left }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() int32 { return r.Bottom - r.Top }

// Monitor is one physical monitor as reported by the display enumeration capability.
type Monitor struct {
	// Handle is the opaque OS identity for this monitor.
	Handle MonitorHandle

	// Rect is the monitor's bounding rectangle.
	Rect Rect

	// DevicePath is the OS device path (e.g. `\\.\DISPLAY1` on Windows).
	DevicePath string

	// Primary indicates the primary display.
	Primary bool
}

// Platform provides access to OS-specific services.
type Platform interface {
	// Name returns the platform identifier (e.g., "windows", "linux").
	Name() string

	// IsSupported returns true if this platform is fully supported.
	IsSupported() bool

	// Display returns the display enumeration service.
	Display() DisplayService

	// Engine returns the wallpaper engine service.
	Engine() EngineService
}

// DisplayService enumerates physical monitors.
type DisplayService interface {
	// ListMonitors returns all attached monitors in OS enumeration order.
	// The order is not guaranteed stable across calls. No monitors means
	// an empty slice, never an error.
	ListMonitors() []Monitor
}

// EngineService acquires the OS wallpaper engine.
type EngineService interface {
	// Open acquires the wallpaper engine capability. The returned Engine
	// must be released with Close regardless of outcome.
	Open() (Engine, error)
}

// Engine is an acquired wallpaper engine handle. The engine addresses
// displays by its own opaque monitor identifiers, which are distinct from
// OS device paths.
type Engine interface {
	// MonitorCount returns the number of monitors the engine knows about.
	MonitorCount() (uint32, error)

	// MonitorIDAt returns the engine's identifier for the monitor at index i.
	MonitorIDAt(i uint32) (string, error)

	// Wallpaper returns the wallpaper path currently set for the given
	// engine monitor identifier.
	Wallpaper(monitorID string) (string, error)

	// SetWallpaper sets the wallpaper for the given engine monitor identifier.
	SetWallpaper(monitorID, path string) error

	// Close releases the capability.
	Close()
}
