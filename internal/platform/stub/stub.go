// Package stub provides a fallback platform implementation for unsupported systems.
package stub

import (
	"fmt"
	"runtime"

	"github.com/darkawower/multiwall/internal/platform"
)

func init() {
	// Register stub as fallback for platforms without a native wallpaper
	// engine binding. This will be overridden if a specific platform
	// registers itself.
	for _, os := range []string{"linux", "darwin", "freebsd", "openbsd", "netbsd"} {
		platform.Register(os, func() platform.Platform {
			return New()
		})
	}
}

// Platform implements platform.Platform as a fallback for unsupported systems.
type Platform struct {
	name string
}

// New creates a new stub platform instance.
func New() *Platform {
	return &Platform{
		name: runtime.GOOS,
	}
}

// Name returns the platform identifier.
func (p *Platform) Name() string {
	return p.name
}

// IsSupported returns false as this is a fallback implementation.
func (p *Platform) IsSupported() bool {
	return false
}

// Display returns the display enumeration service (stub).
func (p *Platform) Display() platform.DisplayService {
	return &stubDisplayService{}
}

// Engine returns the wallpaper engine service (stub).
func (p *Platform) Engine() platform.EngineService {
	return &stubEngineService{}
}

// Compile-time check that Platform implements platform.Platform.
var _ platform.Platform = (*Platform)(nil)

// stubDisplayService reports no monitors.
type stubDisplayService struct{}

func (s *stubDisplayService) ListMonitors() []platform.Monitor {
	return nil
}

// stubEngineService always fails to acquire the engine.
type stubEngineService struct{}

func (s *stubEngineService) Open() (platform.Engine, error) {
	return nil, fmt.Errorf("wallpaper engine not supported on %s", runtime.GOOS)
}
