//go:build windows

// Package windows implements the platform services on top of the Win32
// display enumeration API and the IDesktopWallpaper COM interface.
package windows

import (
	"github.com/darkawower/multiwall/internal/platform"
)

func init() {
	platform.Register("windows", func() platform.Platform {
		return New()
	})
}

// Platform implements platform.Platform for Windows.
type Platform struct{}

// New creates a new Windows platform instance.
func New() *Platform {
	return &Platform{}
}

// Name returns the platform identifier.
func (p *Platform) Name() string {
	return "windows"
}

// IsSupported returns true.
func (p *Platform) IsSupported() bool {
	return true
}

// Display returns the display enumeration service.
func (p *Platform) Display() platform.DisplayService {
	return &DisplayService{}
}

// Engine returns the wallpaper engine service.
func (p *Platform) Engine() platform.EngineService {
	return &EngineService{}
}

// Compile-time check that Platform implements platform.Platform.
var _ platform.Platform = (*Platform)(nil)
