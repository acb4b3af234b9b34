// Package wallpaper applies wallpaper images to individual monitors through
// the OS wallpaper engine.
package wallpaper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/darkawower/multiwall/internal/log"
	"github.com/darkawower/multiwall/internal/platform"
)

// Setter applies a wallpaper path to one monitor, resolving the target's
// engine identifier with a multi-strategy fallback.
type Setter struct {
	engine platform.EngineService
	log    zerolog.Logger
}

// NewSetter creates a setter over the given engine service.
func NewSetter(engine platform.EngineService) *Setter {
	return &Setter{
		engine: engine,
		log:    log.WithComponent("setter"),
	}
}

// Set applies the wallpaper for the monitor identified by deviceName, which
// may be an OS device path or an engine identifier.
//
// First the engine's identifiers are enumerated fresh and matched against
// deviceName: exact equality, containment in either direction, or
// unconditionally at index 0. The index-0 branch assumes a single or primary
// monitor as a last resort. The first identifier whose set call succeeds wins.
// If none does, deviceName is passed to the engine directly as if it were an
// identifier. A monitor whose identifier cannot be resolved by either attempt
// fails outright.
func (s *Setter) Set(deviceName, path string) error {
	eng, err := s.engine.Open()
	if err != nil {
		return fmt.Errorf("acquire wallpaper engine: %w", err)
	}
	defer eng.Close()

	var attempts []error

	if count, err := eng.MonitorCount(); err == nil {
		for i := uint32(0); i < count; i++ {
			id, err := eng.MonitorIDAt(i)
			if err != nil {
				continue
			}

			match := id == deviceName ||
				strings.Contains(id, deviceName) ||
				strings.Contains(deviceName, id) ||
				i == 0

			if !match {
				continue
			}

			if err := eng.SetWallpaper(id, path); err != nil {
				s.log.Debug().Err(err).Str("monitor_id", id).Msg("engine set attempt failed")
				attempts = append(attempts, fmt.Errorf("monitor id %q: %w", id, err))
				continue
			}

			s.log.Info().Str("monitor_id", id).Str("path", path).Msg("wallpaper set")
			return nil
		}
	} else {
		attempts = append(attempts, fmt.Errorf("engine monitor count: %w", err))
	}

	// The device name may itself be a valid engine identifier.
	if err := eng.SetWallpaper(deviceName, path); err != nil {
		attempts = append(attempts, fmt.Errorf("direct device name %q: %w", deviceName, err))
		return fmt.Errorf("set wallpaper for %q: %w", deviceName, errors.Join(attempts...))
	}

	s.log.Info().Str("device", deviceName).Str("path", path).Msg("wallpaper set via direct device name")
	return nil
}
