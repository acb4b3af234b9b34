package display

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/darkawower/multiwall/internal/log"
	"github.com/darkawower/multiwall/internal/platform"
)

// devicePathPrefix is the OS prefix stripped before substring correlation.
const devicePathPrefix = `\\.\`

// EngineMonitor is one monitor as addressed by the wallpaper engine, with a
// best-effort human-readable display name.
type EngineMonitor struct {
	// DisplayName is the correlated monitor's device path, or
	// "Monitor {i+1}" when no known monitor matched.
	DisplayName string

	// EngineID is the engine's opaque identifier for this monitor.
	EngineID string
}

// Matcher decides whether an engine identifier refers to a known monitor.
// Correlation is inherently heuristic; the strategy is pluggable so tests can
// substitute deterministic fixtures.
type Matcher func(engineID string, mon MonitorInfo) bool

// DefaultMatcher strips the OS device-path prefix from the monitor's device
// path and tests substring containment in the engine identifier.
func DefaultMatcher(engineID string, mon MonitorInfo) bool {
	part, ok := strings.CutPrefix(mon.DevicePath, devicePathPrefix)
	if !ok {
		return false
	}
	return strings.Contains(engineID, part)
}

// Resolver queries the wallpaper engine for its monitor identifiers and
// correlates them with enumerated monitors.
type Resolver struct {
	engine platform.EngineService
	match  Matcher
	log    zerolog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithMatcher replaces the correlation strategy.
func WithMatcher(m Matcher) ResolverOption {
	return func(r *Resolver) {
		r.match = m
	}
}

// NewResolver creates a resolver over the given engine service.
func NewResolver(engine platform.EngineService, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		engine: engine,
		match:  DefaultMatcher,
		log:    log.WithComponent("resolver"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns all engine monitor identifiers, each correlated against the
// known monitors. The first known monitor (in slice order) whose matcher
// accepts the identifier wins; identifiers matching nothing fall back to a
// positional name. Returns nil when the engine capability cannot be acquired.
func (r *Resolver) Resolve(known []MonitorInfo) []EngineMonitor {
	eng, err := r.engine.Open()
	if err != nil {
		r.log.Debug().Err(err).Msg("wallpaper engine unavailable")
		return nil
	}
	defer eng.Close()

	count, err := eng.MonitorCount()
	if err != nil {
		r.log.Debug().Err(err).Msg("engine monitor count failed")
		return nil
	}

	var resolved []EngineMonitor
	for i := uint32(0); i < count; i++ {
		id, err := eng.MonitorIDAt(i)
		if err != nil {
			r.log.Debug().Err(err).Uint32("index", i).Msg("engine monitor id lookup failed")
			continue
		}

		name := fmt.Sprintf("Monitor %d", i+1)
		for _, mon := range known {
			if r.match(id, mon) {
				name = mon.DevicePath
				break
			}
		}

		resolved = append(resolved, EngineMonitor{DisplayName: name, EngineID: id})
	}

	return resolved
}
