// Package core provides the root wallpaper profile manager.
package core

import (
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/darkawower/multiwall/internal/config"
	"github.com/darkawower/multiwall/internal/display"
	"github.com/darkawower/multiwall/internal/log"
	"github.com/darkawower/multiwall/internal/platform"
	"github.com/darkawower/multiwall/internal/profile"
	"github.com/darkawower/multiwall/internal/schedule"
	"github.com/darkawower/multiwall/internal/wallpaper"
)

// Manager owns the monitor snapshot, the profile store, the schedule list and
// the scheduler. All mutating operations are serialized by an internal mutex
// so the scheduler's apply callback can run concurrently with user-driven
// mutation.
type Manager struct {
	mu sync.Mutex

	platform       platform.Platform
	monitors       []display.MonitorInfo
	engineMonitors []display.EngineMonitor

	store     *profile.Store
	schedule  []schedule.Entry
	scheduler *schedule.Scheduler

	setter   *wallpaper.Setter
	resolver *display.Resolver

	cfg *config.Config
	log zerolog.Logger
}

// Option is a function that configures the Manager.
type Option func(*Manager)

// WithMatcher replaces the resolver's correlation strategy.
func WithMatcher(m display.Matcher) Option {
	return func(mgr *Manager) {
		mgr.resolver = display.NewResolver(mgr.platform.Engine(), display.WithMatcher(m))
	}
}

// New creates a Manager on the current platform and takes an initial monitor
// snapshot.
func New(cfg *config.Config, opts ...Option) *Manager {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	p := platform.Current()
	m := &Manager{
		platform: p,
		setter:   wallpaper.NewSetter(p.Engine()),
		resolver: display.NewResolver(p.Engine()),
		scheduler: schedule.New(
			schedule.WithPollInterval(cfg.PollInterval()),
			schedule.WithDebounce(cfg.Debounce()),
		),
		cfg: cfg,
		log: log.WithComponent("manager"),
	}
	m.store = profile.NewStore(profile.WithDeviceLookup(m.knownDevice))

	for _, opt := range opts {
		opt(m)
	}

	m.RefreshMonitors()
	return m
}

// knownDevice accepts either identity scheme: the OS device path from
// enumeration, or the engine identifier stamped on by correlation.
func (m *Manager) knownDevice(device string) bool {
	for _, mon := range m.monitors {
		if mon.DevicePath == device || (mon.EngineID != "" && mon.EngineID == device) {
			return true
		}
	}
	return false
}

// RefreshMonitors rebuilds the monitor snapshot wholesale: enumerates the
// physical monitors, resolves the engine's identifiers and stamps each
// correlated identifier onto its monitor. Old handles are discarded.
func (m *Manager) RefreshMonitors() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.monitors = display.Enumerate(m.platform.Display())
	m.engineMonitors = m.resolver.Resolve(m.monitors)

	for _, em := range m.engineMonitors {
		for i := range m.monitors {
			if m.monitors[i].DevicePath == em.DisplayName {
				m.monitors[i].EngineID = em.EngineID
				break
			}
		}
	}

	m.log.Debug().
		Int("monitors", len(m.monitors)).
		Int("engine_monitors", len(m.engineMonitors)).
		Msg("monitor snapshot refreshed")
}

// Monitors returns the current monitor snapshot.
func (m *Manager) Monitors() []display.MonitorInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.monitors)
}

// EngineMonitors returns the engine's monitor identifiers with their
// correlated display names.
func (m *Manager) EngineMonitors() []display.EngineMonitor {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.engineMonitors)
}

// CurrentWallpaper reads back the wallpaper currently set for the given
// engine monitor identifier.
func (m *Manager) CurrentWallpaper(engineID string) (string, error) {
	eng, err := m.platform.Engine().Open()
	if err != nil {
		return "", fmt.Errorf("acquire wallpaper engine: %w", err)
	}
	defer eng.Close()

	return eng.Wallpaper(engineID)
}

// CreateProfile inserts an empty profile.
func (m *Manager) CreateProfile(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Create(name)
}

// AssignWallpaper sets the wallpaper path for a device within a profile.
func (m *Manager) AssignWallpaper(profileName, device, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Assign(profileName, device, path)
}

// ApplyProfile sets the wallpaper for every device in the profile. Every
// assignment is attempted; the returned error aggregates all failed devices.
// There is no rollback on partial failure.
func (m *Manager) ApplyProfile(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.log.Info().Str("profile", name).Msg("applying profile")
	return m.store.Apply(name, m.setter.Set)
}

// ProfileNames returns the profile names. No ordering guarantee.
func (m *Manager) ProfileNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Names()
}

// Profile returns a copy of the named profile.
func (m *Manager) Profile(name string) (*profile.Profile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Get(name)
}

// AddSchedule appends an enabled schedule entry. The profile must exist at
// creation time; the reference is not enforced afterwards.
func (m *Manager) AddSchedule(profileName string, hour, minute int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.store.Has(profileName) {
		return fmt.Errorf("profile %q: %w", profileName, profile.ErrProfileNotFound)
	}

	entry := schedule.Entry{
		Profile: profileName,
		Hour:    hour,
		Minute:  minute,
		Enabled: true,
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	m.schedule = append(m.schedule, entry)
	return nil
}

// Schedule returns the schedule entries in creation order.
func (m *Manager) Schedule() []schedule.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.schedule)
}

// StartScheduler launches the background scheduler over a snapshot of the
// current schedule. Fired entries are applied through ApplyProfile; apply
// failures are logged, not surfaced. Starting twice is a no-op.
func (m *Manager) StartScheduler() {
	m.mu.Lock()
	entries := slices.Clone(m.schedule)
	m.mu.Unlock()

	m.scheduler.Start(entries, func(profileName string) {
		if err := m.ApplyProfile(profileName); err != nil {
			m.log.Error().Err(err).Str("profile", profileName).Msg("scheduled apply failed")
		}
	})
}

// StopScheduler signals the background scheduler to exit. No-op when stopped.
func (m *Manager) StopScheduler() {
	m.scheduler.Stop()
}

// SchedulerRunning reports whether the scheduler is running.
func (m *Manager) SchedulerRunning() bool {
	return m.scheduler.Running()
}

// DocumentPath returns the default profile document path from the settings.
func (m *Manager) DocumentPath() string {
	return m.cfg.Profiles.Path
}

// SaveConfig writes the profiles and schedule to the document at path.
func (m *Manager) SaveConfig(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return config.SaveDocument(path, m.store.Snapshot(), m.schedule)
}

// LoadConfig replaces all profiles and schedule entries with the document at
// path. A missing or unreadable file leaves current state untouched. Load is
// destructive, never a merge; device names and wallpaper paths are not
// re-validated.
func (m *Manager) LoadConfig(path string) error {
	profiles, entries, err := config.LoadDocument(path)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.store.Replace(profiles)
	m.schedule = entries
	return nil
}
