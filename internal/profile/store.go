// Package profile manages named sets of per-monitor wallpaper assignments.
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors returned by store operations.
var (
	ErrProfileExists   = errors.New("profile already exists")
	ErrProfileNotFound = errors.New("profile not found")
	ErrDeviceUnknown   = errors.New("monitor device not known")
	ErrFileNotFound    = errors.New("wallpaper file not found")
	ErrUnsupportedType = errors.New("unsupported image format")
)

// supportedExtensions is the image extension whitelist, matched
// case-insensitively. Validation goes no further than the extension.
var supportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".gif":  true,
	".tiff": true,
}

// Profile is a named mapping from monitor device identifier to an absolute
// wallpaper file path. Keys are unique; iteration order is unspecified.
type Profile struct {
	Name       string
	Wallpapers map[string]string
}

// clone returns a deep copy of the profile.
func (p *Profile) clone() *Profile {
	wallpapers := make(map[string]string, len(p.Wallpapers))
	for device, path := range p.Wallpapers {
		wallpapers[device] = path
	}
	return &Profile{Name: p.Name, Wallpapers: wallpapers}
}

// DeviceLookup reports whether a device identifier names a currently known
// monitor.
type DeviceLookup func(device string) bool

// Store is the in-memory profile collection.
type Store struct {
	profiles    map[string]*Profile
	knownDevice DeviceLookup
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithDeviceLookup installs the monitor existence check used by Assign.
// Without it, device validation is skipped.
func WithDeviceLookup(lookup DeviceLookup) StoreOption {
	return func(s *Store) {
		s.knownDevice = lookup
	}
}

// NewStore creates an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		profiles: make(map[string]*Profile),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create inserts an empty profile. Creating an existing name fails without
// touching the stored assignments.
func (s *Store) Create(name string) error {
	if _, ok := s.profiles[name]; ok {
		return fmt.Errorf("profile %q: %w", name, ErrProfileExists)
	}
	s.profiles[name] = &Profile{
		Name:       name,
		Wallpapers: make(map[string]string),
	}
	return nil
}

// Assign sets the wallpaper path for one device within a profile. The path
// must reference an existing file with a whitelisted image extension, and the
// device must name a currently known monitor. An existing assignment for the
// device is overwritten.
func (s *Store) Assign(profileName, device, path string) error {
	p, ok := s.profiles[profileName]
	if !ok {
		return fmt.Errorf("profile %q: %w", profileName, ErrProfileNotFound)
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%q: %w", path, ErrFileNotFound)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return fmt.Errorf("%q: %w (supported: jpg, jpeg, png, bmp, gif, tiff)", ext, ErrUnsupportedType)
	}

	if s.knownDevice != nil && !s.knownDevice(device) {
		return fmt.Errorf("%q: %w", device, ErrDeviceUnknown)
	}

	p.Wallpapers[device] = path
	return nil
}

// SetFunc applies one wallpaper to one device.
type SetFunc func(device, path string) error

// Apply calls set for every assignment in the profile. All assignments are
// attempted regardless of earlier failures; the returned error aggregates
// every failed device, so a nil result means fully applied.
func (s *Store) Apply(profileName string, set SetFunc) error {
	p, ok := s.profiles[profileName]
	if !ok {
		return fmt.Errorf("profile %q: %w", profileName, ErrProfileNotFound)
	}

	var errs []error
	for device, path := range p.Wallpapers {
		if err := set(device, path); err != nil {
			errs = append(errs, fmt.Errorf("device %q: %w", device, err))
		}
	}
	return errors.Join(errs...)
}

// Get returns a copy of the named profile.
func (s *Store) Get(name string) (*Profile, bool) {
	p, ok := s.profiles[name]
	if !ok {
		return nil, false
	}
	return p.clone(), true
}

// Has reports whether the named profile exists.
func (s *Store) Has(name string) bool {
	_, ok := s.profiles[name]
	return ok
}

// Names returns the profile names. No ordering guarantee.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		names = append(names, name)
	}
	return names
}

// Len returns the number of profiles.
func (s *Store) Len() int {
	return len(s.profiles)
}

// Snapshot returns a deep copy of all profiles keyed by name.
func (s *Store) Snapshot() map[string]*Profile {
	out := make(map[string]*Profile, len(s.profiles))
	for name, p := range s.profiles {
		out[name] = p.clone()
	}
	return out
}

// Replace discards all current profiles and installs the given set.
func (s *Store) Replace(profiles map[string]*Profile) {
	s.profiles = make(map[string]*Profile, len(profiles))
	for name, p := range profiles {
		s.profiles[name] = p.clone()
	}
}
