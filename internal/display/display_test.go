package display

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkawower/multiwall/internal/platform"
)

type fakeDisplayService struct {
	monitors []platform.Monitor
}

func (s *fakeDisplayService) ListMonitors() []platform.Monitor {
	return s.monitors
}

func TestEnumerate(t *testing.T) {
	svc := &fakeDisplayService{
		monitors: []platform.Monitor{
			{Handle: 1, DevicePath: `\\.\DISPLAY1`, Primary: true, Rect: platform.Rect{Right: 1920, Bottom: 1080}},
			{Handle: 2, DevicePath: `\\.\DISPLAY2`, Rect: platform.Rect{Left: 1920, Right: 3840, Bottom: 1080}},
		},
	}

	monitors := Enumerate(svc)

	require.Len(t, monitors, 2)
	assert.Equal(t, `\\.\DISPLAY1`, monitors[0].DevicePath)
	assert.True(t, monitors[0].Primary)
	assert.Empty(t, monitors[0].EngineID, "engine id is unset until correlation")
	assert.Equal(t, `\\.\DISPLAY2`, monitors[1].DevicePath)
	assert.False(t, monitors[1].Primary)
	assert.Equal(t, int32(1920), monitors[1].Rect.Width())
}

func TestEnumerate_NoMonitors(t *testing.T) {
	monitors := Enumerate(&fakeDisplayService{})

	assert.Empty(t, monitors)
}

func TestDefaultMatcher(t *testing.T) {
	tests := []struct {
		name       string
		engineID   string
		devicePath string
		want       bool
	}{
		{
			name:       "realistic engine path without the gdi name",
			engineID:   `\\?\DISPLAY#GSM5B08#5&1f4e274&0&UID4352#{e6f07b5f-ee97-4a90-b076-33f57bf4eaa7}`,
			devicePath: `\\.\DISPLAY1`,
			want:       false,
		},
		{
			name:       "literal containment",
			engineID:   `engine-DISPLAY1-id`,
			devicePath: `\\.\DISPLAY1`,
			want:       true,
		},
		{
			name:       "no prefix on device path",
			engineID:   `engine-DISPLAY1-id`,
			devicePath: `DISPLAY1`,
			want:       false,
		},
		{
			name:       "no containment",
			engineID:   `engine-DISPLAY2-id`,
			devicePath: `\\.\DISPLAY1`,
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultMatcher(tt.engineID, MonitorInfo{DevicePath: tt.devicePath})
			assert.Equal(t, tt.want, got)
		})
	}
}

type fakeEngine struct {
	ids       []string
	idErr     error
	countErr  error
	closed    bool
	wallpaper map[string]string
}

func (e *fakeEngine) MonitorCount() (uint32, error) {
	if e.countErr != nil {
		return 0, e.countErr
	}
	return uint32(len(e.ids)), nil
}

func (e *fakeEngine) MonitorIDAt(i uint32) (string, error) {
	if e.idErr != nil {
		return "", e.idErr
	}
	return e.ids[i], nil
}

func (e *fakeEngine) Wallpaper(monitorID string) (string, error) {
	return e.wallpaper[monitorID], nil
}

func (e *fakeEngine) SetWallpaper(monitorID, path string) error {
	return nil
}

func (e *fakeEngine) Close() {
	e.closed = true
}

type fakeEngineService struct {
	engine  *fakeEngine
	openErr error
}

func (s *fakeEngineService) Open() (platform.Engine, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}
	return s.engine, nil
}

func TestResolver_Resolve(t *testing.T) {
	known := []MonitorInfo{
		{DevicePath: `\\.\DISPLAY1`},
		{DevicePath: `\\.\DISPLAY2`},
	}

	eng := &fakeEngine{ids: []string{
		`MONITOR#DISPLAY1#engine`,
		`MONITOR#DISPLAY2#engine`,
		`MONITOR#UNKNOWN#engine`,
	}}
	r := NewResolver(&fakeEngineService{engine: eng})

	resolved := r.Resolve(known)

	require.Len(t, resolved, 3)
	assert.Equal(t, `\\.\DISPLAY1`, resolved[0].DisplayName)
	assert.Equal(t, `MONITOR#DISPLAY1#engine`, resolved[0].EngineID)
	assert.Equal(t, `\\.\DISPLAY2`, resolved[1].DisplayName)
	assert.Equal(t, "Monitor 3", resolved[2].DisplayName, "uncorrelated identifiers fall back to a positional name")
	assert.True(t, eng.closed, "engine must be released")
}

func TestResolver_Resolve_FallbackNameIsOneBased(t *testing.T) {
	eng := &fakeEngine{ids: []string{"something-opaque"}}
	r := NewResolver(&fakeEngineService{engine: eng})

	resolved := r.Resolve(nil)

	require.Len(t, resolved, 1)
	assert.Equal(t, "Monitor 1", resolved[0].DisplayName)
}

func TestResolver_Resolve_FirstMatchWins(t *testing.T) {
	// Both monitors match the identifier; enumeration order breaks the tie.
	known := []MonitorInfo{
		{DevicePath: `\\.\DISPLAY1`},
		{DevicePath: `\\.\DISPLAY11`},
	}

	eng := &fakeEngine{ids: []string{`MONITOR#DISPLAY11#engine`}}
	r := NewResolver(&fakeEngineService{engine: eng})

	resolved := r.Resolve(known)

	require.Len(t, resolved, 1)
	assert.Equal(t, `\\.\DISPLAY1`, resolved[0].DisplayName)
}

func TestResolver_Resolve_EngineUnavailable(t *testing.T) {
	r := NewResolver(&fakeEngineService{openErr: errors.New("no engine")})

	assert.Nil(t, r.Resolve(nil))
}

func TestResolver_Resolve_CountFailure(t *testing.T) {
	eng := &fakeEngine{countErr: errors.New("count failed")}
	r := NewResolver(&fakeEngineService{engine: eng})

	assert.Nil(t, r.Resolve(nil))
	assert.True(t, eng.closed)
}

func TestResolver_CustomMatcher(t *testing.T) {
	known := []MonitorInfo{{DevicePath: "anything"}}
	eng := &fakeEngine{ids: []string{"id-0"}}

	always := func(engineID string, mon MonitorInfo) bool { return true }
	r := NewResolver(&fakeEngineService{engine: eng}, WithMatcher(always))

	resolved := r.Resolve(known)

	require.Len(t, resolved, 1)
	assert.Equal(t, "anything", resolved[0].DisplayName)
}
