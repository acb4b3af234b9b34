package wallpaper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkawower/multiwall/internal/platform"
)

type setCall struct {
	monitorID string
	path      string
}

type fakeEngine struct {
	ids      []string
	countErr error
	setErr   map[string]error
	calls    []setCall
	closed   bool
}

func (e *fakeEngine) MonitorCount() (uint32, error) {
	if e.countErr != nil {
		return 0, e.countErr
	}
	return uint32(len(e.ids)), nil
}

func (e *fakeEngine) MonitorIDAt(i uint32) (string, error) {
	return e.ids[i], nil
}

func (e *fakeEngine) Wallpaper(monitorID string) (string, error) {
	return "", nil
}

func (e *fakeEngine) SetWallpaper(monitorID, path string) error {
	e.calls = append(e.calls, setCall{monitorID: monitorID, path: path})
	if err, ok := e.setErr[monitorID]; ok {
		return err
	}
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

func TestSetter_Set_ExactMatch(t *testing.T) {
	// Index 0 always matches as the last-resort branch; make it fail so the
	// exact match on the second identifier is observable.
	eng := &fakeEngine{
		ids:    []string{"id-A", "id-B"},
		setErr: map[string]error{"id-A": errors.New("wrong monitor")},
	}
	s := NewSetter(&fakeEngineService{engine: eng})

	err := s.Set("id-B", "/wallpapers/forest.jpg")

	require.NoError(t, err)
	require.Len(t, eng.calls, 2)
	assert.Equal(t, "id-A", eng.calls[0].monitorID)
	assert.Equal(t, "id-B", eng.calls[1].monitorID)
	assert.Equal(t, "/wallpapers/forest.jpg", eng.calls[1].path)
	assert.True(t, eng.closed)
}

func TestSetter_Set_IndexZeroFallback(t *testing.T) {
	// The first enumerated identifier matches unconditionally, assuming a
	// single or primary monitor as a last resort.
	eng := &fakeEngine{ids: []string{"opaque-engine-id"}}
	s := NewSetter(&fakeEngineService{engine: eng})

	err := s.Set(`\\.\DISPLAY1`, "/wallpapers/forest.jpg")

	require.NoError(t, err)
	require.Len(t, eng.calls, 1)
	assert.Equal(t, "opaque-engine-id", eng.calls[0].monitorID)
	assert.Equal(t, "/wallpapers/forest.jpg", eng.calls[0].path)
}

func TestSetter_Set_ContainmentEitherDirection(t *testing.T) {
	tests := []struct {
		name   string
		ids    []string
		device string
		wantID string
	}{
		{
			name:   "identifier contains device name",
			ids:    []string{"none", "prefix-DISPLAY2-suffix"},
			device: "DISPLAY2",
			wantID: "prefix-DISPLAY2-suffix",
		},
		{
			name:   "device name contains identifier",
			ids:    []string{"none", "DISPLAY2"},
			device: "prefix-DISPLAY2-suffix",
			wantID: "DISPLAY2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Make index 0 fail so the containment match is observable.
			eng := &fakeEngine{
				ids:    tt.ids,
				setErr: map[string]error{"none": errors.New("wrong monitor")},
			}
			s := NewSetter(&fakeEngineService{engine: eng})

			err := s.Set(tt.device, "/w.png")

			require.NoError(t, err)
			last := eng.calls[len(eng.calls)-1]
			assert.Equal(t, tt.wantID, last.monitorID)
		})
	}
}

func TestSetter_Set_ShortCircuitsOnFirstSuccess(t *testing.T) {
	eng := &fakeEngine{ids: []string{"id-A", "id-A-too", "id-A-also"}}
	s := NewSetter(&fakeEngineService{engine: eng})

	err := s.Set("id-A", "/w.png")

	require.NoError(t, err)
	assert.Len(t, eng.calls, 1, "no further identifiers tried after a success")
}

func TestSetter_Set_DirectDeviceNameFallback(t *testing.T) {
	eng := &fakeEngine{
		ids: []string{"id-A"},
		setErr: map[string]error{
			"id-A": errors.New("engine rejected"),
		},
	}
	s := NewSetter(&fakeEngineService{engine: eng})

	err := s.Set("my-device", "/w.png")

	require.NoError(t, err)
	require.Len(t, eng.calls, 2)
	assert.Equal(t, "my-device", eng.calls[1].monitorID)
}

func TestSetter_Set_AllTiersFail(t *testing.T) {
	eng := &fakeEngine{
		ids: []string{"id-A"},
		setErr: map[string]error{
			"id-A":      errors.New("engine rejected"),
			"my-device": errors.New("unknown monitor id"),
		},
	}
	s := NewSetter(&fakeEngineService{engine: eng})

	err := s.Set("my-device", "/w.png")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "my-device")
	assert.Contains(t, err.Error(), "engine rejected")
	assert.True(t, eng.closed, "engine released even on failure")
}

func TestSetter_Set_CountFailureStillTriesDirect(t *testing.T) {
	eng := &fakeEngine{countErr: errors.New("count unavailable")}
	s := NewSetter(&fakeEngineService{engine: eng})

	err := s.Set("id-direct", "/w.png")

	require.NoError(t, err)
	require.Len(t, eng.calls, 1)
	assert.Equal(t, "id-direct", eng.calls[0].monitorID)
}

func TestSetter_Set_EngineUnavailable(t *testing.T) {
	s := NewSetter(&fakeEngineService{openErr: errors.New("no engine")})

	err := s.Set("device", "/w.png")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "acquire wallpaper engine")
}
