package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRect(t *testing.T) {
	r := Rect{Left: -1920, Top: 0, Right: 0, Bottom: 1080}

	assert.Equal(t, int32(1920), r.Width())
	assert.Equal(t, int32(1080), r.Height())
}

func TestMonitor(t *testing.T) {
	m := Monitor{
		Handle:     MonitorHandle(42),
		Rect:       Rect{Right: 2560, Bottom: 1440},
		DevicePath: `\\.\DISPLAY1`,
		Primary:    true,
	}

	assert.Equal(t, MonitorHandle(42), m.Handle)
	assert.Equal(t, `\\.\DISPLAY1`, m.DevicePath)
	assert.True(t, m.Primary)
}

func TestErrUnsupported(t *testing.T) {
	assert.NotNil(t, ErrUnsupported)
	assert.Contains(t, ErrUnsupported.Error(), "not supported")
}

func TestCurrentFallsBackToUnsupported(t *testing.T) {
	ResetPlatform()
	t.Cleanup(ResetPlatform)

	p := Current()
	require.NotNil(t, p)

	if !p.IsSupported() {
		assert.Empty(t, p.Display().ListMonitors())

		_, err := p.Engine().Open()
		assert.ErrorIs(t, err, ErrUnsupported)
	}
}

func TestSetPlatform(t *testing.T) {
	ResetPlatform()
	t.Cleanup(ResetPlatform)

	fake := &unsupportedPlatform{name: "fake"}
	SetPlatform(fake)

	assert.Equal(t, "fake", Current().Name())
}
