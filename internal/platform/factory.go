package platform

import (
	"errors"
	"runtime"
	"sync"
)

var ErrUnsupported = errors.New("operation not supported on this platform")

type platformBuilder func() Platform

var (
	registry     = make(map[string]platformBuilder)
	registryLock sync.RWMutex
)

func Register(osName string, builder platformBuilder) {
	registryLock.Lock()
	defer registryLock.Unlock()
	registry[osName] = builder
}

var (
	current     Platform
	currentOnce sync.Once
)

func Current() Platform {
	currentOnce.Do(func() {
		current = newPlatform()
	})
	return current
}

func newPlatform() Platform {
	registryLock.RLock()
	defer registryLock.RUnlock()

	if builder, ok := registry[runtime.GOOS]; ok {
		return builder()
	}

	return &unsupportedPlatform{name: runtime.GOOS}
}

type unsupportedPlatform struct {
	name string
}

func (p *unsupportedPlatform) Name() string            { return p.name }
func (p *unsupportedPlatform) IsSupported() bool       { return false }
func (p *unsupportedPlatform) Display() DisplayService { return &unsupportedDisplay{} }
func (p *unsupportedPlatform) Engine() EngineService   { return &unsupportedEngine{} }

type unsupportedDisplay struct{}

func (s *unsupportedDisplay) ListMonitors() []Monitor { return nil }

type unsupportedEngine struct{}

func (s *unsupportedEngine) Open() (Engine, error) { return nil, ErrUnsupported }

func SetPlatform(p Platform) {
	currentOnce.Do(func() {})
	current = p
}

func ResetPlatform() {
	currentOnce = sync.Once{}
	current = nil
}
