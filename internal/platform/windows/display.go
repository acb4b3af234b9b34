//go:build windows

package windows

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/darkawower/multiwall/internal/platform"
)

const monitorinfofPrimary = 0x1

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW     = user32.NewProc("GetMonitorInfoW")
)

type winRect struct {
	Left, Top, Right, Bottom int32
}

// MONITORINFOEXW with the fixed-size szDevice suffix.
type monitorInfoExW struct {
	CbSize    uint32
	RcMonitor winRect
	RcWork    winRect
	DwFlags   uint32
	SzDevice  [32]uint16
}

// DisplayService implements platform.DisplayService via EnumDisplayMonitors.
type DisplayService struct{}

// ListMonitors enumerates the attached physical monitors. Handles are only
// valid until the next display configuration change.
func (s *DisplayService) ListMonitors() []platform.Monitor {
	var monitors []platform.Monitor

	cb := syscall.NewCallback(func(hMonitor, hdc, lprcMonitor, lparam uintptr) uintptr {
		var mi monitorInfoExW
		mi.CbSize = uint32(unsafe.Sizeof(mi))

		ret, _, _ := procGetMonitorInfoW.Call(hMonitor, uintptr(unsafe.Pointer(&mi)))
		if ret != 0 {
			monitors = append(monitors, platform.Monitor{
				Handle: platform.MonitorHandle(hMonitor),
				Rect: platform.Rect{
					Left:   mi.RcMonitor.Left,
					Top:    mi.RcMonitor.Top,
					Right:  mi.RcMonitor.Right,
					Bottom: mi.RcMonitor.Bottom,
				},
				DevicePath: windows.UTF16ToString(mi.SzDevice[:]),
				Primary:    mi.DwFlags&monitorinfofPrimary != 0,
			})
		}
		return 1 // continue enumeration
	})

	// Failure here leaves the slice empty, which is the contract.
	procEnumDisplayMonitors.Call(0, 0, cb, 0)

	return monitors
}
