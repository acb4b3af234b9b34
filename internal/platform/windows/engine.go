//go:build windows

package windows

import (
	"fmt"
	"syscall"
	"unsafe"

	ole "github.com/go-ole/go-ole"

	"github.com/darkawower/multiwall/internal/platform"
)

// IDesktopWallpaper does not extend IDispatch, so the vtable is laid out manually.
type desktopWallpaperVtbl struct {
	QueryInterface            uintptr
	AddRef                    uintptr
	Release                   uintptr
	SetWallpaper              uintptr
	GetWallpaper              uintptr
	GetMonitorDevicePathAt    uintptr
	GetMonitorDevicePathCount uintptr
	GetMonitorRECT            uintptr
	SetBackgroundColor        uintptr
	GetBackgroundColor        uintptr
	SetPosition               uintptr
	GetPosition               uintptr
	SetSlideshow              uintptr
	GetSlideshow              uintptr
	SetSlideshowOptions       uintptr
	GetSlideshowOptions       uintptr
	AdvanceSlideshow          uintptr
	GetStatus                 uintptr
	Enable                    uintptr
}

// CLSID_DesktopWallpaper / IID_IDesktopWallpaper from shobjidl_core.h.
const (
	clsidDesktopWallpaper = "{C2CF3110-460E-4fc1-B9D0-8A1C0C9CC4BD}"
	iidDesktopWallpaper   = "{B92B56A9-8B55-4E14-9A89-0199BBB6F93B}"
)

var (
	modole32       = syscall.NewLazyDLL("ole32.dll")
	procCoTaskFree = modole32.NewProc("CoTaskMemFree")
)

// EngineService implements platform.EngineService over COM.
type EngineService struct{}

// Open initializes COM and creates the DesktopWallpaper instance. The caller
// must Close the returned engine, which also uninitializes COM for this
// acquisition.
func (s *EngineService) Open() (platform.Engine, error) {
	if err := ole.CoInitialize(0); err != nil {
		return nil, fmt.Errorf("CoInitialize: %w", err)
	}

	unknown, err := ole.CreateInstance(
		ole.NewGUID(clsidDesktopWallpaper),
		ole.NewGUID(iidDesktopWallpaper))
	if err != nil {
		ole.CoUninitialize()
		return nil, fmt.Errorf("create DesktopWallpaper instance: %w", err)
	}

	return &engine{com: unknown}, nil
}

type engine struct {
	com *ole.IUnknown
}

func (e *engine) vtbl() *desktopWallpaperVtbl {
	return (*desktopWallpaperVtbl)(unsafe.Pointer(e.com.RawVTable))
}

func (e *engine) MonitorCount() (uint32, error) {
	var count uint32
	hr, _, _ := syscall.SyscallN(
		e.vtbl().GetMonitorDevicePathCount,
		uintptr(unsafe.Pointer(e.com)),
		uintptr(unsafe.Pointer(&count)))
	if hr != 0 {
		return 0, fmt.Errorf("GetMonitorDevicePathCount: HRESULT 0x%x", hr)
	}
	return count, nil
}

func (e *engine) MonitorIDAt(i uint32) (string, error) {
	var out *uint16
	hr, _, _ := syscall.SyscallN(
		e.vtbl().GetMonitorDevicePathAt,
		uintptr(unsafe.Pointer(e.com)),
		uintptr(i),
		uintptr(unsafe.Pointer(&out)))
	if hr != 0 {
		return "", fmt.Errorf("GetMonitorDevicePathAt(%d): HRESULT 0x%x", i, hr)
	}
	return takeCoString(out), nil
}

func (e *engine) Wallpaper(monitorID string) (string, error) {
	id, err := syscall.UTF16PtrFromString(monitorID)
	if err != nil {
		return "", err
	}

	var out *uint16
	hr, _, _ := syscall.SyscallN(
		e.vtbl().GetWallpaper,
		uintptr(unsafe.Pointer(e.com)),
		uintptr(unsafe.Pointer(id)),
		uintptr(unsafe.Pointer(&out)))
	if hr != 0 {
		return "", fmt.Errorf("GetWallpaper: HRESULT 0x%x", hr)
	}
	return takeCoString(out), nil
}

func (e *engine) SetWallpaper(monitorID, path string) error {
	id, err := syscall.UTF16PtrFromString(monitorID)
	if err != nil {
		return err
	}
	wp, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return err
	}

	hr, _, _ := syscall.SyscallN(
		e.vtbl().SetWallpaper,
		uintptr(unsafe.Pointer(e.com)),
		uintptr(unsafe.Pointer(id)),
		uintptr(unsafe.Pointer(wp)))
	if hr != 0 {
		return fmt.Errorf("SetWallpaper: HRESULT 0x%x", hr)
	}
	return nil
}

func (e *engine) Close() {
	e.com.Release()
	ole.CoUninitialize()
}

// takeCoString copies a COM-allocated wide string into Go memory and frees
// the original with CoTaskMemFree.
func takeCoString(ptr *uint16) string {
	if ptr == nil {
		return ""
	}

	var n int
	for p := ptr; *p != 0; p = (*uint16)(unsafe.Pointer(uintptr(unsafe.Pointer(p)) + 2)) {
		n++
	}
	s := syscall.UTF16ToString(unsafe.Slice(ptr, n))

	procCoTaskFree.Call(uintptr(unsafe.Pointer(ptr)))
	return s
}
