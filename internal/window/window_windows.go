//go:build windows

package window

import (
	"fmt"
	"syscall"
	"unsafe"
)

var (
	user32              = syscall.NewLazyDLL("user32.dll")
	findWindow          = user32.NewProc("FindWindowW")
	setForegroundWindow = user32.NewProc("SetForegroundWindow")
	getWindowRect       = user32.NewProc("GetWindowRect")
)

// winRect mirrors the Win32 RECT structure
type winRect struct {
	Left, Top, Right, Bottom int32
}

// findHandle resolves the window handle by title. Done on every call so a
// restarted or retitled application is picked up again.
func findHandle(title string) (uintptr, error) {
	titlePtr, err := syscall.UTF16PtrFromString(title)
	if err != nil {
		return 0, err
	}
	hwnd, _, _ := findWindow.Call(0, uintptr(unsafe.Pointer(titlePtr)))
	if hwnd == 0 {
		return 0, ErrNotFound
	}
	return hwnd, nil
}

func activate(title string) error {
	hwnd, err := findHandle(title)
	if err != nil {
		return err
	}
	ret, _, _ := setForegroundWindow.Call(hwnd)
	if ret == 0 {
		return fmt.Errorf("SetForegroundWindow failed for %q", title)
	}
	return nil
}

func geometry(title string) (Rect, error) {
	hwnd, err := findHandle(title)
	if err != nil {
		return Rect{}, err
	}
	var r winRect
	ret, _, _ := getWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return Rect{}, fmt.Errorf("GetWindowRect failed for %q", title)
	}
	return Rect{
		X:      int(r.Left),
		Y:      int(r.Top),
		Width:  int(r.Right - r.Left),
		Height: int(r.Bottom - r.Top),
	}, nil
}
