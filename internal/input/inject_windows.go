//go:build windows

package input

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"screenlink/internal/protocol"
)

const (
	inputMouse = 0

	mouseEventFMove     = 0x0001
	mouseEventFAbsolute = 0x8000

	mouseEventFLeftDown   = 0x0002
	mouseEventFLeftUp     = 0x0004
	mouseEventFRightDown  = 0x0008
	mouseEventFRightUp    = 0x0010
	mouseEventFMiddleDown = 0x0020
	mouseEventFMiddleUp   = 0x0040

	smCXScreen = 0
	smCYScreen = 1

	// SendInput absolute coordinates are normalized to 0..65535
	absoluteRange = 65535
)

var (
	user32dll        = windows.NewLazySystemDLL("user32.dll")
	procSendInput    = user32dll.NewProc("SendInput")
	procGetSysMetric = user32dll.NewProc("GetSystemMetrics")
)

// mouseInput mirrors the Win32 INPUT structure for type INPUT_MOUSE.
// The trailing padding keeps the struct at the size Win32 expects on amd64.
type mouseInput struct {
	inputType uint32
	_         uint32
	dx        int32
	dy        int32
	mouseData uint32
	dwFlags   uint32
	time      uint32
	extraInfo uintptr
}

func sendMouseInput(dx, dy int32, flags uint32) error {
	in := mouseInput{
		inputType: inputMouse,
		dx:        dx,
		dy:        dy,
		dwFlags:   flags,
	}
	ret, _, err := procSendInput.Call(1, uintptr(unsafe.Pointer(&in)), unsafe.Sizeof(in))
	if ret == 0 {
		return fmt.Errorf("SendInput failed: %v", err)
	}
	return nil
}

func moveMouse(x, y int) error {
	w, h, err := screenSize()
	if err != nil {
		return err
	}
	if w <= 1 || h <= 1 {
		return fmt.Errorf("invalid screen size %dx%d", w, h)
	}
	return sendMouseInput(
		int32(x*absoluteRange/(w-1)),
		int32(y*absoluteRange/(h-1)),
		mouseEventFMove|mouseEventFAbsolute,
	)
}

func toggleButton(button protocol.Button, pressed bool) error {
	var flags uint32
	switch button {
	case protocol.ButtonPrimary:
		flags = mouseEventFLeftDown
		if !pressed {
			flags = mouseEventFLeftUp
		}
	case protocol.ButtonAuxiliary:
		flags = mouseEventFMiddleDown
		if !pressed {
			flags = mouseEventFMiddleUp
		}
	case protocol.ButtonSecondary:
		flags = mouseEventFRightDown
		if !pressed {
			flags = mouseEventFRightUp
		}
	default:
		return nil
	}
	return sendMouseInput(0, 0, flags)
}

func screenSize() (int, int, error) {
	w, _, _ := procGetSysMetric.Call(smCXScreen)
	h, _, _ := procGetSysMetric.Call(smCYScreen)
	if w == 0 || h == 0 {
		return 0, 0, fmt.Errorf("GetSystemMetrics returned %dx%d", w, h)
	}
	return int(w), int(h), nil
}
