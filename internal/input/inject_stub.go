//go:build !windows

package input

import "screenlink/internal/protocol"

// Stub implementation for platforms without an injection backend

func moveMouse(x, y int) error {
	return ErrUnsupported
}

func toggleButton(button protocol.Button, pressed bool) error {
	return ErrUnsupported
}

func screenSize() (int, int, error) {
	return 0, 0, ErrUnsupported
}
