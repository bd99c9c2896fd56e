//go:build !windows

package window

// Stub implementation for platforms without a window backend

func activate(title string) error {
	return ErrUnsupported
}

func geometry(title string) (Rect, error) {
	return Rect{}, ErrUnsupported
}
