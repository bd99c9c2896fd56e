package capture

import (
	"fmt"

	"github.com/kbinani/screenshot"

	"screenlink/internal/window"
)

// Window captures only the target window's current rectangle. Grabbing the
// smaller region is considerably cheaper than a full-display capture, and the
// geometry is re-resolved on every frame so a moved window stays in view.
type Window struct {
	target  *window.Target
	quality int
}

// NewWindow creates a window-scoped capturer
func NewWindow(target *window.Target) *Window {
	return &Window{target: target, quality: DefaultJPEGQuality}
}

// CaptureFrame grabs the target window's region and encodes it as JPEG
func (w *Window) CaptureFrame() ([]byte, error) {
	geo, err := w.target.Geometry()
	if err != nil {
		return nil, fmt.Errorf("window geometry: %w", err)
	}
	if geo.Width <= 0 || geo.Height <= 0 {
		return nil, fmt.Errorf("window has no visible area (%dx%d)", geo.Width, geo.Height)
	}
	img, err := screenshot.Capture(geo.X, geo.Y, geo.Width, geo.Height)
	if err != nil {
		return nil, fmt.Errorf("capture window region: %w", err)
	}
	return encodeJPEG(img, w.quality)
}

var (
	_ Capturer = (*Generic)(nil)
	_ Capturer = (*Window)(nil)
)
