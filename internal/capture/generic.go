package capture

import (
	"fmt"

	"github.com/kbinani/screenshot"
)

// Generic captures the entire primary display.
type Generic struct {
	display int
	quality int
}

// NewGeneric creates a whole-display capturer for the primary display
func NewGeneric() *Generic {
	return &Generic{display: 0, quality: DefaultJPEGQuality}
}

// CaptureFrame grabs the display and encodes it as JPEG
func (g *Generic) CaptureFrame() ([]byte, error) {
	if screenshot.NumActiveDisplays() <= g.display {
		return nil, fmt.Errorf("display %d not available", g.display)
	}
	img, err := screenshot.CaptureDisplay(g.display)
	if err != nil {
		return nil, fmt.Errorf("capture display %d: %w", g.display, err)
	}
	return encodeJPEG(img, g.quality)
}
