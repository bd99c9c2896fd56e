// Package capture produces encoded screen frames on demand.
package capture

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
)

// DefaultJPEGQuality balances frame size against visual quality for a
// LAN-streamed desktop.
const DefaultJPEGQuality = 75

// Capturer produces one encoded frame per call. A call is expected to
// complete well within one capture interval; the caller does not enforce a
// timeout.
type Capturer interface {
	CaptureFrame() ([]byte, error)
}

// encodeJPEG turns a captured image into a JPEG frame ready for the wire
func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	if quality <= 0 {
		quality = DefaultJPEGQuality
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("jpeg encode: %w", err)
	}
	return buf.Bytes(), nil
}
