// Package window provides lookup, activation and geometry queries for a
// capture/injection target window. The target is re-resolved on every query
// because the window may move, resize or disappear between events.
package window

import "errors"

// ErrUnsupported is returned on platforms without a window backend
var ErrUnsupported = errors.New("window lookup not supported on this platform")

// ErrNotFound is returned when no window matches the configured title
var ErrNotFound = errors.New("target window not found")

// Rect is a window's screen-space bounding box in pixels
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Target identifies a window by title. A nil *Target means "whole screen".
type Target struct {
	Title string
}

// NewTarget creates a target for the window with the given title
func NewTarget(title string) *Target {
	return &Target{Title: title}
}

// Activate brings the target window to the foreground
func (t *Target) Activate() error {
	return activate(t.Title)
}

// Geometry returns the target window's current bounding box
func (t *Target) Geometry() (Rect, error) {
	return geometry(t.Title)
}
