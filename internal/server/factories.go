package server

import (
	"errors"
	"time"

	"screenlink/internal/capture"
	"screenlink/internal/input"
	"screenlink/internal/window"
)

// NewMouseHandlerFactory produces pointer handlers backed by a host mouse
// device. With a non-nil target, events are mapped into that window's
// geometry; otherwise onto the whole screen.
func NewMouseHandlerFactory(target *window.Target) HandlerFactory {
	return func() (StreamHandler, error) {
		return NewPointerStreamHandler(input.NewMouse(target)), nil
	}
}

// NewScreenHandlerFactory produces frame-push handlers capturing the whole
// primary display at the given interval.
func NewScreenHandlerFactory(interval time.Duration) HandlerFactory {
	return func() (StreamHandler, error) {
		return NewScreenStreamHandler(capture.NewGeneric(), interval), nil
	}
}

// NewWindowScreenHandlerFactory produces frame-push handlers capturing only
// the target window's region.
func NewWindowScreenHandlerFactory(target *window.Target, interval time.Duration) HandlerFactory {
	return func() (StreamHandler, error) {
		if target == nil {
			return nil, errors.New("window capture requires a target window")
		}
		return NewScreenStreamHandler(capture.NewWindow(target), interval), nil
	}
}
