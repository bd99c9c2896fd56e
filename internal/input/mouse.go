package input

import (
	"log"

	"screenlink/internal/protocol"
	"screenlink/internal/window"
)

// Mouse injects pointer events as host mouse input. With a target window it
// maps normalized coordinates into that window's current geometry and
// activates it before every event; without one it maps onto the whole screen.
type Mouse struct {
	target *window.Target
}

// NewMouse creates a mouse device. target may be nil for whole-screen mapping.
func NewMouse(target *window.Target) *Mouse {
	return &Mouse{target: target}
}

// SendEvent moves the cursor to the event position and applies button changes
func (m *Mouse) SendEvent(event protocol.PointerEvent) {
	x, y, ok := m.resolvePosition(event)
	if !ok {
		return
	}

	if err := moveMouse(x, y); err != nil {
		log.Printf("Input: Could not move mouse: %v", err)
	}

	switch event.Type {
	case protocol.PointerDown:
		switch event.Button {
		case protocol.ButtonPrimary, protocol.ButtonAuxiliary, protocol.ButtonSecondary:
			if err := toggleButton(event.Button, true); err != nil {
				log.Printf("Input: Could not press button %d: %v", event.Button, err)
			}
		}
	case protocol.PointerUp:
		// Release everything so a missed per-button up can't leave a
		// button stuck down.
		for _, b := range []protocol.Button{protocol.ButtonPrimary, protocol.ButtonAuxiliary, protocol.ButtonSecondary} {
			if err := toggleButton(b, false); err != nil {
				log.Printf("Input: Could not release button %d: %v", b, err)
			}
		}
	}
}

// resolvePosition converts normalized event coordinates to screen pixels.
// Returns ok=false when the target cannot be resolved; the event is dropped.
func (m *Mouse) resolvePosition(event protocol.PointerEvent) (int, int, bool) {
	if m.target != nil {
		if err := m.target.Activate(); err != nil {
			log.Printf("Input: Failed to activate window, sending no input (%v)", err)
			return 0, 0, false
		}
		geo, err := m.target.Geometry()
		if err != nil {
			log.Printf("Input: Failed to get window geometry, sending no input (%v)", err)
			return 0, 0, false
		}
		return geo.X + int(event.X*float64(geo.Width)), geo.Y + int(event.Y*float64(geo.Height)), true
	}

	w, h, err := screenSize()
	if err != nil {
		log.Printf("Input: Failed to get screen size, sending no input (%v)", err)
		return 0, 0, false
	}
	return int(event.X * float64(w)), int(event.Y * float64(h)), true
}
