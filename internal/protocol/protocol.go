// Package protocol defines the wire types exchanged with remote viewer clients.
package protocol

import (
	"encoding/json"
	"fmt"
)

// PointerEventType defines the kind of a pointer event
type PointerEventType string

const (
	// PointerMove is a position update without a button change
	PointerMove PointerEventType = "move"

	// PointerDown is a button (or stylus tip) press
	PointerDown PointerEventType = "down"

	// PointerUp is a button (or stylus tip) release
	PointerUp PointerEventType = "up"

	// PointerCancel aborts an in-flight pointer interaction
	PointerCancel PointerEventType = "cancel"
)

// Button identifies which pointer button an event refers to
type Button int

const (
	// ButtonNone means no button is involved (plain movement)
	ButtonNone Button = 0

	// ButtonPrimary is the left mouse button / stylus tip
	ButtonPrimary Button = 1

	// ButtonAuxiliary is the middle mouse button
	ButtonAuxiliary Button = 2

	// ButtonSecondary is the right mouse button / barrel button
	ButtonSecondary Button = 3
)

// PointerEvent is one normalized pointer/stylus sample from a viewer client.
// X and Y are in [0,1] relative to the active capture target.
type PointerEvent struct {
	Type      PointerEventType `json:"type"`
	X         float64          `json:"x"`
	Y         float64          `json:"y"`
	Button    Button           `json:"button,omitempty"`
	IsPrimary bool             `json:"is_primary"`
}

// DecodePointerEvent parses one inbound text frame into a PointerEvent
func DecodePointerEvent(data []byte) (PointerEvent, error) {
	var ev PointerEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return PointerEvent{}, fmt.Errorf("invalid pointer event: %w", err)
	}
	switch ev.Type {
	case PointerMove, PointerDown, PointerUp, PointerCancel:
	default:
		return PointerEvent{}, fmt.Errorf("unknown pointer event type %q", ev.Type)
	}
	switch ev.Button {
	case ButtonNone, ButtonPrimary, ButtonAuxiliary, ButtonSecondary:
	default:
		return PointerEvent{}, fmt.Errorf("unknown pointer button %d", ev.Button)
	}
	return ev, nil
}

// Encode serializes the event for the wire (used by clients and tests)
func (ev PointerEvent) Encode() ([]byte, error) {
	return json.Marshal(ev)
}
