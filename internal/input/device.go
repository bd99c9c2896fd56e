// Package input provides pointer input injection into the host's input
// subsystem.
package input

import (
	"errors"

	"screenlink/internal/protocol"
)

// ErrUnsupported is returned by platform backends that cannot inject input
var ErrUnsupported = errors.New("input injection not supported on this platform")

// Device applies one pointer event to the host. Calls are fire-and-forget:
// implementations log transient platform failures and no-op instead of
// returning them to the caller.
type Device interface {
	SendEvent(event protocol.PointerEvent)
}
