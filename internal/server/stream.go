package server

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"screenlink/internal/capture"
	"screenlink/internal/input"
	"screenlink/internal/protocol"
)

// StreamHandler adapts one connection's message flow to a capability backend.
type StreamHandler interface {
	// Start is called once, after the connection is registered and before
	// the first message is dispatched.
	Start(c *Client)

	// Process handles one inbound message. Called synchronously from the
	// session's read loop, in strict arrival order; it must not block
	// appreciably.
	Process(c *Client, messageType int, data []byte)

	// Close releases handler resources. Called on every session exit path.
	Close()
}

// HandlerFactory produces a fresh StreamHandler for each accepted connection
type HandlerFactory func() (StreamHandler, error)

// PointerStreamHandler decodes inbound pointer events and forwards them to an
// input device.
type PointerStreamHandler struct {
	device input.Device
}

// NewPointerStreamHandler creates a pointer handler bound to a device
func NewPointerStreamHandler(device input.Device) *PointerStreamHandler {
	return &PointerStreamHandler{device: device}
}

func (h *PointerStreamHandler) Start(c *Client) {}

func (h *PointerStreamHandler) Process(c *Client, messageType int, data []byte) {
	if messageType != websocket.TextMessage {
		return
	}
	ev, err := protocol.DecodePointerEvent(data)
	if err != nil {
		log.Printf("WS: Dropping malformed pointer event from %s: %v", c.Addr(), err)
		return
	}
	// Only the controlling pointer drives the host; secondary touches of a
	// multi-pointer client never reach the device.
	if !ev.IsPrimary {
		return
	}
	pointerEventsTotal.Inc()
	h.device.SendEvent(ev)
}

func (h *PointerStreamHandler) Close() {}

// ScreenStreamHandler owns a capture ticker and pushes one frame per tick to
// the connection's send handle. Inbound messages on the video channel are not
// forwarded anywhere.
type ScreenStreamHandler struct {
	capturer capture.Capturer
	interval time.Duration

	done      chan struct{}
	closeOnce sync.Once
}

// NewScreenStreamHandler creates a frame-push handler at the given interval
func NewScreenStreamHandler(capturer capture.Capturer, interval time.Duration) *ScreenStreamHandler {
	return &ScreenStreamHandler{
		capturer: capturer,
		interval: interval,
		done:     make(chan struct{}),
	}
}

func (h *ScreenStreamHandler) Start(c *Client) {
	go h.stream(c)
}

func (h *ScreenStreamHandler) stream(c *Client) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-h.done:
			return
		case <-ticker.C:
			frame, err := h.capturer.CaptureFrame()
			if err != nil {
				// A failed capture skips this tick only.
				captureErrorsTotal.Inc()
				log.Printf("WS: Screen capture failed, skipping frame: %v", err)
				continue
			}
			if err := c.SendBinary(frame); err != nil {
				log.Printf("WS: Stopping frame stream to %s (%v)", c.Addr(), err)
				return
			}
			framesSentTotal.Inc()
		}
	}
}

func (h *ScreenStreamHandler) Process(c *Client, messageType int, data []byte) {}

func (h *ScreenStreamHandler) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}
