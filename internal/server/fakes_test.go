package server

import (
	"errors"
	"sync"

	"screenlink/internal/protocol"
)

// fakeConn is an in-memory Conn recording writes.
type fakeConn struct {
	mu       sync.Mutex
	types    []int
	writes   [][]byte
	closed   bool
	writeErr error
	closeErr error
}

func (f *fakeConn) WriteMessage(messageType int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	f.types = append(f.types, messageType)
	f.writes = append(f.writes, buf)
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return f.closeErr
}

func (f *fakeConn) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.writes)
}

func (f *fakeConn) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// fakeDevice records every event that reaches it.
type fakeDevice struct {
	mu     sync.Mutex
	events []protocol.PointerEvent
}

func (d *fakeDevice) SendEvent(event protocol.PointerEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
}

func (d *fakeDevice) recorded() []protocol.PointerEvent {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]protocol.PointerEvent, len(d.events))
	copy(out, d.events)
	return out
}

// fakeCapturer returns a fixed payload, optionally failing the first few calls.
type fakeCapturer struct {
	mu        sync.Mutex
	calls     int
	failFirst int
	payload   []byte
}

func (c *fakeCapturer) CaptureFrame() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.calls <= c.failFirst {
		return nil, errors.New("capture backend unavailable")
	}
	return c.payload, nil
}

func (c *fakeCapturer) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}
