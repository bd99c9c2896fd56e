package server

import (
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"screenlink/internal/protocol"
)

func TestPointerHandlerForwardsPrimaryEvents(t *testing.T) {
	dev := &fakeDevice{}
	h := NewPointerStreamHandler(dev)
	c := NewClient("10.0.0.1:5000", &fakeConn{})

	ev := protocol.PointerEvent{Type: protocol.PointerDown, X: 0.5, Y: 0.5, Button: protocol.ButtonPrimary, IsPrimary: true}
	data, err := ev.Encode()
	require.NoError(t, err)

	h.Process(c, websocket.TextMessage, data)

	events := dev.recorded()
	require.Len(t, events, 1)
	assert.Equal(t, ev, events[0])
}

func TestPointerHandlerDropsNonPrimary(t *testing.T) {
	dev := &fakeDevice{}
	h := NewPointerStreamHandler(dev)
	c := NewClient("10.0.0.1:5000", &fakeConn{})

	data, err := protocol.PointerEvent{Type: protocol.PointerMove, X: 0.2, Y: 0.2, IsPrimary: false}.Encode()
	require.NoError(t, err)

	h.Process(c, websocket.TextMessage, data)

	assert.Empty(t, dev.recorded(), "non-primary events must never reach the device")
}

func TestPointerHandlerIgnoresMalformedAndBinary(t *testing.T) {
	dev := &fakeDevice{}
	h := NewPointerStreamHandler(dev)
	c := NewClient("10.0.0.1:5000", &fakeConn{})

	h.Process(c, websocket.TextMessage, []byte("not an event"))
	h.Process(c, websocket.BinaryMessage, []byte{0x01, 0x02})

	assert.Empty(t, dev.recorded())
}

func TestScreenHandlerPushesFramesAtInterval(t *testing.T) {
	capturer := &fakeCapturer{payload: []byte{0xFF, 0xD8, 0x00}}
	h := NewScreenStreamHandler(capturer, 100*time.Millisecond)
	conn := &fakeConn{}
	c := NewClient("10.0.0.1:5000", conn)

	h.Start(c)
	time.Sleep(1050 * time.Millisecond)
	h.Close()

	// One second at 100ms per tick yields ten frames, give or take one.
	got := conn.writeCount()
	assert.GreaterOrEqual(t, got, 9, "too few frames for a 100ms interval")
	assert.LessOrEqual(t, got, 11, "too many frames for a 100ms interval")
}

func TestScreenHandlerSurvivesCaptureErrors(t *testing.T) {
	capturer := &fakeCapturer{failFirst: 3, payload: []byte("frame")}
	h := NewScreenStreamHandler(capturer, 10*time.Millisecond)
	conn := &fakeConn{}
	c := NewClient("10.0.0.1:5000", conn)

	h.Start(c)
	defer h.Close()

	require.Eventually(t, func() bool { return conn.writeCount() >= 2 },
		2*time.Second, 10*time.Millisecond,
		"frames must flow again after failed captures")
	assert.GreaterOrEqual(t, capturer.callCount(), 5, "failed ticks must not stop the timer")
}

func TestScreenHandlerCloseStopsTicker(t *testing.T) {
	capturer := &fakeCapturer{payload: []byte("frame")}
	h := NewScreenStreamHandler(capturer, 10*time.Millisecond)
	conn := &fakeConn{}
	c := NewClient("10.0.0.1:5000", conn)

	h.Start(c)
	require.Eventually(t, func() bool { return conn.writeCount() >= 1 },
		2*time.Second, 10*time.Millisecond)
	h.Close()
	h.Close() // idempotent

	stopped := conn.writeCount()
	time.Sleep(100 * time.Millisecond)
	assert.LessOrEqual(t, conn.writeCount(), stopped+1, "ticker must stop after Close")
}
