package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNotifierNeverBlocksProducers tests that emitting a notice returns even
// when nobody is consuming the channel: a stalled host must never stall a
// session goroutine.
func TestNotifierNeverBlocksProducers(t *testing.T) {
	// Unbuffered with no receiver, so a plain send would block forever.
	n := NewNotifier(make(chan Notice))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			n.Infof("notice %d", i)
			n.Warnf("notice %d", i)
			n.Errorf("notice %d", i)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("producer blocked on a full notice channel")
	}
}

// TestNotifierNilChannel tests that a notifier without a host channel
// degrades to local logging instead of panicking
func TestNotifierNilChannel(t *testing.T) {
	n := NewNotifier(nil)
	n.Infof("no consumer attached")
	n.Errorf("still fine")
}

// TestNotifierDeliversWhenRoomExists tests the happy path: with channel
// capacity available the notice reaches the host
func TestNotifierDeliversWhenRoomExists(t *testing.T) {
	ch := make(chan Notice, 1)
	n := NewNotifier(ch)

	n.Warnf("disk %s is filling up", "/dev/sda1")

	select {
	case got := <-ch:
		require.Equal(t, NoticeWarning, got.Level)
		assert.Equal(t, "disk /dev/sda1 is filling up", got.Text)
	default:
		t.Fatal("expected the notice to be delivered")
	}
}
