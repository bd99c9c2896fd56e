// Package server implements the connection and session engine: two
// independent websocket listeners (pointer input, video), per-connection
// authentication and dispatch, a shared client registry, and the control
// channel pair coupling the engine to the host process.
package server

import (
	"fmt"
	"log"
)

// NoticeLevel classifies an outbound control notice
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is a fire-and-forget observability event for the host process.
// Notices are never acknowledged and carry no ordering guarantee across
// producers.
type Notice struct {
	Level NoticeLevel
	Text  string
}

// Command is an inbound instruction from the host process
type Command int

const (
	// CommandShutdown stops both listeners and best-effort-closes every
	// registered connection.
	CommandShutdown Command = iota
)

// Notifier fans notices from any number of concurrent producers into the
// host's notice channel.
type Notifier struct {
	ch chan<- Notice
}

// NewNotifier wraps the host-facing notice channel; ch may be nil
func NewNotifier(ch chan<- Notice) *Notifier {
	return &Notifier{ch: ch}
}

// Infof emits an info notice
func (n *Notifier) Infof(format string, args ...any) {
	n.send(NoticeInfo, format, args...)
}

// Warnf emits a warning notice
func (n *Notifier) Warnf(format string, args ...any) {
	n.send(NoticeWarning, format, args...)
}

// Errorf emits an error notice
func (n *Notifier) Errorf(format string, args ...any) {
	n.send(NoticeError, format, args...)
}

// send forwards to the host without ever blocking the producer: a stalled
// host consumer must not stall a session. With no consumer, or a full
// channel, the notice falls back to the local log.
func (n *Notifier) send(level NoticeLevel, format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	if n.ch == nil {
		log.Printf("WS: [%s] %s", level, text)
		return
	}
	select {
	case n.ch <- Notice{Level: level, Text: text}:
	default:
		log.Printf("WS: Notice channel full, dropped [%s] %s", level, text)
	}
}
