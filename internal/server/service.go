package server

import (
	"sync"
	"sync/atomic"
)

// Config configures the connection engine.
type Config struct {
	// PointerAddr and VideoAddr are the two independent endpoints.
	PointerAddr string
	VideoAddr   string

	// Secret, when non-empty, must be sent verbatim as the first text
	// frame on every connection to either endpoint.
	Secret string

	// PointerFactory and VideoFactory produce the per-connection stream
	// handlers for their endpoint.
	PointerFactory HandlerFactory
	VideoFactory   HandlerFactory
}

// Service is a running engine: two listeners sharing one registry and one
// shutdown flag, plus the control goroutine consuming host commands.
type Service struct {
	registry *Registry
	shutdown atomic.Bool

	pointer *Listener
	video   *Listener

	wg sync.WaitGroup
}

// Run starts the engine and returns immediately. notices receives outbound
// control notices (may be nil); commands is consumed by the control
// goroutine, where the first command, or the channel closing, triggers
// shutdown.
func Run(cfg Config, notices chan<- Notice, commands <-chan Command) *Service {
	notifier := NewNotifier(notices)
	s := &Service{registry: NewRegistry()}

	s.pointer = NewListener(cfg.PointerAddr, cfg.Secret, s.registry, &s.shutdown, notifier, cfg.PointerFactory)
	s.video = NewListener(cfg.VideoAddr, cfg.Secret, s.registry, &s.shutdown, notifier, cfg.VideoFactory)

	s.wg.Add(3)
	go func() {
		defer s.wg.Done()
		s.controlLoop(commands, notifier)
	}()
	go func() {
		defer s.wg.Done()
		s.pointer.Run()
	}()
	go func() {
		defer s.wg.Done()
		s.video.Run()
	}()

	return s
}

// controlLoop blocks on the host's command channel. Receiving any command and
// the channel closing are treated identically: broadcast close to every
// registered connection, then raise the shutdown flag. This goroutine is the
// flag's only writer.
func (s *Service) controlLoop(commands <-chan Command, notifier *Notifier) {
	<-commands

	s.registry.CloseAll(func(c *Client, err error) {
		notifier.Errorf("Could not shutdown websocket %s: %v", c.Addr(), err)
	})
	s.shutdown.Store(true)
}

// Wait blocks until both listeners and the control goroutine have exited
func (s *Service) Wait() {
	s.wg.Wait()
}

// PointerAddr returns the pointer endpoint's bound address ("" if binding
// failed). Blocks until the bind attempt finished.
func (s *Service) PointerAddr() string {
	return s.pointer.Addr()
}

// VideoAddr returns the video endpoint's bound address ("" if binding failed)
func (s *Service) VideoAddr() string {
	return s.video.Addr()
}
