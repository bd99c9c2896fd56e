package server

import (
	"errors"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// defaultPollInterval bounds how long a listener takes to observe the
// shutdown flag.
const defaultPollInterval = 10 * time.Millisecond

// Listener owns one bound websocket endpoint. It upgrades each accepted
// connection and runs an independent session for it; a failure on one
// connection never affects another, and a bind failure kills only this
// listener.
type Listener struct {
	addr     string
	secret   string
	registry *Registry
	shutdown *atomic.Bool
	notifier *Notifier
	factory  HandlerFactory

	pollInterval time.Duration
	upgrader     websocket.Upgrader

	mu    sync.Mutex
	bound net.Addr
	ready chan struct{}
}

// NewListener creates a listener for one endpoint. The registry and shutdown
// flag are shared with the sibling listener and the control goroutine.
func NewListener(addr, secret string, registry *Registry, shutdown *atomic.Bool, notifier *Notifier, factory HandlerFactory) *Listener {
	return &Listener{
		addr:         addr,
		secret:       secret,
		registry:     registry,
		shutdown:     shutdown,
		notifier:     notifier,
		factory:      factory,
		pollInterval: defaultPollInterval,
		ready:        make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Viewer clients connect from arbitrary origins on the
			// local network.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Addr returns the bound address, blocking until the bind attempt finished.
// Returns "" if binding failed.
func (l *Listener) Addr() string {
	<-l.ready
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.bound == nil {
		return ""
	}
	return l.bound.String()
}

func (l *Listener) setBound(addr net.Addr) {
	l.mu.Lock()
	l.bound = addr
	l.mu.Unlock()
	close(l.ready)
}

// Run binds the endpoint and serves until the shutdown flag is observed.
// Blocks until the listener has stopped accepting. Connections that are
// already active are left alone; tearing those down is the registry
// broadcast's job.
func (l *Listener) Run() {
	ln, err := net.Listen("tcp", l.addr)
	if err != nil {
		l.setBound(nil)
		l.notifier.Errorf("Failed binding to socket %s: %v", l.addr, err)
		return
	}
	l.setBound(ln.Addr())

	srv := &http.Server{Handler: http.HandlerFunc(l.handleUpgrade)}
	serveDone := make(chan struct{})
	go func() {
		defer close(serveDone)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("WS: Listener %s stopped serving: %v", l.addr, err)
		}
	}()

	for {
		select {
		case <-serveDone:
			if !l.shutdown.Load() {
				l.notifier.Errorf("Listener %s terminated unexpectedly", l.addr)
			}
			return
		case <-time.After(l.pollInterval):
			if l.shutdown.Load() {
				l.notifier.Infof("Shutting down websocket listener %s", l.addr)
				// Close stops the accept loop; upgraded
				// connections are hijacked and unaffected.
				srv.Close()
				<-serveDone
				return
			}
		}
	}
}

// handleUpgrade runs on the server's per-connection goroutine: it performs
// the websocket handshake and hands the connection to an independent session.
func (l *Listener) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	if l.shutdown.Load() {
		http.Error(w, "shutting down", http.StatusServiceUnavailable)
		return
	}
	conn, err := l.upgrader.Upgrade(w, r, nil)
	if err != nil {
		l.notifier.Warnf("Failed to accept client: %v", err)
		return
	}
	l.handleSession(conn)
}

// handleSession drives one connection through its lifecycle:
// construct handler -> register -> authenticate -> message loop -> cleanup.
// The stream handler is constructed before registration so a construction
// failure can never leave an orphaned registry entry, and the deferred
// cleanup prunes the entry on every exit path.
func (l *Listener) handleSession(conn *websocket.Conn) {
	client := NewClient(conn.RemoteAddr().String(), conn)

	handler, err := l.factory()
	if err != nil {
		l.notifier.Errorf("Failed to create stream handler: %v", err)
		conn.Close()
		return
	}

	l.registry.Add(client)
	connectionsTotal.Inc()
	activeClients.Inc()
	log.Printf("WS: Client %s connected from %s", client.ID(), client.Addr())

	defer func() {
		l.registry.Remove(client)
		handler.Close()
		client.Close()
		activeClients.Dec()
		log.Printf("WS: Client %s disconnected", client.ID())
	}()

	handler.Start(client)

	authed := l.secret == ""
	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure) {
				log.Printf("WS: Error reading message from %s, closing (%v)", client.Addr(), err)
			}
			return
		}

		if !authed {
			// The first text frame must match the secret exactly.
			// On mismatch the connection closes with no reply, so
			// a probing client learns nothing about auth state.
			if messageType != websocket.TextMessage {
				continue
			}
			if string(data) != l.secret {
				authFailuresTotal.Inc()
				log.Printf("WS: Client %s failed authentication, closing", client.ID())
				return
			}
			authed = true
			log.Printf("WS: Client %s authenticated", client.ID())
			continue
		}

		handler.Process(client, messageType, data)
	}
}
