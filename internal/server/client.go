package server

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Conn is the subset of *websocket.Conn a send handle needs. Kept small so
// tests can substitute fakes.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Client is the outbound send handle for one connection. It is shared between
// the session's own goroutines (read loop, frame ticker) and the registry's
// shutdown broadcast, so all writes are serialized through a mutex.
type Client struct {
	id   string
	addr string

	mu   sync.Mutex
	conn Conn
}

// NewClient wraps an accepted connection keyed by its peer address
func NewClient(addr string, conn Conn) *Client {
	return &Client{
		id:   uuid.NewString(),
		addr: addr,
		conn: conn,
	}
}

// ID returns the session id used for log correlation
func (c *Client) ID() string {
	return c.id
}

// Addr returns the peer address this client is registered under
func (c *Client) Addr() string {
	return c.addr
}

// Send writes one websocket message to the peer
func (c *Client) Send(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(messageType, data)
}

// SendBinary writes one binary frame to the peer
func (c *Client) SendBinary(data []byte) error {
	return c.Send(websocket.BinaryMessage, data)
}

// Close asks the peer to close and tears down the transport. Best-effort and
// safe to call more than once; a close frame failure still closes the
// underlying connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.conn.Close()
}
