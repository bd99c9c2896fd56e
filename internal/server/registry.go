package server

import "sync"

// Registry is the shared map from peer address to send handle. It has exactly
// three uses: insertion after a session finishes its setup, removal on any
// session exit path, and full iteration for the shutdown broadcast.
type Registry struct {
	mu      sync.Mutex
	clients map[string]*Client
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{clients: make(map[string]*Client)}
}

// Add registers a client under its peer address. Inserting an address that is
// already present overwrites it, so there is never more than one entry per
// address.
func (r *Registry) Add(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[c.Addr()] = c
}

// Remove deregisters a client. It only removes the entry if it still belongs
// to this client, so a session exiting late cannot evict a newer connection
// registered under a reused address.
func (r *Registry) Remove(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.clients[c.Addr()] == c {
		delete(r.clients, c.Addr())
	}
}

// Get looks up the send handle registered for a peer address
func (r *Registry) Get(addr string) (*Client, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[addr]
	return c, ok
}

// Len returns the number of registered connections
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// CloseAll closes every registered connection. A failure on one entry is
// reported and the iteration continues; nothing aborts the broadcast.
func (r *Registry) CloseAll(report func(c *Client, err error)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.clients {
		if err := c.Close(); err != nil && report != nil {
			report(c, err)
		}
	}
}
