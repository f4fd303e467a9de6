package hub

import "sync"

// Registry maps user IDs to their active client connection. At most one
// client is tracked per user; registering a user who already has a client
// replaces the prior mapping (last writer wins).
//
// A Registry is constructed explicitly and shared by reference; there is no
// package-level instance.
type Registry struct {
	mu      sync.RWMutex
	clients map[int64]*Client
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[int64]*Client),
	}
}

// Register installs or replaces the mapping for userID.
func (r *Registry) Register(userID int64, client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[userID] = client
}

// Unregister removes the mapping for userID if present.
func (r *Registry) Unregister(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, userID)
}

// Lookup returns the current client for userID, or nil if the user is not
// connected.
func (r *Registry) Lookup(userID int64) *Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.clients[userID]
}

// OnlineUsers returns a snapshot of the currently connected user IDs.
func (r *Registry) OnlineUsers() []int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]int64, 0, len(r.clients))
	for id := range r.clients {
		users = append(users, id)
	}
	return users
}

// snapshot returns the current clients keyed by user ID so callers can
// iterate without holding the lock while pushing.
func (r *Registry) snapshot() map[int64]*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	clients := make(map[int64]*Client, len(r.clients))
	for id, client := range r.clients {
		clients[id] = client
	}
	return clients
}

// Len returns the number of connected clients.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}
