package tui

import (
	"sort"
	"sync"
	"time"
)

// SessionInfo describes one connected SSH client.
type SessionInfo struct {
	ID      string
	User    string
	Remote  string
	Started time.Time
}

// SessionRegistry tracks live SSH sessions and enforces a connection limit.
// Safe for concurrent use.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]SessionInfo
	limit    int // 0 means unlimited
}

// NewSessionRegistry creates a registry admitting at most limit sessions.
func NewSessionRegistry(limit int) *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]SessionInfo),
		limit:    max(limit, 0),
	}
}

// Register admits a session. It reports false when the server is full or
// the ID is already taken.
func (r *SessionRegistry) Register(info SessionInfo) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.sessions[info.ID]; dup {
		return false
	}
	if r.limit > 0 && len(r.sessions) >= r.limit {
		return false
	}
	r.sessions[info.ID] = info
	return true
}

// Unregister removes a session.
func (r *SessionRegistry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Get retrieves a session by ID.
func (r *SessionRegistry) Get(id string) (SessionInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Count returns the number of live sessions.
func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// List returns the live sessions, oldest first.
func (r *SessionRegistry) List() []SessionInfo {
	r.mu.RLock()
	out := make([]SessionInfo, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Started.Equal(out[j].Started) {
			return out[i].Started.Before(out[j].Started)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
