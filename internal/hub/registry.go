package hub

import "sync"

// Registry maps a user id to the set of live websocket sessions for that
// user. A user may hold several sessions at once (multiple tabs). The
// registry is process-local and rebuilt from zero on restart; reconnecting
// clients re-join automatically.
type Registry struct {
	mu    sync.RWMutex
	users map[string]map[*session]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		users: make(map[string]map[*session]struct{}),
	}
}

func (r *Registry) Join(userID string, s *session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.users[userID] == nil {
		r.users[userID] = make(map[*session]struct{})
	}
	r.users[userID][s] = struct{}{}
	s.userID = userID
}

func (r *Registry) Leave(s *session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// s.userID is written by Join under the same lock.
	if s.userID == "" {
		return
	}

	sessions, ok := r.users[s.userID]
	if !ok {
		return
	}
	delete(sessions, s)
	if len(sessions) == 0 {
		delete(r.users, s.userID)
	}
}

func (r *Registry) SessionsFor(userID string) []*session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*session, 0, len(r.users[userID]))
	for s := range r.users[userID] {
		sessions = append(sessions, s)
	}
	return sessions
}

func (r *Registry) SessionCount(userID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users[userID])
}
