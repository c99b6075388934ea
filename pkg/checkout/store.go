package checkout

import (
	"sync"

	"github.com/google/uuid"
)

// Store tracks the live checkout sessions by id. One session exists per
// cart instance; there is no cross-session persistence.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create starts a fresh session with a generated id.
func (s *Store) Create() *Session {
	session := NewSession(uuid.NewString())
	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	return session
}

func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	return session, ok
}

// Remove drops a session entirely, cart included.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
