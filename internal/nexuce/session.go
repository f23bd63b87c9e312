package nexuce

import "sync"

// Session holds the provider bearer token obtained at login. The service
// supports exactly one active provider identity at a time: every successful
// login overwrites the slot, last writer wins. Reads vastly outnumber writes
// (logins are operator-driven), hence the RWMutex.
type Session struct {
	mu    sync.RWMutex
	token string
}

// NewSession returns an empty session handle.
func NewSession() *Session {
	return &Session{}
}

// Set stores the provider token, replacing any previous value.
func (s *Session) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Token returns the current provider token, empty if no login has succeeded.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Active reports whether a provider token is currently held.
func (s *Session) Active() bool {
	return s.Token() != ""
}
