package shared

import (
	"sync"
	"time"
)

// CurrentUser is the authenticated account attached to the session.
type CurrentUser struct {
	ID      int64
	Name    string
	Email   string
	IsAdmin bool
}

// Session holds the global authentication state shared by all feature
// services. It replaces the ambient session of the browser runtime with an
// explicitly injected object.
type Session struct {
	mu      sync.RWMutex
	token   string
	user    *CurrentUser
	timeout time.Duration
}

// NewSession constructs an empty session.
func NewSession() *Session {
	return &Session{}
}

// Token returns the bearer token. Implements restc.TokenSource.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken stores the bearer token.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// User returns a copy of the current user, or nil when unauthenticated.
func (s *Session) User() *CurrentUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// SetUser stores the current user.
func (s *Session) SetUser(user CurrentUser) {
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
}

// Timeout returns the inactivity timeout configured by the backend security
// settings, zero when unknown.
func (s *Session) Timeout() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timeout
}

// SetTimeout stores the inactivity timeout.
func (s *Session) SetTimeout(d time.Duration) {
	s.mu.Lock()
	s.timeout = d
	s.mu.Unlock()
}

// Clear drops the token and user, returning the session to the
// unauthenticated state.
func (s *Session) Clear() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.timeout = 0
	s.mu.Unlock()
}
