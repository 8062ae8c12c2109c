// Package identity tracks the active user session for the backend.
//
// The backend serves a single user. The session carries a display
// profile and an authenticated flag that downstream handlers can
// consult without reaching into the database.
package identity

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// ContextKey is the gin context key under which the session is stored.
const ContextKey = "finance-assistant-identity"

// Profile describes the user the session belongs to.
type Profile struct {
	Name    string `json:"name" example:"Jane Doe"`
	Email   string `json:"email" example:"jane@example.com"`
	Picture string `json:"picture" example:"https://example.com/avatar.png"`
}

// Session is the mutable per-process user session.
type Session struct {
	mu            sync.RWMutex
	profile       Profile
	authenticated bool
}

// NewSession returns an unauthenticated session.
func NewSession() *Session {
	return &Session{}
}

// Init marks the session as authenticated for the given profile.
// Blank names fall back to a generic display name.
func (s *Session) Init(profile Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile.Name = strings.TrimSpace(profile.Name)
	profile.Email = strings.TrimSpace(profile.Email)
	if profile.Name == "" {
		profile.Name = "User"
	}

	s.profile = profile
	s.authenticated = true
}

// Clear resets the session to its unauthenticated state.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = Profile{}
	s.authenticated = false
}

// Authenticated reports whether a user is signed in.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.authenticated
}

// Profile returns a copy of the current profile.
func (s *Session) Profile() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.profile
}

// Middleware stores the session on every request context.
func Middleware(session *Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKey, session)
	}
}

// FromContext returns the session stored on the request context.
// The second return value is false when the middleware did not run.
func FromContext(c *gin.Context) (*Session, bool) {
	value, ok := c.Get(ContextKey)
	if !ok {
		return nil, false
	}

	session, ok := value.(*Session)
	return session, ok
}
