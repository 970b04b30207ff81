package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionCookie is the name of the session cookie.
const SessionCookie = "sf_session"

// DefaultSessionTTL is how long a session lives without renewal.
const DefaultSessionTTL = 12 * time.Hour

// Session is one authenticated admin session.
type Session struct {
	Token      string
	UserID     string
	Email      string
	OrgCode    string
	SuperAdmin bool
	Expiry     time.Time
}

// Actor returns the actor the session represents.
func (s Session) Actor() Actor {
	return Actor{
		UserID:     s.UserID,
		Email:      s.Email,
		OrgCode:    s.OrgCode,
		SuperAdmin: s.SuperAdmin,
	}
}

// SessionStore holds sessions in memory. Expired sessions are swept
// lazily on lookup and on Create.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionStore creates a session store. A non-positive ttl falls
// back to DefaultSessionTTL.
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		sessions: make(map[string]Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create mints a new session for the given actor.
func (s *SessionStore) Create(actor Actor) Session {
	session := Session{
		Token:      uuid.NewString(),
		UserID:     actor.UserID,
		Email:      actor.Email,
		OrgCode:    actor.OrgCode,
		SuperAdmin: actor.SuperAdmin,
		Expiry:     s.now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sweepLocked()
	s.sessions[session.Token] = session
	s.mu.Unlock()
	return session
}

// Get looks up a session by token. Expired sessions are dropped.
func (s *SessionStore) Get(token string) (Session, bool) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return Session{}, false
	}
	if s.now().After(session.Expiry) {
		s.Delete(token)
		return Session{}, false
	}
	return session, true
}

// Delete removes a session by token.
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// DeleteForUser removes every session belonging to a user.
func (s *SessionStore) DeleteForUser(userID string) {
	s.mu.Lock()
	for token, session := range s.sessions {
		if session.UserID == userID {
			delete(s.sessions, token)
		}
	}
	s.mu.Unlock()
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionStore) sweepLocked() {
	now := s.now()
	for token, session := range s.sessions {
		if now.After(session.Expiry) {
			delete(s.sessions, token)
		}
	}
}
