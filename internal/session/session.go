// Package session holds the ephemeral login markers. Sessions live in
// an in-memory TTL cache and never touch the persisted document; their
// mere presence is what the bootstrap policy checks. Login itself
// (credential checking) is owned by whoever embeds the core.
package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Session is the marker kept for a logged-in user.
type Session struct {
	Email  string
	Name   string
	Role   string
	Avatar string
}

// Store keeps active sessions keyed by opaque token.
type Store struct {
	cache *cache.Cache
}

// NewStore creates a session store whose sessions expire after ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{cache: cache.New(ttl, ttl)}
}

// Start registers a session and returns its token.
func (s *Store) Start(sess Session) string {
	token := uuid.NewString()
	s.cache.Set(token, sess, cache.DefaultExpiration)
	return token
}

// Get returns the session for the token, if it exists and has not
// expired.
func (s *Store) Get(token string) (Session, bool) {
	v, ok := s.cache.Get(token)
	if !ok {
		return Session{}, false
	}
	return v.(Session), true
}

// End removes the session for the token. Ending an unknown token is a
// no-op.
func (s *Store) End(token string) {
	s.cache.Delete(token)
}

// Active reports whether any unexpired session exists.
func (s *Store) Active() bool {
	return len(s.cache.Items()) > 0
}
