package auth

import (
	"sync"
	"time"
)

// RevokedTokenStore remembers refresh tokens that were revoked by logout
// until they would have expired anyway. The store is in-memory, so a
// restart forgets revocations, same as the rest of the session state.
type RevokedTokenStoreInterface interface {
	Revoke(token string, expiresAt time.Time)
	IsRevoked(token string) bool
	PurgeExpired()
}

type RevokedTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]time.Time
}

func NewRevokedTokenStore() *RevokedTokenStore {
	return &RevokedTokenStore{
		tokens: make(map[string]time.Time),
	}
}

func (s *RevokedTokenStore) Revoke(token string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[token] = expiresAt
}

func (s *RevokedTokenStore) IsRevoked(token string) bool {
	s.mu.RLock()
	expiresAt, exists := s.tokens[token]
	s.mu.RUnlock()

	if !exists {
		return false
	}
	return time.Now().Before(expiresAt)
}

// PurgeExpired drops entries whose tokens have expired on their own.
// Scheduled from main via cron.
func (s *RevokedTokenStore) PurgeExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, expiresAt := range s.tokens {
		if time.Now().After(expiresAt) {
			delete(s.tokens, token)
		}
	}
}
