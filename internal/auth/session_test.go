package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevokedTokenStore(t *testing.T) {
	store := NewRevokedTokenStore()

	assert.False(t, store.IsRevoked("token-a"))

	store.Revoke("token-a", time.Now().Add(time.Hour))
	assert.True(t, store.IsRevoked("token-a"))
	assert.False(t, store.IsRevoked("token-b"))
}

func TestRevokedTokenStore_ExpiredEntryNoLongerCounts(t *testing.T) {
	store := NewRevokedTokenStore()

	store.Revoke("token-a", time.Now().Add(-time.Minute))
	assert.False(t, store.IsRevoked("token-a"))
}

func TestRevokedTokenStore_PurgeExpired(t *testing.T) {
	store := NewRevokedTokenStore()

	store.Revoke("stale", time.Now().Add(-time.Minute))
	store.Revoke("live", time.Now().Add(time.Hour))

	store.PurgeExpired()

	store.mu.RLock()
	defer store.mu.RUnlock()
	assert.NotContains(t, store.tokens, "stale")
	assert.Contains(t, store.tokens, "live")
}
