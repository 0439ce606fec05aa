package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rediscache "library-catalog/internal/infrastructure/cache"
)

func newTestBlocklist(t *testing.T) (*Blocklist, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := rediscache.NewRedisCache(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return NewBlocklist(c), mr
}

func TestBlocklistRevoke(t *testing.T) {
	bl, mr := newTestBlocklist(t)
	ctx := context.Background()
	m := NewManager("test-secret", time.Hour)

	token, err := m.Generate(7, "reader@example.com")
	require.NoError(t, err)
	claims, err := m.Validate(token)
	require.NoError(t, err)

	revoked, err := bl.IsRevoked(ctx, claims.ID)
	assert.NoError(t, err)
	assert.False(t, revoked)

	assert.NoError(t, bl.Revoke(ctx, claims))

	revoked, err = bl.IsRevoked(ctx, claims.ID)
	assert.NoError(t, err)
	assert.True(t, revoked)

	// Entry expires with the token rather than living forever.
	mr.FastForward(2 * time.Hour)
	revoked, err = bl.IsRevoked(ctx, claims.ID)
	assert.NoError(t, err)
	assert.False(t, revoked)
}

func TestBlocklistSkipsExpiredTokens(t *testing.T) {
	bl, mr := newTestBlocklist(t)
	ctx := context.Background()

	claims := &Claims{}
	claims.ID = "expired-jti"

	assert.NoError(t, bl.Revoke(ctx, claims))
	assert.Empty(t, mr.Keys(), "expired tokens need no blocklist entry")
}

func TestBlocklistIsolatesTokens(t *testing.T) {
	bl, _ := newTestBlocklist(t)
	ctx := context.Background()
	m := NewManager("test-secret", time.Hour)

	t1, _ := m.Generate(1, "a@example.com")
	t2, _ := m.Generate(1, "a@example.com")
	c1, _ := m.Validate(t1)
	c2, _ := m.Validate(t2)

	require.NoError(t, bl.Revoke(ctx, c1))

	revoked, err := bl.IsRevoked(ctx, c2.ID)
	assert.NoError(t, err)
	assert.False(t, revoked, "revoking one token must not touch the user's other tokens")
}
