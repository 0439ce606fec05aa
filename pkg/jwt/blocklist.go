package jwt

import (
	"context"

	"library-catalog/pkg/cache"
)

const blocklistKeyPrefix = "token:blocklist:"

// Blocklist revokes individual tokens by jti until their natural expiry.
// Stateless JWTs cannot otherwise be invalidated server-side; entries expire
// together with the token so the set never grows unbounded.
type Blocklist struct {
	cache cache.Cache
}

// NewBlocklist builds a blocklist on top of the shared cache.
func NewBlocklist(c cache.Cache) *Blocklist {
	return &Blocklist{cache: c}
}

// Revoke marks the token's jti as revoked for the remainder of its life.
// Already-expired tokens need no entry.
func (b *Blocklist) Revoke(ctx context.Context, claims *Claims) error {
	ttl := claims.Remaining()
	if ttl <= 0 {
		return nil
	}
	return b.cache.Set(ctx, blocklistKeyPrefix+claims.ID, true, ttl)
}

// IsRevoked reports whether the jti has been revoked.
func (b *Blocklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return b.cache.Exists(ctx, blocklistKeyPrefix+jti)
}
