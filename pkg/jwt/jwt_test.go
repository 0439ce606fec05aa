package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.Generate(42, "reader@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := m.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "reader@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID, "each token must carry a unique jti")
}

func TestValidate(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		other := NewManager("other-secret", time.Hour)
		token, err := other.Generate(1, "a@example.com")
		assert.NoError(t, err)

		claims, err := m.Validate(token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewManager("test-secret", -time.Minute)
		token, err := expired.Generate(1, "a@example.com")
		assert.NoError(t, err)

		claims, err := m.Validate(token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("malformed", func(t *testing.T) {
		claims, err := m.Validate("not.a.token")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}

func TestTokensAreUnique(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	a, err := m.Generate(1, "a@example.com")
	assert.NoError(t, err)
	b, err := m.Generate(1, "a@example.com")
	assert.NoError(t, err)

	ca, _ := m.Validate(a)
	cb, _ := m.Validate(b)
	assert.NotEqual(t, ca.ID, cb.ID)
}

func TestRemaining(t *testing.T) {
	t.Run("future expiry", func(t *testing.T) {
		c := &Claims{RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		}}
		assert.InDelta(t, time.Hour, c.Remaining(), float64(time.Minute))
	})

	t.Run("already expired", func(t *testing.T) {
		c := &Claims{RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Hour)),
		}}
		assert.Equal(t, time.Duration(0), c.Remaining())
	})

	t.Run("no expiry", func(t *testing.T) {
		c := &Claims{}
		assert.Equal(t, time.Duration(0), c.Remaining())
	})
}
