package session

import (
	"context"
	"testing"
	"time"

	"ums-console/internal/localstore"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, username, role string, expiresAt time.Time) string {
	t.Helper()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("service-side-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenAbsent(t *testing.T) {
	acc := NewAccessor(localstore.NewMemoryStore())
	_, err := acc.Token(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestTokenBlankReadsAsAbsent(t *testing.T) {
	store := localstore.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), TokenKey, "   "))
	acc := NewAccessor(store)
	_, err := acc.Token(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestClaimsWithoutVerification(t *testing.T) {
	store := localstore.NewMemoryStore()
	ctx := context.Background()
	raw := signedToken(t, "superadmin", "super admin", time.Now().Add(time.Hour))
	require.NoError(t, store.Set(ctx, TokenKey, raw))

	acc := NewAccessor(store)
	claims, err := acc.Claims(ctx)
	require.NoError(t, err)
	assert.Equal(t, "superadmin", claims.Username())
	assert.Equal(t, "super admin", claims.Role)
	assert.False(t, claims.Expired(time.Now()))
}

func TestExpiredTokenStaysStored(t *testing.T) {
	store := localstore.NewMemoryStore()
	ctx := context.Background()
	raw := signedToken(t, "superadmin", "super admin", time.Now().Add(-time.Hour))
	require.NoError(t, store.Set(ctx, TokenKey, raw))

	acc := NewAccessor(store)
	claims, err := acc.Claims(ctx)
	require.NoError(t, err)
	assert.True(t, claims.Expired(time.Now()))

	// The service is authoritative; the console does not evict
	_, err = acc.Token(ctx)
	assert.NoError(t, err)
}

func TestClearRemovesToken(t *testing.T) {
	store := localstore.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, TokenKey, "whatever"))

	acc := NewAccessor(store)
	require.NoError(t, acc.Clear(ctx))
	_, err := acc.Token(ctx)
	assert.ErrorIs(t, err, ErrNoToken)
}
