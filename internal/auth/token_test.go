package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spitlabs/lostfound-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	user := &domain.User{ID: "user-1", Role: domain.RoleStudent}

	token, sessionID, expiresAt, err := tm.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, sessionID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, domain.RoleStudent, claims.Role)
	assert.Equal(t, sessionID, claims.ID)
}

func TestTokenSessionIDsAreUnique(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	user := &domain.User{ID: "user-1", Role: domain.RoleStudent}

	_, first, _, err := tm.GenerateToken(user)
	require.NoError(t, err)
	_, second, _, err := tm.GenerateToken(user)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, _, _, err := issuer.GenerateToken(&domain.User{ID: "user-1", Role: domain.RoleStudent})
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenRejectsExpired(t *testing.T) {
	tm := NewTokenManager("secret", time.Nanosecond)

	token, _, _, err := tm.GenerateToken(&domain.User{ID: "user-1", Role: domain.RoleStudent})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = tm.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenDefaultTTL(t *testing.T) {
	tm := NewTokenManager("secret", 0)
	assert.Equal(t, 24*time.Hour, tm.TTL())
}
