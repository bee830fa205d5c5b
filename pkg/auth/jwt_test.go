package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.GenerateWatchToken("game-1")
	require.NoError(t, err)

	claims, err := issuer.ValidateForGame(token, "game-1")
	require.NoError(t, err)
	assert.Equal(t, "game-1", claims.GameID)
	assert.Equal(t, "watch", claims.Subject)
}

func TestWatchTokenWrongGame(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	token, err := issuer.GenerateWatchToken("game-1")
	require.NoError(t, err)

	_, err = issuer.ValidateForGame(token, "game-2")
	assert.ErrorIs(t, err, ErrWrongGame)
}

func TestWatchTokenWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret", time.Hour).GenerateWatchToken("game-1")
	require.NoError(t, err)

	_, err = NewTokenIssuer("other", time.Hour).ValidateWatchToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestWatchTokenExpired(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Minute)
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return start }

	token, err := issuer.GenerateWatchToken("game-1")
	require.NoError(t, err)

	issuer.now = func() time.Time { return start.Add(2 * time.Minute) }
	_, err = issuer.ValidateWatchToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestWatchTokenGarbage(t *testing.T) {
	_, err := NewTokenIssuer("secret", time.Hour).ValidateWatchToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
