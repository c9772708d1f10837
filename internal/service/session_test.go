package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundtrip(t *testing.T) {
	InitSessions("test-secret")

	token, err := GenerateSessionToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ParseSessionToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", userID)
}

func TestParseSessionTokenRejectsGarbage(t *testing.T) {
	InitSessions("test-secret")

	_, err := ParseSessionToken("not-a-token")
	require.Error(t, err)

	_, err = ParseSessionToken("")
	require.Error(t, err)
}

func TestParseSessionTokenRejectsWrongSecret(t *testing.T) {
	InitSessions("test-secret")

	claims := jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, err = ParseSessionToken(forged)
	require.Error(t, err)
}

func TestParseSessionTokenRejectsExpired(t *testing.T) {
	InitSessions("test-secret")

	claims := jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(-time.Hour).Unix(),
		"iat":     time.Now().Add(-2 * time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ParseSessionToken(expired)
	require.Error(t, err)
}

func TestParseSessionTokenRequiresUserID(t *testing.T) {
	InitSessions("test-secret")

	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	anonymous, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ParseSessionToken(anonymous)
	require.Error(t, err)
}
