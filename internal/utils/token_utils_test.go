package utils_test

import (
	"testing"
	"time"

	"github.com/SscSPs/club_manager_app/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func TestSessionJWT_RoundTrip(t *testing.T) {
	sessionID, err := utils.GenerateSessionID()
	require.NoError(t, err)
	assert.Len(t, sessionID, 64)

	token, err := utils.GenerateSessionJWT(sessionID, "admin@jcunited.com", testSecret, time.Hour, "club-test")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, sessionID, claims.ID)
	assert.Equal(t, "admin@jcunited.com", claims.Subject)
	assert.Equal(t, "club-test", claims.Issuer)
}

func TestParseAndValidateJWT_Rejects(t *testing.T) {
	expired, err := utils.GenerateSessionJWT("sid", "x", testSecret, -time.Minute, "club-test")
	require.NoError(t, err)
	_, err = utils.ParseAndValidateJWT(expired, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	valid, err := utils.GenerateSessionJWT("sid", "x", testSecret, time.Hour, "club-test")
	require.NoError(t, err)
	_, err = utils.ParseAndValidateJWT(valid, "another-secret")
	assert.Error(t, err)

	noID, err := utils.GenerateSessionJWT("", "x", testSecret, time.Hour, "club-test")
	require.NoError(t, err)
	_, err = utils.ParseAndValidateJWT(noID, testSecret)
	assert.Error(t, err)
}
